package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jimburton/poker/poker"
)

// Game is a table of Texas Hold'em players playing rounds until one
// player holds all the chips. The engine is single-threaded: all state
// is owned by the goroutine driving Play, and every bet decision fully
// mutates pot and player state before the next player is asked.
type Game struct {
	id  uuid.UUID
	log *log.Logger
	rng *rand.Rand

	players map[string]*Player
	order   []string // seating order, rotated each round
	dealer  string

	pot       int
	sidePots  []*SidePot
	deck      *poker.Deck
	community []poker.Card
	stage     Stage

	winner *poker.Winner
	hands  map[string]poker.PlayerHand // non-folded showdown hands

	sinks []Sink

	buyIn      int
	smallBlind int
	bigBlind   int
	maxPlayers int
	maxRounds  int
	rounds     int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithRand sets the random source used for shuffling decks and drawing
// table names. Tests pass a seeded source for reproducible rounds.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithMaxRounds caps the number of rounds Play will run. Zero means no
// cap.
func WithMaxRounds(n int) Option {
	return func(g *Game) { g.maxRounds = n }
}

// New creates a table. The small blind is half the big blind and the
// buy-in is one hundred big blinds.
func New(bigBlind, maxPlayers int, opts ...Option) *Game {
	g := &Game{
		id:         uuid.New(),
		log:        log.Default().WithPrefix("game"),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		players:    make(map[string]*Player),
		buyIn:      100 * bigBlind,
		smallBlind: bigBlind / 2,
		bigBlind:   bigBlind,
		maxPlayers: maxPlayers,
		stage:      Blinds,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.deck = poker.NewDeck(g.rng)
	g.log.Debug("table created", "id", g.id, "big_blind", bigBlind, "buy_in", g.buyIn)
	return g
}

// ID returns the table's session identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Subscribe registers a sink for public events. Hole cards are private
// and go only to the owning player's sink.
func (g *Game) Subscribe(s Sink) {
	g.sinks = append(g.sinks, s)
}

// Players returns the current seating order.
func (g *Game) Players() []string {
	return append([]string(nil), g.order...)
}

// Join seats a player with the table buy-in. The player's name is
// disambiguated against the seated players; the possibly-suffixed name
// is returned via the player. Joining a full table fails.
func (g *Game) Join(p *Player) error {
	if len(g.players) >= g.maxPlayers {
		return ErrTableFull
	}
	p.Name = UniquifyName(p.Name, g.order)
	p.BankRoll = g.buyIn
	g.players[p.Name] = p
	g.order = append(g.order, p.Name)
	g.broadcast(NewPlayerJoinedEvent(p.Name, p.BankRoll))
	g.log.Info("player joined", "name", p.Name, "bank_roll", p.BankRoll)
	return nil
}

// Play runs rounds until one player remains (or the round cap is hit)
// and returns the winner's name. Any protocol violation, invariant
// violation or lost decision provider ends the game with an error.
func (g *Game) Play() (string, error) {
	if len(g.players) < 2 {
		return "", ErrTooFewPlayers
	}
	for len(g.players) > 1 {
		if g.maxRounds > 0 && g.rounds >= g.maxRounds {
			break
		}
		if err := g.playRound(); err != nil {
			return "", err
		}
		g.resetAfterRound()
		g.rounds++
	}
	name := g.chipLeader()
	winner := g.players[name]
	g.broadcast(NewGameWinnerEvent(winner.Name, winner.BankRoll))
	g.log.Info("game over", "winner", winner.Name, "bank_roll", winner.BankRoll, "rounds", g.rounds)
	return winner.Name, nil
}

// playRound walks one round through every stage in order.
func (g *Game) playRound() error {
	g.stage = Blinds
	g.orderPlayers()
	g.anteUp()
	g.announcePlayers()

	g.stage = Hole
	if err := g.dealHoleCards(); err != nil {
		return err
	}
	g.stage = PreFlop
	if err := g.placeBets(); err != nil {
		return err
	}
	g.stage = Flop
	if err := g.dealCommunity(3); err != nil {
		return err
	}
	if err := g.placeBets(); err != nil {
		return err
	}
	g.stage = Turn
	if err := g.dealCommunity(1); err != nil {
		return err
	}
	if err := g.placeBets(); err != nil {
		return err
	}
	g.stage = River
	if err := g.dealCommunity(1); err != nil {
		return err
	}
	if err := g.placeBets(); err != nil {
		return err
	}
	g.stage = ShowDown
	if err := g.showdown(); err != nil {
		return err
	}
	return g.distributePots()
}

// orderPlayers rotates the seating so the player left of the dealer
// acts first. The dealer is fixed on round one and advanced clockwise
// at each reset.
func (g *Game) orderPlayers() {
	if g.dealer == "" {
		g.dealer = g.order[0]
	}
	pos := 0
	for i, name := range g.order {
		if name == g.dealer {
			pos = i
			break
		}
	}
	g.order = rotate(g.order, (pos+1)%len(g.order))
}

// anteUp collects the blinds: the first player pays the small blind,
// everyone else the big blind. A short stack pays what it has and is
// all-in; an empty stack folds without contributing.
func (g *Game) anteUp() {
	for i, name := range g.order {
		p := g.players[name]
		blind := g.bigBlind
		if i == 0 {
			blind = g.smallBlind
		}
		if p.BankRoll == 0 {
			p.Folded = true
			g.log.Debug("cannot post blind, folded", "player", p.Name)
			continue
		}
		paid := minInt(blind, p.BankRoll)
		g.pay(p, paid)
		if p.BankRoll == 0 {
			p.AllIn = true
			g.openSidePot(p)
		}
	}
}

func (g *Game) announcePlayers() {
	seats := make([]Seat, len(g.order))
	for i, name := range g.order {
		seats[i] = Seat{Name: name, BankRoll: g.players[name].BankRoll}
	}
	g.broadcast(NewPlayersAnnouncedEvent(seats, g.dealer))
}

// dealHoleCards deals two cards to every non-folded player and
// delivers them privately.
func (g *Game) dealHoleCards() error {
	for _, name := range g.order {
		p := g.players[name]
		if p.Folded {
			continue
		}
		cards, err := g.deck.Take(2)
		if err != nil {
			return err
		}
		p.Hole = cards
		if p.sink != nil {
			p.sink.OnEvent(NewHoleCardsEvent(p.Name, cards))
		}
	}
	return nil
}

// dealCommunity burns one card, then deals n to the board.
func (g *Game) dealCommunity(n int) error {
	if err := g.deck.Burn(); err != nil {
		return err
	}
	cards, err := g.deck.Take(n)
	if err != nil {
		return err
	}
	g.community = append(g.community, cards...)
	return nil
}

// showdown evaluates every non-folded player's best hand and reduces
// them to the round winner(s). A lone remaining player wins outright.
func (g *Game) showdown() error {
	g.hands = make(map[string]poker.PlayerHand)
	hands := make([]poker.PlayerHand, 0, len(g.order))
	for _, name := range g.order {
		p := g.players[name]
		if p.Folded {
			continue
		}
		cards := append(cloneCards(g.community), p.Hole...)
		ph := poker.PlayerHand{Name: p.Name, Hand: poker.BestHand(cards), Cards: cards}
		g.hands[p.Name] = ph
		hands = append(hands, ph)
	}
	if len(hands) == 0 {
		return &InvariantViolationError{Reason: "no players remaining at showdown"}
	}
	var w poker.Winner
	if len(hands) == 1 {
		w = poker.Winner{Hands: hands}
	} else {
		w = poker.Reduce(hands)
	}
	g.winner = &w
	return nil
}

// resetAfterRound clears round state, reshuffles a fresh deck, removes
// players who cannot cover the next small blind and advances the
// dealer clockwise.
func (g *Game) resetAfterRound() {
	g.pot = 0
	g.sidePots = nil
	g.community = nil
	g.deck = poker.NewDeck(g.rng)
	g.winner = nil
	g.hands = nil

	g.dealer = g.nextDealer()

	remaining := make([]string, 0, len(g.order))
	for _, name := range g.order {
		p := g.players[name]
		p.Hole = nil
		p.AllIn = false
		p.Folded = false
		p.TotalBet = 0
		if p.BankRoll < g.smallBlind {
			delete(g.players, name)
			g.log.Info("player removed", "name", name, "bank_roll", p.BankRoll)
			continue
		}
		remaining = append(remaining, name)
	}
	g.order = remaining
	g.stage = Blinds
}

// nextDealer finds the first player clockwise of the current dealer
// who survives this reset.
func (g *Game) nextDealer() string {
	pos := 0
	for i, name := range g.order {
		if name == g.dealer {
			pos = i
			break
		}
	}
	for j := 1; j <= len(g.order); j++ {
		candidate := g.order[(pos+j)%len(g.order)]
		if g.players[candidate].BankRoll >= g.smallBlind {
			return candidate
		}
	}
	return g.dealer
}

// chipLeader returns the name of the richest seated player. With one
// player left this is the game winner.
func (g *Game) chipLeader() string {
	leader := g.order[0]
	for _, name := range g.order[1:] {
		if g.players[name].BankRoll > g.players[leader].BankRoll {
			leader = name
		}
	}
	return leader
}

func (g *Game) broadcast(event Event) {
	for _, s := range g.sinks {
		s.OnEvent(event)
	}
}

func rotate(names []string, i int) []string {
	return append(append([]string(nil), names[i:]...), names[:i]...)
}
