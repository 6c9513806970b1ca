package game

import (
	"time"

	"github.com/jimburton/poker/poker"
)

// EventType identifies a game event.
type EventType string

const (
	EventTypePlayerJoined     EventType = "player_joined"
	EventTypePlayersAnnounced EventType = "players_announced"
	EventTypeHoleCards        EventType = "hole_cards"
	EventTypeBetPlaced        EventType = "bet_placed"
	EventTypeStage            EventType = "stage"
	EventTypeRoundWinner      EventType = "round_winner"
	EventTypeGameWinner       EventType = "game_winner"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// Event is an immutable notification emitted by the engine. The engine
// assumes nothing about delivery; sinks render, transmit or drop events
// as they see fit.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// Sink receives events. Delivery is synchronous on the engine
// goroutine, so sinks must not block for long.
type Sink interface {
	OnEvent(event Event)
}

// PlayerJoinedEvent is published when a player takes a seat.
type PlayerJoinedEvent struct {
	Name      string
	BankRoll  int
	timestamp time.Time
}

func (e PlayerJoinedEvent) EventType() EventType { return EventTypePlayerJoined }
func (e PlayerJoinedEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerJoinedEvent creates a new player joined event.
func NewPlayerJoinedEvent(name string, bankRoll int) PlayerJoinedEvent {
	return PlayerJoinedEvent{Name: name, BankRoll: bankRoll, timestamp: time.Now()}
}

// Seat is one entry in a PlayersAnnouncedEvent, in seating order.
type Seat struct {
	Name     string
	BankRoll int
}

// PlayersAnnouncedEvent is published at the start of each round with
// the seating order, bank rolls and the dealer.
type PlayersAnnouncedEvent struct {
	Seats     []Seat
	Dealer    string
	timestamp time.Time
}

func (e PlayersAnnouncedEvent) EventType() EventType { return EventTypePlayersAnnounced }
func (e PlayersAnnouncedEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayersAnnouncedEvent creates a new players announced event.
func NewPlayersAnnouncedEvent(seats []Seat, dealer string) PlayersAnnouncedEvent {
	return PlayersAnnouncedEvent{Seats: seats, Dealer: dealer, timestamp: time.Now()}
}

// HoleCardsEvent is delivered only to the owning player's sink, never
// broadcast.
type HoleCardsEvent struct {
	Name      string
	Cards     []poker.Card
	timestamp time.Time
}

func (e HoleCardsEvent) EventType() EventType { return EventTypeHoleCards }
func (e HoleCardsEvent) Timestamp() time.Time { return e.timestamp }

// NewHoleCardsEvent creates a new hole cards event.
func NewHoleCardsEvent(name string, cards []poker.Card) HoleCardsEvent {
	cs := make([]poker.Card, len(cards))
	copy(cs, cards)
	return HoleCardsEvent{Name: name, Cards: cs, timestamp: time.Now()}
}

// BetPlacedEvent is published after the engine applies a bet. Pot is
// the main pot total after the bet.
type BetPlacedEvent struct {
	Player    string
	Bet       Bet
	Pot       int
	timestamp time.Time
}

func (e BetPlacedEvent) EventType() EventType { return EventTypeBetPlaced }
func (e BetPlacedEvent) Timestamp() time.Time { return e.timestamp }

// NewBetPlacedEvent creates a new bet placed event.
func NewBetPlacedEvent(player string, bet Bet, pot int) BetPlacedEvent {
	return BetPlacedEvent{Player: player, Bet: bet, Pot: pot, timestamp: time.Now()}
}

// StageEvent is published when a betting stage opens, carrying the
// community cards dealt so far.
type StageEvent struct {
	Stage     Stage
	Community []poker.Card
	timestamp time.Time
}

func (e StageEvent) EventType() EventType { return EventTypeStage }
func (e StageEvent) Timestamp() time.Time { return e.timestamp }

// NewStageEvent creates a new stage event.
func NewStageEvent(stage Stage, community []poker.Card) StageEvent {
	cs := make([]poker.Card, len(community))
	copy(cs, community)
	return StageEvent{Stage: stage, Community: cs, timestamp: time.Now()}
}

// RoundWinnerEvent is published after pot distribution with the
// winning hand(s) and the chips credited to each player.
type RoundWinnerEvent struct {
	Winner    poker.Winner
	Winnings  map[string]int
	timestamp time.Time
}

func (e RoundWinnerEvent) EventType() EventType { return EventTypeRoundWinner }
func (e RoundWinnerEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundWinnerEvent creates a new round winner event.
func NewRoundWinnerEvent(winner poker.Winner, winnings map[string]int) RoundWinnerEvent {
	w := make(map[string]int, len(winnings))
	for name, amount := range winnings {
		w[name] = amount
	}
	return RoundWinnerEvent{Winner: winner, Winnings: w, timestamp: time.Now()}
}

// GameWinnerEvent is published when only one player remains seated.
type GameWinnerEvent struct {
	Name      string
	BankRoll  int
	timestamp time.Time
}

func (e GameWinnerEvent) EventType() EventType { return EventTypeGameWinner }
func (e GameWinnerEvent) Timestamp() time.Time { return e.timestamp }

// NewGameWinnerEvent creates a new game winner event.
func NewGameWinnerEvent(name string, bankRoll int) GameWinnerEvent {
	return GameWinnerEvent{Name: name, BankRoll: bankRoll, timestamp: time.Now()}
}
