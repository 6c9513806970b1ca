package game

import "github.com/jimburton/poker/poker"

// Player is one seat at the table. All mutation happens on the engine
// goroutine; agents and sinks only ever see copies.
type Player struct {
	Name     string
	Hole     []poker.Card
	BankRoll int
	AllIn    bool
	Folded   bool

	// TotalBet is the player's cumulative contribution to the current
	// round across all stages. Pot and side-pot amounts are derived
	// from it.
	TotalBet int

	agent Agent
	sink  Sink
}

// NewPlayer creates an unseated player backed by the given decision
// provider. The bank roll is assigned at Join time.
func NewPlayer(name string, agent Agent) *Player {
	return &Player{Name: name, agent: agent}
}

// AttachSink registers a sink for this player's private events, namely
// their hole cards. Public events are delivered through Game.Subscribe.
func (p *Player) AttachSink(s Sink) {
	p.sink = s
}

// active reports whether the player can still be asked to act this
// stage.
func (p *Player) active() bool {
	return !p.Folded && !p.AllIn
}
