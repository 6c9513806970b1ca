package game

import (
	"fmt"

	"github.com/jimburton/poker/poker"
)

// Action is the kind of bet a player can make.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

// String returns the display name of the action.
func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	case AllIn:
		return "All-In"
	default:
		return "?"
	}
}

// Bet is a player's answer to a bet request. Amount is meaningful for
// Raise (the new amount to match, which must exceed the outstanding
// call) and AllIn (the player's entire bank roll).
type Bet struct {
	Action Action
	Amount int
}

// String returns a display form of the bet, e.g. "Raise 40".
func (b Bet) String() string {
	switch b.Action {
	case Raise, AllIn:
		return fmt.Sprintf("%s %d", b.Action, b.Amount)
	default:
		return b.Action.String()
	}
}

// BetRequest carries everything a decision provider may consider when
// choosing a bet. Card slices are copies; providers may not reach into
// engine state.
type BetRequest struct {
	Call      int   // outstanding amount to match; 0 means a check is legal
	Min       int   // table minimum bet (the big blind)
	Stage     Stage // current betting stage
	Cycle     int   // number of raises so far this stage
	BankRoll  int   // the acting player's remaining chips
	Community []poker.Card
	Hole      []poker.Card
}

// Agent is a decision provider for one player. Decide blocks until the
// provider answers; a provider that cannot answer (timeout, disconnect)
// returns ErrNoDecision, which the engine treats as fatal for the game.
//
// Agents receive an immutable request and return a bet. They never
// mutate game state; the engine applies the bet itself.
type Agent interface {
	Decide(req BetRequest) (Bet, error)
}
