package game

import (
	"errors"
	"fmt"
)

// ErrNoDecision is returned by an Agent whose decision provider went
// away without answering. The engine treats it as fatal for the game;
// integration layers that want softer behavior (auto-fold on timeout)
// must apply that policy before the request reaches the engine.
var ErrNoDecision = errors.New("no decision from provider")

// ErrTableFull is returned by Join once the table has reached its
// configured maximum number of seats.
var ErrTableFull = errors.New("table is full")

// ErrTooFewPlayers is returned by Play when fewer than two players are
// seated.
var ErrTooFewPlayers = errors.New("need at least two players")

// ProtocolViolationError reports an illegal action from a decision
// provider: a check against an outstanding call, a raise that does not
// exceed the current call, or a bet the player cannot cover. It carries
// enough context to diagnose the misbehaving provider.
type ProtocolViolationError struct {
	Player    string
	Stage     Stage
	Attempted string
	Call      int
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("protocol violation by %s during %s: %s with %d to call",
		e.Player, e.Stage, e.Attempted, e.Call)
}

// InvariantViolationError reports an internal inconsistency that should
// be unreachable while the engine's invariants hold, such as a showdown
// winner who is not among the round's active players.
type InvariantViolationError struct {
	Reason string
}

func (e *InvariantViolationError) Error() string {
	return "invariant violation: " + e.Reason
}
