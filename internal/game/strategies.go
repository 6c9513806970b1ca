package game

import (
	"math/rand"

	"github.com/jimburton/poker/poker"
)

// Built-in decision providers. All are stateless with respect to the
// game: each decision is a pure function of the request (plus a private
// random source where noted).

// CallingAgent plays the minimum to stay in: it checks when it can,
// calls when it must, and goes all-in when the call exceeds its bank
// roll.
type CallingAgent struct{}

// Decide implements Agent.
func (CallingAgent) Decide(req BetRequest) (Bet, error) {
	switch {
	case req.BankRoll == 0:
		return Bet{Action: Fold}, nil
	case req.BankRoll <= req.Call:
		return Bet{Action: AllIn, Amount: req.BankRoll}, nil
	case req.Call == 0:
		return Bet{Action: Check}, nil
	default:
		return Bet{Action: Call, Amount: req.Call}, nil
	}
}

// ModestAgent tosses a coin between calling and a bounded raise: when
// raising, it raises the call by between one and two table minimums,
// never committing its whole bank roll.
type ModestAgent struct {
	Rand *rand.Rand
}

// Decide implements Agent.
func (a ModestAgent) Decide(req BetRequest) (Bet, error) {
	switch {
	case req.BankRoll == 0:
		return Bet{Action: Fold}, nil
	case req.BankRoll <= req.Call:
		return Bet{Action: AllIn, Amount: req.BankRoll}, nil
	}

	if a.Rand.Intn(2) == 0 {
		if req.Call == 0 {
			return Bet{Action: Check}, nil
		}
		return Bet{Action: Call, Amount: req.Call}, nil
	}

	// Raise to call plus something in [min, 2*min], keeping at least
	// one chip in hand.
	raise := req.Min + a.Rand.Intn(req.Min+1)
	amount := req.Call + raise
	if amount >= req.BankRoll {
		amount = req.BankRoll - 1
	}
	if amount <= req.Call {
		if req.Call == 0 {
			return Bet{Action: Check}, nil
		}
		return Bet{Action: Call, Amount: req.Call}, nil
	}
	return Bet{Action: Raise, Amount: amount}, nil
}

// SixMaxAgent folds pre-flop unless its hole cards are a pair or a
// strong ace, king or queen holding, and raises at most twice per
// stage when it stays in.
type SixMaxAgent struct{}

// Decide implements Agent.
func (a SixMaxAgent) Decide(req BetRequest) (Bet, error) {
	if req.Stage != PreFlop {
		return a.makeBet(req), nil
	}

	hi, lo := req.Hole[0], req.Hole[1]
	if lo.Rank > hi.Rank {
		hi, lo = lo, hi
	}
	suited := poker.SameSuit(req.Hole)

	playable := false
	switch {
	case hi.Rank == lo.Rank:
		playable = true
	case hi.Rank == poker.Ace:
		playable = lo.Rank > poker.Ten || (suited && lo.Rank > poker.Four)
	case hi.Rank == poker.King:
		playable = lo.Rank > poker.Ten || (suited && lo.Rank > poker.Nine)
	case hi.Rank == poker.Queen:
		playable = lo.Rank > poker.Ten
	}
	if !playable {
		return Bet{Action: Fold}, nil
	}
	return a.makeBet(req), nil
}

func (SixMaxAgent) makeBet(req BetRequest) Bet {
	switch {
	case req.BankRoll == 0:
		return Bet{Action: Fold}
	case req.BankRoll <= req.Call:
		return Bet{Action: AllIn, Amount: req.BankRoll}
	case req.BankRoll > req.Call+req.Min && req.Cycle < 2:
		return Bet{Action: Raise, Amount: req.Call + req.Min}
	case req.Call == 0:
		return Bet{Action: Check}
	default:
		return Bet{Action: Call, Amount: req.Call}
	}
}
