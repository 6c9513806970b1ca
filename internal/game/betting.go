package game

import (
	"fmt"

	"github.com/jimburton/poker/poker"
)

// placeBets runs one betting stage. Players act in seating order; the
// loop ends when action returns to the target (the opener, or the last
// raiser) having already acted. Folded and all-in players leave the
// rotation immediately; if the target leaves, the next player in
// rotation becomes the new target.
func (g *Game) placeBets() error {
	g.broadcast(NewStageEvent(g.stage, g.community))

	players := make([]*Player, 0, len(g.order))
	for _, name := range g.order {
		if p := g.players[name]; p.active() {
			players = append(players, p)
		}
	}
	if len(players) < 2 {
		return nil
	}

	target := players[0]
	targetActed := false
	call := 0
	min := g.bigBlind
	cycle := 0

	idx := 0
	for len(players) > 1 {
		idx = idx % len(players)
		p := players[idx]
		if p == target && targetActed {
			break
		}
		if p == target {
			targetActed = true
		}

		bet, err := p.agent.Decide(BetRequest{
			Call:      call,
			Min:       min,
			Stage:     g.stage,
			Cycle:     cycle,
			BankRoll:  p.BankRoll,
			Community: cloneCards(g.community),
			Hole:      cloneCards(p.Hole),
		})
		if err != nil {
			return fmt.Errorf("decision from %s during %s: %w", p.Name, g.stage, err)
		}

		switch bet.Action {
		case Fold:
			p.Folded = true
			players = removeAt(players, idx)
			if p == target && len(players) > 1 {
				target = players[idx%len(players)]
				targetActed = false
			}
			g.broadcast(NewBetPlacedEvent(p.Name, bet, g.pot))
			continue

		case Check:
			if call > 0 {
				return &ProtocolViolationError{
					Player: p.Name, Stage: g.stage, Attempted: "check", Call: call,
				}
			}

		case Call:
			if p.BankRoll < call {
				return &ProtocolViolationError{
					Player: p.Name, Stage: g.stage,
					Attempted: fmt.Sprintf("call with bank roll %d", p.BankRoll),
					Call:      call,
				}
			}
			g.pay(p, call)

		case Raise:
			if bet.Amount <= call {
				return &ProtocolViolationError{
					Player: p.Name, Stage: g.stage,
					Attempted: fmt.Sprintf("raise to %d", bet.Amount),
					Call:      call,
				}
			}
			if p.BankRoll < bet.Amount {
				return &ProtocolViolationError{
					Player: p.Name, Stage: g.stage,
					Attempted: fmt.Sprintf("raise to %d with bank roll %d", bet.Amount, p.BankRoll),
					Call:      call,
				}
			}
			g.pay(p, bet.Amount)
			call = bet.Amount
			target = p
			targetActed = true
			cycle++

		case AllIn:
			bet.Amount = p.BankRoll
			g.pay(p, p.BankRoll)
			p.AllIn = true
			g.openSidePot(p)
			players = removeAt(players, idx)
			if p == target && len(players) > 1 {
				target = players[idx%len(players)]
				targetActed = false
			}
			g.broadcast(NewBetPlacedEvent(p.Name, bet, g.pot))
			continue
		}

		g.broadcast(NewBetPlacedEvent(p.Name, bet, g.pot))
		idx++
	}
	return nil
}

// pay moves chips from the player into the round and rebuilds the pot
// amounts from every player's cumulative contribution.
func (g *Game) pay(p *Player, amount int) {
	p.BankRoll -= amount
	p.TotalBet += amount
	g.recomputePots()
}

func removeAt(players []*Player, i int) []*Player {
	return append(players[:i], players[i+1:]...)
}

func cloneCards(cards []poker.Card) []poker.Card {
	cs := make([]poker.Card, len(cards))
	copy(cs, cards)
	return cs
}
