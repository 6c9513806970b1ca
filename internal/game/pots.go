package game

import (
	"sort"

	"github.com/jimburton/poker/poker"
)

// SidePot is a contribution lane opened at the moment a player goes
// all-in. Eligible lists every player who was neither folded nor
// all-in at that instant; the set is frozen at creation. Stake is the
// all-in player's cumulative round contribution, the threshold above
// which chips flow into this pot.
type SidePot struct {
	Eligible []string
	Stake    int
	Amount   int
}

// openSidePot records a new lane for the all-in player p. The caller
// has already applied p's final payment, so p.TotalBet is the stake.
func (g *Game) openSidePot(p *Player) {
	eligible := make([]string, 0, len(g.order))
	for _, name := range g.order {
		other := g.players[name]
		if other.Name != p.Name && other.active() {
			eligible = append(eligible, other.Name)
		}
	}
	g.sidePots = append(g.sidePots, &SidePot{Eligible: eligible, Stake: p.TotalBet})
	g.recomputePots()
	g.log.Debug("side pot opened", "player", p.Name, "stake", p.TotalBet, "eligible", eligible)
}

// recomputePots rebuilds the main pot and every side-pot amount from
// the players' cumulative round contributions. One lane per stake
// level: chips up to the lowest stake go to the main pot, each band
// between consecutive stakes goes to the pot opened at the band's
// lower stake, and chips above the highest stake go to the pot opened
// there. Folded players' chips stay counted; eligibility is separate.
func (g *Game) recomputePots() {
	lanes := make([]*SidePot, len(g.sidePots))
	copy(lanes, g.sidePots)
	sort.SliceStable(lanes, func(i, j int) bool { return lanes[i].Stake < lanes[j].Stake })

	g.pot = 0
	for _, sp := range lanes {
		sp.Amount = 0
	}
	for _, name := range g.order {
		contrib := g.players[name].TotalBet
		if len(lanes) == 0 {
			g.pot += contrib
			continue
		}
		g.pot += minInt(contrib, lanes[0].Stake)
		for i, sp := range lanes {
			lo := sp.Stake
			if contrib <= lo {
				break
			}
			if i+1 < len(lanes) {
				sp.Amount += minInt(contrib, lanes[i+1].Stake) - lo
			} else {
				sp.Amount += contrib - lo
			}
		}
	}
}

// distributePots pays the round's pots out of the showdown result. A
// missing winner is a logged no-op; a winner who is not among the
// round's active players is an invariant violation.
func (g *Game) distributePots() error {
	if g.winner == nil || len(g.winner.Hands) == 0 {
		g.log.Warn("no winner to pay, skipping distribution", "round", g.rounds)
		return nil
	}
	for _, ph := range g.winner.Hands {
		p, ok := g.players[ph.Name]
		if !ok || p.Folded {
			return &InvariantViolationError{
				Reason: "winner " + ph.Name + " is not an active player",
			}
		}
	}

	// Winnings accumulate per name and are applied to bank rolls in
	// one final pass.
	winnings := make(map[string]int)

	if g.winner.Sole() {
		name := g.winner.Hands[0].Name
		winnings[name] += g.pot
		if !g.players[name].AllIn {
			for _, sp := range g.sidePots {
				winnings[name] += sp.Amount
			}
		} else {
			for _, sp := range g.sidePots {
				g.resolveSidePot(winnings, sp, []string{name})
			}
		}
	} else {
		group := g.winner.Names()
		g.split(winnings, g.pot, group)
		for _, sp := range g.sidePots {
			g.resolveSidePot(winnings, sp, group)
		}
	}

	for name, amount := range winnings {
		g.players[name].BankRoll += amount
	}
	g.broadcast(NewRoundWinnerEvent(*g.winner, winnings))
	g.log.Info("round winner", "round", g.rounds, "winners", g.winner.Names(), "winnings", winnings)
	return nil
}

// resolveSidePot credits one side pot. Candidates are the pot's
// non-folded eligible players; with none left the pot defaults to the
// main winner(s), otherwise the candidates' hands are reduced
// independently and the pot is split among whoever prevails.
func (g *Game) resolveSidePot(winnings map[string]int, sp *SidePot, mainWinners []string) {
	candidates := make([]poker.PlayerHand, 0, len(sp.Eligible))
	for _, name := range sp.Eligible {
		if ph, ok := g.hands[name]; ok {
			candidates = append(candidates, ph)
		}
	}
	if len(candidates) == 0 {
		g.split(winnings, sp.Amount, mainWinners)
		return
	}
	w := poker.Reduce(candidates)
	g.split(winnings, sp.Amount, w.Names())
}

// split floor-divides amount among names. The remainder goes to the
// first of the names in seating order, so no chips are lost.
func (g *Game) split(winnings map[string]int, amount int, names []string) {
	if len(names) == 0 || amount == 0 {
		return
	}
	share := amount / len(names)
	remainder := amount % len(names)
	for _, name := range names {
		winnings[name] += share
	}
	if remainder > 0 {
		winnings[g.firstInSeatingOrder(names)] += remainder
	}
}

func (g *Game) firstInSeatingOrder(names []string) string {
	inGroup := make(map[string]bool, len(names))
	for _, n := range names {
		inGroup[n] = true
	}
	for _, name := range g.order {
		if inGroup[name] {
			return name
		}
	}
	return names[0]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
