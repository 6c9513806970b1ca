package poker

import "sort"

// PlayerHand pairs a player name with their evaluated hand and the full
// set of cards it was evaluated from (hole plus community cards, used
// for kicker comparison).
type PlayerHand struct {
	Name  string
	Hand  Hand
	Cards []Card
}

// Winner is the outcome of comparing hands: a sole winner or a draw
// between two or more equal hands.
type Winner struct {
	Hands []PlayerHand
}

// Sole reports whether there is exactly one winner.
func (w Winner) Sole() bool {
	return len(w.Hands) == 1
}

// Names returns the winner names in the order they were compared.
func (w Winner) Names() []string {
	names := make([]string, len(w.Hands))
	for i, ph := range w.Hands {
		names[i] = ph.Name
	}
	return names
}

func soleWinner(ph PlayerHand) Winner {
	return Winner{Hands: []PlayerHand{ph}}
}

// Compare compares two hands, producing a sole winner or a draw.
//
// Category precedence decides first, then the embedded ranks in
// significance order. Remaining ties fall to a kicker comparison over
// the full card sets, except for straights and straight flushes, where
// the category is fully determined by the top rank and an equal top
// rank is a pure draw.
func Compare(a, b PlayerHand) Winner {
	if c := compareRanks(a.Hand, b.Hand); c > 0 {
		return soleWinner(a)
	} else if c < 0 {
		return soleWinner(b)
	}

	switch a.Hand.Category {
	case Straight, StraightFlush, FullHouse:
		// Fully determined by the embedded ranks.
		return Winner{Hands: []PlayerHand{a, b}}
	default:
		return highestCards(a, b)
	}
}

// compareRanks orders two hands by category then embedded ranks.
func compareRanks(a, b Hand) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.Ranks) && i < len(b.Ranks); i++ {
		if a.Ranks[i] != b.Ranks[i] {
			if a.Ranks[i] > b.Ranks[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// highestCards breaks a tie by comparing each side's cards pairwise in
// descending rank order. The first strict difference decides; full
// agreement is a draw.
func highestCards(a, b PlayerHand) Winner {
	ca := sortedDescending(a.Cards)
	cb := sortedDescending(b.Cards)
	for i := 0; i < len(ca) && i < len(cb); i++ {
		if ca[i].Rank > cb[i].Rank {
			return soleWinner(a)
		}
		if cb[i].Rank > ca[i].Rank {
			return soleWinner(b)
		}
	}
	return Winner{Hands: []PlayerHand{a, b}}
}

func sortedDescending(cards []Card) []Card {
	cs := make([]Card, len(cards))
	copy(cs, cards)
	sort.Slice(cs, func(i, j int) bool { return cs[i].Rank > cs[j].Rank })
	return cs
}

// Reduce folds a list of hands down to the winner(s). A strictly better
// challenger replaces the current leader or draw group; an equal
// challenger joins the group; a worse challenger is discarded. The
// result does not depend on input order.
func Reduce(hands []PlayerHand) Winner {
	if len(hands) == 0 {
		return Winner{}
	}
	acc := soleWinner(hands[0])
	for _, challenger := range hands[1:] {
		benchmark := acc.Hands[0]
		w := Compare(challenger, benchmark)
		switch {
		case w.Sole() && w.Hands[0].Name == challenger.Name:
			acc = soleWinner(challenger)
		case w.Sole():
			// Challenger is worse; keep the group.
		default:
			acc.Hands = append(acc.Hands, challenger)
		}
	}
	return acc
}
