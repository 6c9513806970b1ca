package poker

import (
	"fmt"
	"strings"
)

// Category is a hand category, ordered weakest to strongest.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the string representation of a category.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "?"
	}
}

// Hand is an evaluated hand: a category plus the ranks that determine
// it, most significant first. For a FullHouse that is [triple, pair];
// for a Flush the five flush ranks descending; for a Straight or
// StraightFlush the top rank of the run.
type Hand struct {
	Category Category
	Ranks    []Rank
}

// String returns a human-readable description of the hand.
func (h Hand) String() string {
	if len(h.Ranks) == 0 {
		return h.Category.String()
	}
	parts := make([]string, len(h.Ranks))
	for i, r := range h.Ranks {
		parts[i] = r.String()
	}
	return fmt.Sprintf("%s (%s)", h.Category, strings.Join(parts, ", "))
}

// BestHand evaluates the best hand in a set of cards. Showdown hands
// hold five to seven cards (two hole plus up to five community cards)
// but any non-empty set evaluates. The input is never mutated and the
// result does not depend on input order.
func BestHand(cards []Card) Hand {
	rankGroups := groupByRank(cards)
	suitGroups := groupBySuit(cards)

	// Straight flush: a run of five within a single suit.
	for _, sg := range suitGroups {
		if len(sg) < 5 {
			break
		}
		if run := longestRun(sg); len(run) >= 5 {
			return Hand{Category: StraightFlush, Ranks: []Rank{run[len(run)-1].Rank}}
		}
	}

	if len(rankGroups[0]) == 4 {
		return Hand{Category: FourOfAKind, Ranks: []Rank{rankGroups[0][0].Rank}}
	}

	// The second group may itself be a triple (seven cards allow two);
	// it still fills the pair slot.
	if len(rankGroups) > 1 && len(rankGroups[0]) == 3 && len(rankGroups[1]) >= 2 {
		return Hand{
			Category: FullHouse,
			Ranks:    []Rank{rankGroups[0][0].Rank, rankGroups[1][0].Rank},
		}
	}

	if len(suitGroups[0]) >= 5 {
		top := suitGroups[0][:5] // already sorted descending
		ranks := make([]Rank, 5)
		for i, c := range top {
			ranks[i] = c.Rank
		}
		return Hand{Category: Flush, Ranks: ranks}
	}

	if run := longestRun(cards); len(run) >= 5 {
		return Hand{Category: Straight, Ranks: []Rank{run[len(run)-1].Rank}}
	}

	if len(rankGroups[0]) == 3 {
		return Hand{Category: ThreeOfAKind, Ranks: []Rank{rankGroups[0][0].Rank}}
	}

	if len(rankGroups) > 1 && len(rankGroups[0]) == 2 && len(rankGroups[1]) == 2 {
		return Hand{
			Category: TwoPair,
			Ranks:    []Rank{rankGroups[0][0].Rank, rankGroups[1][0].Rank},
		}
	}

	if len(rankGroups[0]) == 2 {
		return Hand{Category: OnePair, Ranks: []Rank{rankGroups[0][0].Rank}}
	}

	high := cards[0].Rank
	for _, c := range cards[1:] {
		if c.Rank > high {
			high = c.Rank
		}
	}
	return Hand{Category: HighCard, Ranks: []Rank{high}}
}
