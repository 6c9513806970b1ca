// Package poker provides the card model, hand evaluator and hand
// comparator for Texas Hold'em.
package poker

import "fmt"

// Rank represents a card rank, ace high. There is no low ace; wheel
// straights (A-2-3-4-5) are not recognised.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank.
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "Jack"
	case r == Queen:
		return "Queen"
	case r == King:
		return "King"
	case r == Ace:
		return "Ace"
	default:
		return "?"
	}
}

// Ranks returns all ranks in ascending order.
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Suit represents a card suit.
type Suit int

const (
	Clubs Suit = iota
	Spades
	Diamonds
	Hearts
)

// String returns the string representation of a suit.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds).
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Suits returns all four suits.
func Suits() []Suit {
	return []Suit{Clubs, Spades, Diamonds, Hearts}
}

// Card is a playing card with a rank and a suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the string representation of a card.
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
