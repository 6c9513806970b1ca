package poker

import (
	"errors"
	"math/rand"
)

// ErrDeckExhausted is returned when a deal requires more cards than the
// deck holds. Callers must treat this as a hard stop for the current
// round; the deck never wraps around.
var ErrDeckExhausted = errors.New("poker: not enough cards left in deck")

// Deck is an ordered set of cards that are consumed exactly once.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a standard 52-card deck, shuffled with the supplied
// RNG. Pass a seeded rand.Rand for deterministic tests.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for _, s := range Suits() {
		for _, r := range Ranks() {
			d.cards = append(d.cards, Card{Rank: r, Suit: s})
		}
	}
	d.Shuffle()
	return d
}

// Shuffle randomises the order of the remaining cards.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Take removes and returns the top n cards.
func (d *Deck) Take(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, ErrDeckExhausted
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards, nil
}

// Burn discards the top card.
func (d *Deck) Burn() error {
	if len(d.cards) == 0 {
		return ErrDeckExhausted
	}
	d.cards = d.cards[1:]
	return nil
}

// Contains reports whether the deck still holds the given card.
func (d *Deck) Contains(c Card) bool {
	for _, dc := range d.cards {
		if dc == c {
			return true
		}
	}
	return false
}
