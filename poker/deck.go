package poker

import (
	"math/bits"
	rand "math/rand/v2"
)

// CardSet represents a set of cards using a bitset for fast operations.
// Each card maps to the bit at its index.
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card) != 0
}

// Len returns the number of cards in the set
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// Cards returns the set's cards in deck order.
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Len())
	for rest := uint64(cs); rest != 0; rest &= rest - 1 {
		cards = append(cards, Card(bits.TrailingZeros64(rest)))
	}
	return cards
}

// UsedCards is the union of every player's hole cards and the board.
func UsedCards(hands [][]Card, board []Card) CardSet {
	used := NewCardSet(board...)
	for _, hand := range hands {
		for _, card := range hand {
			used.Add(card)
		}
	}
	return used
}

// BuildDeck returns all 52 cards in a fixed order (2c 2d 2h 2s 3c ... As).
func BuildDeck() []Card {
	cards := make([]Card, NumCards)
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}

// Remaining returns the deck cards not in used, in deck order.
func Remaining(used CardSet) []Card {
	cards := make([]Card, 0, NumCards-used.Len())
	for i := range Card(NumCards) {
		if !used.Contains(i) {
			cards = append(cards, i)
		}
	}
	return cards
}

// Shuffle shuffles cards in place using Fisher-Yates
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Shuffled returns a shuffled copy of cards, leaving the input untouched.
func Shuffled(cards []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	Shuffle(out, rng)
	return out
}
