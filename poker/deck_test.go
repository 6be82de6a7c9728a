package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/plo-equity/internal/randutil"
)

func TestBuildDeck(t *testing.T) {
	t.Parallel()
	deck := BuildDeck()
	require.Len(t, deck, NumCards)

	var seen CardSet
	for i, card := range deck {
		assert.Equal(t, Card(i), card, "deck order is index order")
		assert.False(t, seen.Contains(card), "duplicate %s", card)
		seen.Add(card)
	}
	assert.Equal(t, NumCards, seen.Len())
	assert.Equal(t, "2c", deck[0].String())
	assert.Equal(t, "As", deck[NumCards-1].String())
}

func TestShuffleIsSeededAndComplete(t *testing.T) {
	t.Parallel()
	a := Shuffled(BuildDeck(), randutil.New(99))
	b := Shuffled(BuildDeck(), randutil.New(99))
	c := Shuffled(BuildDeck(), randutil.New(100))

	assert.Equal(t, a, b, "same seed, same order")
	assert.NotEqual(t, a, c, "different seed, different order")
	assert.Equal(t, NumCards, NewCardSet(a...).Len(), "shuffle keeps every card")
}

func TestShuffledLeavesInputUntouched(t *testing.T) {
	t.Parallel()
	deck := BuildDeck()
	_ = Shuffled(deck, randutil.New(1))
	assert.Equal(t, BuildDeck(), deck)
}

func TestCardSet(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("AsKh2c")
	cs := NewCardSet(cards...)

	assert.Equal(t, 3, cs.Len())
	for _, c := range cards {
		assert.True(t, cs.Contains(c))
	}
	assert.False(t, cs.Contains(NewCard(Ace, Hearts)))
	assert.Equal(t, "2c Kh As", FormatCards(cs.Cards()))
}

func TestUsedAndRemaining(t *testing.T) {
	t.Parallel()
	hands := [][]Card{
		MustParseCards("AsAhKsKh"),
		MustParseCards("QsQhJsJh"),
	}
	board := MustParseCards("2c3d4h")

	used := UsedCards(hands, board)
	assert.Equal(t, 11, used.Len())

	remaining := Remaining(used)
	assert.Len(t, remaining, NumCards-11)
	for i, c := range remaining {
		assert.False(t, used.Contains(c), "%s should be unseen", c)
		if i > 0 {
			assert.Less(t, remaining[i-1], c, "remaining cards stay in deck order")
		}
	}
}
