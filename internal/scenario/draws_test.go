package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/plo-equity/poker"
)

func TestDrawTypeString(t *testing.T) {
	assert.Equal(t, "no draw", NoDraw.String())
	assert.Equal(t, "flush draw", FlushDraw.String())
	assert.Equal(t, "nut flush draw", NutFlushDraw.String())
	assert.Equal(t, "unknown", DrawType(9).String())
}

func TestDetectFlushDraw(t *testing.T) {
	tests := []struct {
		name     string
		hole     string
		board    string
		wantType DrawType
		wantSuit poker.Suit
	}{
		{"nut flush draw", "AhKh2c3d", "Qh7h2s", NutFlushDraw, poker.Hearts},
		{"king high draw", "Kh9h2c3d", "Qh7h2s", FlushDraw, poker.Hearts},
		{"king is nut with ace on board", "Kh9h2c3d", "Ah7h2s", NutFlushDraw, poker.Hearts},
		{"one suited hole card is no draw in omaha", "Ah2c3d4s", "Qh7h2s", NoDraw, 0},
		{"rainbow board", "AhKh2c3d", "Qh7s2d", NoDraw, 0},
		{"monotone board", "AhKh2c3d", "Qh7h2h", NoDraw, 0},
		{"turn keeps draw", "AdKd2c3h", "Qd7d2s9c", NutFlushDraw, poker.Diamonds},
		{"two draws prefers nut", "Ks9s Ac2c", "Qs7s3c8c", NutFlushDraw, poker.Clubs},
		{"river has no draws", "AhKh2c3d", "Qh7h2s9c4d", NoDraw, 0},
		{"flop missing", "AhKh2c3d", "Qh7h", NoDraw, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draw, suit := DetectFlushDraw(poker.MustParseCards(tt.hole), poker.MustParseCards(tt.board))
			assert.Equal(t, tt.wantType, draw)
			if tt.wantType != NoDraw {
				assert.Equal(t, tt.wantSuit, suit)
			}
		})
	}
}

func TestOuts(t *testing.T) {
	hole := poker.MustParseCards("AhKh2c3d")
	board := poker.MustParseCards("Qh7h8s")
	used := poker.UsedCards([][]poker.Card{hole}, board)

	outs := Outs(hole, board, used)

	// Every remaining heart makes a flush.
	for _, c := range outs {
		assert.False(t, used.Contains(c))
	}
	hearts := 0
	for _, c := range outs {
		if c.Suit() == poker.Hearts {
			hearts++
		}
	}
	assert.Equal(t, 9, hearts)

	// An ace or king pairs the hand. A jack needs a ten on the board as
	// well to make Broadway, and a four does nothing.
	assert.Contains(t, outs, poker.NewCard(poker.Ace, poker.Spades))
	assert.Contains(t, outs, poker.NewCard(poker.King, poker.Clubs))
	assert.NotContains(t, outs, poker.NewCard(poker.Jack, poker.Clubs))
	assert.NotContains(t, outs, poker.NewCard(poker.Ten, poker.Diamonds))
	assert.NotContains(t, outs, poker.NewCard(poker.Four, poker.Spades))
}

func TestOutsStraight(t *testing.T) {
	hole := poker.MustParseCards("JhTc2c3d")
	board := poker.MustParseCards("Qh7h9s")
	used := poker.UsedCards([][]poker.Card{hole}, board)

	outs := Outs(hole, board, used)

	// J-T with Q-9 on board needs an eight or a king.
	assert.Contains(t, outs, poker.NewCard(poker.Eight, poker.Clubs))
	assert.Contains(t, outs, poker.NewCard(poker.King, poker.Spades))
	assert.NotContains(t, outs, poker.NewCard(poker.Four, poker.Spades))
	assert.NotContains(t, outs, poker.NewCard(poker.Six, poker.Clubs))
}

func TestOutsNeedsFlop(t *testing.T) {
	assert.Nil(t, Outs(poker.MustParseCards("AhKh2c3d"), poker.MustParseCards("Qh7h"), 0))
}

func TestAnalyzeDraws(t *testing.T) {
	hole := poker.MustParseCards("AhKh2c3d")
	board := poker.MustParseCards("Qh7h8s")
	info := AnalyzeDraws(hole, board, poker.UsedCards([][]poker.Card{hole}, board))
	assert.Equal(t, NutFlushDraw, info.Type)
	assert.Equal(t, poker.Hearts, info.Suit)
	assert.NotEmpty(t, info.Outs)
}
