package scenario

import (
	"github.com/lox/plo-equity/poker"
)

// DrawType classifies an unmade Omaha hand.
type DrawType int

const (
	NoDraw DrawType = iota
	FlushDraw
	NutFlushDraw
)

func (dt DrawType) String() string {
	switch dt {
	case NoDraw:
		return "no draw"
	case FlushDraw:
		return "flush draw"
	case NutFlushDraw:
		return "nut flush draw"
	default:
		return "unknown"
	}
}

// DrawInfo describes a player's flush draw and the unseen cards that
// improve their hand category.
type DrawInfo struct {
	Type DrawType
	Suit poker.Suit
	Outs []poker.Card
}

// DetectFlushDraw reports an Omaha flush draw: the board shows exactly two
// cards of a suit and the player holds at least two more of it, so one more
// card of that suit completes a flush that uses two hole cards. The draw is
// to the nuts when the player also holds the best missing card of the suit.
func DetectFlushDraw(hole, board []poker.Card) (DrawType, poker.Suit) {
	if len(board) < 3 || len(board) > 4 {
		return NoDraw, 0
	}

	var boardCount, holeCount [4]int
	var boardRanks, holeRanks [4]uint16
	for _, c := range board {
		boardCount[c.Suit()]++
		boardRanks[c.Suit()] |= 1 << c.Rank()
	}
	for _, c := range hole {
		holeCount[c.Suit()]++
		holeRanks[c.Suit()] |= 1 << c.Rank()
	}

	// A board with three of a suit already allows a made flush.
	for suit := range poker.Suit(4) {
		if boardCount[suit] >= 3 {
			return NoDraw, 0
		}
	}

	found := NoDraw
	var drawSuit poker.Suit
	for suit := range poker.Suit(4) {
		if boardCount[suit] != 2 || holeCount[suit] < 2 {
			continue
		}
		draw := FlushDraw
		for rank := poker.Ace; rank >= poker.Two; rank-- {
			if boardRanks[suit]&(1<<rank) != 0 {
				continue
			}
			if holeRanks[suit]&(1<<rank) != 0 {
				draw = NutFlushDraw
			}
			break
		}
		if draw > found {
			found, drawSuit = draw, suit
		}
	}
	return found, drawSuit
}

// Outs returns the unseen cards that would lift the player's best Omaha
// hand into a higher category once dealt. used must contain every card
// known to be out of the deck.
func Outs(hole, board []poker.Card, used poker.CardSet) []poker.Card {
	if len(board) < 3 || len(board) > 4 {
		return nil
	}
	current, ok := poker.BestOmaha(hole, board)
	if !ok {
		return nil
	}

	trial := make([]poker.Card, len(board)+1)
	copy(trial, board)

	var outs []poker.Card
	for _, card := range poker.Remaining(used) {
		trial[len(board)] = card
		if next, ok := poker.BestOmaha(hole, trial); ok && next.Type > current.Type {
			outs = append(outs, card)
		}
	}
	return outs
}

// AnalyzeDraws combines DetectFlushDraw and Outs for one player.
func AnalyzeDraws(hole, board []poker.Card, used poker.CardSet) DrawInfo {
	draw, suit := DetectFlushDraw(hole, board)
	return DrawInfo{
		Type: draw,
		Suit: suit,
		Outs: Outs(hole, board, used),
	}
}
