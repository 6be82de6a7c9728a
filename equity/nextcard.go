package equity

import (
	"context"
	"fmt"
	"slices"

	"github.com/lox/plo-equity/poker"
)

// NextCards computes, for every unseen card, each player's equity once that
// card is dealt. The board must hold three (turn pending) or four (river
// pending) cards. Results are in deck order, one per unseen card.
func (c *Calculator) NextCards(ctx context.Context, hands [][]poker.Card, board []poker.Card) ([]NextCardResult, error) {
	used, err := Validate(hands, board)
	if err != nil {
		return nil, err
	}
	if len(board) != 3 && len(board) != 4 {
		return nil, fmt.Errorf("%w: next-card analysis needs 3 or 4 board cards, got %d", ErrBoardSize, len(board))
	}

	hands = copyHands(hands)
	start := c.clock.Now()
	unseen := poker.Remaining(used)
	results := make([]NextCardResult, 0, len(unseen))

	trialBoard := make([]poker.Card, len(board)+1)
	copy(trialBoard, board)
	rest := make([]poker.Card, 0, len(unseen)-1)

	for i, candidate := range unseen {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		trialBoard[len(board)] = candidate
		rest = append(append(rest[:0], unseen[:i]...), unseen[i+1:]...)

		t := newTally(len(hands))
		need := MaxBoard - len(trialBoard)
		if err := c.enumerate(ctx, hands, trialBoard, rest, need, t); err != nil {
			return nil, err
		}

		equities := make([]float64, len(hands))
		for p := range equities {
			equities[p] = round1(t.equityPct(p))
		}
		results = append(results, NextCardResult{Card: candidate, Equities: equities})
	}

	c.logger.Debug("Next card equities calculated",
		"players", len(hands),
		"board", poker.FormatCards(board),
		"candidates", len(results),
		"elapsed", c.clock.Now().Sub(start))

	return results, nil
}

// RankNextCards orders results by the given player's equity, best card
// first. Cards with equal equity keep deck order. The input is not modified.
func RankNextCards(results []NextCardResult, player int) []NextCardResult {
	ranked := slices.Clone(results)
	slices.SortStableFunc(ranked, func(a, b NextCardResult) int {
		ea, eb := a.Equities[player], b.Equities[player]
		switch {
		case ea > eb:
			return -1
		case ea < eb:
			return 1
		}
		return 0
	})
	return ranked
}
