package equity

import (
	"errors"
	"fmt"

	"github.com/lox/plo-equity/poker"
)

const (
	MinPlayers   = 2
	MaxPlayers   = 6
	MinHoleCards = 2
	MaxHoleCards = 6
	MaxBoard     = 5

	// MinSamples is the smallest Monte Carlo sample count accepted.
	MinSamples = 100
)

var (
	ErrPlayerCount   = errors.New("invalid number of players")
	ErrHoleCards     = errors.New("invalid number of hole cards")
	ErrBoardSize     = errors.New("invalid board size")
	ErrInvalidCard   = errors.New("invalid card")
	ErrDuplicateCard = errors.New("duplicate card")
	ErrSampleCount   = errors.New("invalid sample count")

	// ErrStale is returned by a Runner when a newer computation superseded
	// the one in flight.
	ErrStale = errors.New("computation superseded by a newer request")
)

// Validate checks the inputs shared by every calculation and returns the
// set of cards in use.
func Validate(hands [][]poker.Card, board []poker.Card) (poker.CardSet, error) {
	if len(hands) < MinPlayers || len(hands) > MaxPlayers {
		return 0, fmt.Errorf("%w: %d (must be %d-%d)", ErrPlayerCount, len(hands), MinPlayers, MaxPlayers)
	}
	if len(board) > MaxBoard {
		return 0, fmt.Errorf("%w: %d cards (at most %d)", ErrBoardSize, len(board), MaxBoard)
	}

	var used poker.CardSet
	for _, card := range board {
		if !card.Valid() {
			return 0, fmt.Errorf("%w: %d on board", ErrInvalidCard, card)
		}
		if used.Contains(card) {
			return 0, fmt.Errorf("%w: %s on board", ErrDuplicateCard, card)
		}
		used.Add(card)
	}

	for i, hand := range hands {
		if len(hand) < MinHoleCards || len(hand) > MaxHoleCards {
			return 0, fmt.Errorf("%w: hand %d has %d (must be %d-%d)",
				ErrHoleCards, i+1, len(hand), MinHoleCards, MaxHoleCards)
		}
		for _, card := range hand {
			if !card.Valid() {
				return 0, fmt.Errorf("%w: %d in hand %d", ErrInvalidCard, card, i+1)
			}
			if used.Contains(card) {
				return 0, fmt.Errorf("%w: %s in hand %d", ErrDuplicateCard, card, i+1)
			}
			used.Add(card)
		}
	}
	return used, nil
}
