// Package poker provides the card model and hand evaluation for Omaha
// equity calculations.
//
// Cards are small integers (see Card) so sets of cards fit in a CardSet
// bitset. Evaluate5 scores five cards, BestOmaha picks the best hand made
// from exactly two hole cards and three board cards, and EvaluateBoard
// resolves the winner or tied players on a board.
package poker
