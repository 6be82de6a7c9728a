package main

import (
	"context"
	"fmt"

	"github.com/lox/plo-equity/equity"
)

type NextCardCmd struct {
	Hands  []string `arg:"" help:"Player hands, e.g. 'AsKsQhJh' (2-6 players)"`
	Board  string   `short:"b" required:"" help:"Flop or turn (3 or 4 cards)"`
	Player int      `default:"1" help:"Rank cards by this player's equity (1-based)"`
	Top    int      `short:"t" default:"10" help:"Show only the best N cards (0 shows all)"`
}

func (c *NextCardCmd) Run(globals *Globals, ctx context.Context) error {
	a, err := globals.setup()
	if err != nil {
		return err
	}

	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}
	if c.Player < 1 || c.Player > len(hands) {
		return fmt.Errorf("player must be between 1 and %d", len(hands))
	}

	calc := a.calculator(0, 0, nil)
	results, err := calc.NextCards(ctx, hands, board)
	if err != nil {
		return err
	}

	ranked := equity.RankNextCards(results, c.Player-1)
	displayNextCards(a.out, hands, board, ranked, c.Player-1, c.Top)
	return nil
}
