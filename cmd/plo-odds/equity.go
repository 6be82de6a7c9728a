package main

import (
	"context"
)

type EquityCmd struct {
	Hands         []string `arg:"" help:"Player hands, e.g. 'AsKsQhJh' (2-6 players)"`
	Board         string   `short:"b" help:"Community cards (e.g., 'Td7s8h')"`
	Samples       int      `short:"n" help:"Number of Monte Carlo samples (overrides config)"`
	Workers       int      `short:"w" help:"Parallel Monte Carlo workers (overrides config)"`
	ExactLimit    *int     `help:"Enumerate exactly whenever at most this many boards remain, 0 for the fixed rule (overrides config)"`
	Possibilities bool     `short:"p" help:"Show detailed hand type probabilities"`
}

func (c *EquityCmd) Run(globals *Globals, ctx context.Context) error {
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

	calc := a.calculator(c.Samples, c.Workers, c.ExactLimit)
	report, err := calc.Run(ctx, hands, board)
	if err != nil {
		return err
	}

	displayEquity(a.out, hands, board, report)
	if c.Possibilities {
		displayPossibilities(a.out, hands, report)
	}
	displayFooter(a.out, report)
	return nil
}
