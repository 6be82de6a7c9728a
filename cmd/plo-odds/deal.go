package main

import (
	"context"
	"strings"

	"github.com/lox/plo-equity/internal/scenario"
)

type DealCmd struct {
	Players    int    `short:"n" help:"Number of players (overrides config)"`
	Hole       int    `help:"Hole cards per player (overrides config)"`
	BoardCards int    `help:"Board cards to deal, 3 or 4 (overrides config)"`
	Target     string `short:"t" default:"any" help:"Hero target: ${targets}"`
	Equity     bool   `default:"true" negatable:"" help:"Calculate equity for the dealt scenario"`
}

// targetHelp is bound to ${targets} in the deal command help.
var targetHelp = strings.Join(scenario.TargetNames(), ", ")

func (c *DealCmd) Run(globals *Globals, ctx context.Context) error {
	a, err := globals.setup()
	if err != nil {
		return err
	}

	target, err := scenario.ParseTarget(c.Target)
	if err != nil {
		return err
	}

	players, hole, boardCards := c.Players, c.Hole, c.BoardCards
	if players == 0 {
		players = a.cfg.Scenario.Players
	}
	if hole == 0 {
		hole = a.cfg.Scenario.HoleCards
	}
	if boardCards == 0 {
		boardCards = a.cfg.Scenario.BoardCards
	}

	gen := scenario.NewGenerator(a.rng,
		scenario.WithMaxAttempts(a.cfg.Scenario.MaxAttempts),
		scenario.WithLogger(a.logger))
	deal, err := gen.Deal(players, hole, boardCards, target)
	if err != nil {
		return err
	}

	displayDeal(a.out, deal, target)

	if !c.Equity {
		return nil
	}
	report, err := a.calculator(0, 0, nil).Run(ctx, deal.Hands, deal.Board)
	if err != nil {
		return err
	}
	displayEquity(a.out, deal.Hands, nil, report)
	displayFooter(a.out, report)
	return nil
}
