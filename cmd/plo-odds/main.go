package main

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/lox/plo-equity/equity"
	"github.com/lox/plo-equity/internal/config"
	"github.com/lox/plo-equity/internal/randutil"
	"github.com/lox/plo-equity/poker"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Config  string `short:"c" default:"plo-odds.hcl" help:"Path to HCL configuration file"`
	Seed    *int64 `help:"Random seed for reproducible results"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `help:"Disable coloured output"`

	stdout io.Writer
	stderr io.Writer
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Equity   EquityCmd        `cmd:"" help:"Calculate showdown equity for two to six Omaha hands"`
	NextCard NextCardCmd      `cmd:"next-card" help:"Show every player's equity for each possible next card"`
	Deal     DealCmd          `cmd:"" help:"Deal a random scenario matching a hand or draw target"`
}

func main() {
	cli := CLI{Globals: Globals{stdout: os.Stdout, stderr: os.Stderr}}
	ctx := kong.Parse(&cli, kongOptions()...)

	sigCtx := setupSignalHandler()
	ctx.BindTo(sigCtx, (*context.Context)(nil))
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("plo-odds"),
		kong.Description("Omaha equity calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
			"targets": targetHelp,
		},
	}
}

// setupSignalHandler creates a context that is cancelled on interrupt signals
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

// app is the per-invocation state built from Globals and the config file.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	rng    *rand.Rand
	out    io.Writer
}

func (g *Globals) setup() (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	stdout, stderr := g.stdout, g.stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	level := cfg.Level()
	if g.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(stderr, log.Options{Level: level})
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		logger.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	}

	var rng *rand.Rand
	var seed int64
	if g.Seed != nil {
		seed = *g.Seed
		rng = randutil.New(seed)
	} else {
		rng, seed = randutil.NewFromTime()
	}
	logger.Debug("Starting", "version", version, "config", g.Config, "seed", seed)

	return &app{cfg: cfg, logger: logger, rng: rng, out: stdout}, nil
}

// calculator builds an equity calculator from the config, with any non-zero
// flag values taking precedence. A nil exactLimit keeps the configured one.
func (a *app) calculator(samples, workers int, exactLimit *int) *equity.Calculator {
	if samples == 0 {
		samples = a.cfg.Calculator.Samples
	}
	if workers == 0 {
		workers = a.cfg.Calculator.Workers
	}
	limit := a.cfg.Calculator.ExactLimit
	if exactLimit != nil {
		limit = *exactLimit
	}
	return equity.NewCalculator(
		equity.WithSamples(samples),
		equity.WithWorkers(workers),
		equity.WithExactLimit(limit),
		equity.WithRand(a.rng),
		equity.WithLogger(a.logger),
	)
}

func parseHands(handStrings []string) ([][]poker.Card, error) {
	var hands [][]poker.Card

	for i, handStr := range handStrings {
		hand, err := poker.ParseCards(strings.TrimSpace(handStr))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hand) < equity.MinHoleCards || len(hand) > equity.MaxHoleCards {
			return nil, fmt.Errorf("hand %d: must contain %d-%d cards, got %d",
				i+1, equity.MinHoleCards, equity.MaxHoleCards, len(hand))
		}
		hands = append(hands, hand)
	}

	return hands, nil
}

func parseBoard(board string) ([]poker.Card, error) {
	cards, err := poker.ParseCards(board)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	if len(cards) > equity.MaxBoard {
		return nil, fmt.Errorf("board cannot have more than %d cards", equity.MaxBoard)
	}
	return cards, nil
}
