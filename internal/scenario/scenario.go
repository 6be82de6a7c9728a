// Package scenario deals random Omaha situations that satisfy a requested
// hand or draw category, for practice and for exploring equities.
package scenario

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/plo-equity/poker"
)

// MaxAttempts is the default number of deals tried before giving up.
const MaxAttempts = 200

var (
	// ErrNoScenario is returned when no deal within the attempt budget
	// satisfied the target.
	ErrNoScenario = errors.New("no deal satisfied the target")

	ErrInvalidSetup = errors.New("invalid scenario setup")
)

// Deal is one dealt scenario.
type Deal struct {
	Hands    [][]poker.Card
	Board    []poker.Card
	Attempts int
}

// Hero returns player 0's hole cards.
func (d *Deal) Hero() []poker.Card {
	return d.Hands[0]
}

// Used returns every card in the deal.
func (d *Deal) Used() poker.CardSet {
	return poker.UsedCards(d.Hands, d.Board)
}

// Generator deals scenarios from a random source. It is not safe for
// concurrent use.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
	logger      *log.Logger
	deck        []poker.Card
}

// Option configures a Generator
type Option func(*Generator)

// WithMaxAttempts sets how many deals are tried per request
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		g.maxAttempts = n
	}
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand, opts ...Option) *Generator {
	g := &Generator{
		rng:         rng,
		maxAttempts: MaxAttempts,
		logger:      log.New(io.Discard),
		deck:        poker.BuildDeck(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maxAttempts < 1 {
		g.maxAttempts = 1
	}
	g.logger = g.logger.WithPrefix("scenario")
	return g
}

// Deal shuffles and deals until target matches or the attempt budget runs
// out. players is 2-6, holeCards 4-6 and boardCards 3 or 4.
func (g *Generator) Deal(players, holeCards, boardCards int, target Target) (*Deal, error) {
	if players < 2 || players > 6 {
		return nil, fmt.Errorf("%w: %d players (must be 2-6)", ErrInvalidSetup, players)
	}
	if holeCards < 4 || holeCards > 6 {
		return nil, fmt.Errorf("%w: %d hole cards (must be 4-6)", ErrInvalidSetup, holeCards)
	}
	if boardCards != 3 && boardCards != 4 {
		return nil, fmt.Errorf("%w: %d board cards (must be 3 or 4)", ErrInvalidSetup, boardCards)
	}

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		d := g.deal(players, holeCards, boardCards)
		d.Attempts = attempt
		if target.Match(d) {
			g.logger.Debug("Scenario dealt",
				"target", target,
				"attempts", attempt,
				"hero", poker.FormatCards(d.Hero()),
				"board", poker.FormatCards(d.Board))
			return d, nil
		}
	}

	g.logger.Debug("Scenario not found", "target", target, "attempts", g.maxAttempts)
	return nil, fmt.Errorf("%w: %s after %d attempts", ErrNoScenario, target, g.maxAttempts)
}

func (g *Generator) deal(players, holeCards, boardCards int) *Deal {
	poker.Shuffle(g.deck, g.rng)

	d := &Deal{Hands: make([][]poker.Card, players)}
	next := 0
	for p := range d.Hands {
		d.Hands[p] = append([]poker.Card(nil), g.deck[next:next+holeCards]...)
		next += holeCards
	}
	d.Board = append([]poker.Card(nil), g.deck[next:next+boardCards]...)
	return d
}
