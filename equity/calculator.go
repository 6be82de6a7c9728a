// Package equity computes showdown equity for two to six Omaha players,
// exactly when at most two board cards are missing and by Monte Carlo
// sampling otherwise, and breaks equity down by the next community card.
package equity

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/plo-equity/internal/randutil"
	"github.com/lox/plo-equity/poker"
)

const (
	// DefaultSamples is the Monte Carlo sample count when none is configured.
	DefaultSamples = 30000

	// exactNeed is the largest number of missing board cards that is
	// enumerated exactly when no exact limit is configured.
	exactNeed = 2

	// chunkSize is how many boards are evaluated between context checks
	// and progress reports.
	chunkSize = 1024
)

// ProgressFunc receives the number of boards evaluated so far and the
// number planned. With several workers it may be called concurrently.
type ProgressFunc func(done, total int)

// Calculator runs equity calculations. It is safe for concurrent use; each
// call draws its own random stream from the calculator's generator.
type Calculator struct {
	samples    int
	workers    int
	exactLimit int

	mu  sync.Mutex
	rng *rand.Rand

	logger   *log.Logger
	clock    quartz.Clock
	progress ProgressFunc
}

// Option is a functional option for configuring the Calculator
type Option func(*Calculator)

// WithSamples sets the number of Monte Carlo samples. Sampled runs need at
// least MinSamples; exact runs ignore it.
func WithSamples(n int) Option {
	return func(c *Calculator) {
		c.samples = n
	}
}

// WithWorkers sets the number of parallel Monte Carlo workers
func WithWorkers(n int) Option {
	return func(c *Calculator) {
		c.workers = n
	}
}

// WithExactLimit switches from the fixed "at most two missing cards" rule
// to a cost based one: boards are enumerated exactly whenever the number of
// completions is at most n. Zero restores the fixed rule.
func WithExactLimit(n int) Option {
	return func(c *Calculator) {
		c.exactLimit = n
	}
}

// WithRand sets the random source used for sampling.
func WithRand(rng *rand.Rand) Option {
	return func(c *Calculator) {
		c.rng = rng
	}
}

// WithSeed sets the random seed for reproducible results
func WithSeed(seed int64) Option {
	return func(c *Calculator) {
		c.rng = randutil.New(seed)
	}
}

// WithLogger sets the logger; the default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// WithClock sets the clock used to time calculations.
func WithClock(clock quartz.Clock) Option {
	return func(c *Calculator) {
		c.clock = clock
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Calculator) {
		c.progress = fn
	}
}

// NewCalculator creates a new equity calculator with the given options
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		samples: DefaultSamples,
		workers: 1,
		logger:  log.New(io.Discard),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng, _ = randutil.NewFromTime()
	}
	if c.workers < 1 {
		c.workers = 1
	}
	c.logger = c.logger.WithPrefix("equity")
	return c
}

// Samples returns the configured Monte Carlo sample count.
func (c *Calculator) Samples() int {
	return c.samples
}

// Calculate returns every player's equity for the given hole cards and a
// board of 0-5 cards.
func (c *Calculator) Calculate(ctx context.Context, hands [][]poker.Card, board []poker.Card) ([]EquityResult, error) {
	report, err := c.Run(ctx, hands, board)
	if err != nil {
		return nil, err
	}
	return report.Players, nil
}

// Run is Calculate returning the full report.
func (c *Calculator) Run(ctx context.Context, hands [][]poker.Card, board []poker.Card) (*Report, error) {
	used, err := Validate(hands, board)
	if err != nil {
		return nil, err
	}

	hands, board = copyHands(hands), append([]poker.Card(nil), board...)
	unseen := poker.Remaining(used)
	need := MaxBoard - len(board)
	method := c.method(len(unseen), need)
	if method == MethodMonteCarlo && c.samples < MinSamples {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrSampleCount, c.samples, MinSamples)
	}

	start := c.clock.Now()
	var t *tally
	if method == MethodExact {
		t = newTally(len(hands))
		err = c.enumerate(ctx, hands, board, unseen, need, t)
	} else {
		t, err = c.sample(ctx, hands, board, unseen, need, c.streams())
	}
	if err != nil {
		return nil, err
	}
	elapsed := c.clock.Now().Sub(start)

	c.logger.Debug("Equity calculated",
		"players", len(hands),
		"board", poker.FormatCards(board),
		"method", method,
		"boards", t.total,
		"elapsed", elapsed)

	return &Report{
		Players: t.results(method),
		Method:  method,
		Boards:  t.total,
		Elapsed: elapsed,
	}, nil
}

// method picks exact enumeration or sampling for the number of missing
// board cards.
func (c *Calculator) method(unseen, need int) Method {
	if c.exactLimit > 0 {
		if poker.Binomial(unseen, need) <= c.exactLimit {
			return MethodExact
		}
		return MethodMonteCarlo
	}
	if need <= exactNeed {
		return MethodExact
	}
	return MethodMonteCarlo
}

// enumerate evaluates every completion of board using `need` unseen cards.
func (c *Calculator) enumerate(ctx context.Context, hands [][]poker.Card, board, unseen []poker.Card, need int, t *tally) error {
	planned := poker.Binomial(len(unseen), need)
	trial := make([]poker.Card, len(board)+need)
	copy(trial, board)

	done := 0
	for idx := range poker.CombinationIndices(len(unseen), need) {
		for i, j := range idx {
			trial[len(board)+i] = unseen[j]
		}
		t.add(poker.EvaluateBoardHands(hands, trial))
		done++
		if done%chunkSize == 0 {
			c.report(done, planned)
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	c.report(done, planned)
	return nil
}

// streams hands out the random generators for one Monte Carlo run.
func (c *Calculator) streams() []*rand.Rand {
	c.mu.Lock()
	defer c.mu.Unlock()
	return randutil.Split(c.rng, c.workers)
}

func (c *Calculator) report(done, total int) {
	if c.progress != nil {
		c.progress(done, total)
	}
}

func copyHands(hands [][]poker.Card) [][]poker.Card {
	out := make([][]poker.Card, len(hands))
	for i, h := range hands {
		out[i] = append([]poker.Card(nil), h...)
	}
	return out
}
