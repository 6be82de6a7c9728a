package equity

import (
	"context"
	"fmt"
	"sync"

	"github.com/lox/plo-equity/poker"
)

// Runner serves interactive callers that recompute equity whenever the
// hands or board change. Each request starts a new generation and cancels
// the one in flight, and a superseded request returns ErrStale instead of
// its result.
type Runner struct {
	calc *Calculator

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewRunner creates a Runner around calc.
func NewRunner(calc *Calculator) *Runner {
	return &Runner{calc: calc}
}

// Generation returns the number of requests started so far.
func (r *Runner) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}

// Calculate runs Calculator.Run as a new generation.
func (r *Runner) Calculate(ctx context.Context, hands [][]poker.Card, board []poker.Card) (*Report, error) {
	return runGeneration(r, ctx, func(ctx context.Context) (*Report, error) {
		return r.calc.Run(ctx, hands, board)
	})
}

// NextCards runs Calculator.NextCards as a new generation.
func (r *Runner) NextCards(ctx context.Context, hands [][]poker.Card, board []poker.Card) ([]NextCardResult, error) {
	return runGeneration(r, ctx, func(ctx context.Context) ([]NextCardResult, error) {
		return r.calc.NextCards(ctx, hands, board)
	})
}

func (r *Runner) begin(parent context.Context) (context.Context, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	r.generation++
	r.cancel = cancel
	return ctx, r.generation
}

// finish releases the generation's context and reports whether it is
// still the latest one.
func (r *Runner) finish(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.generation != gen {
		return false
	}
	r.cancel()
	r.cancel = nil
	return true
}

func runGeneration[T any](r *Runner, parent context.Context, fn func(context.Context) (T, error)) (T, error) {
	ctx, gen := r.begin(parent)
	result, err := fn(ctx)
	if !r.finish(gen) {
		var zero T
		return zero, fmt.Errorf("%w: generation %d", ErrStale, gen)
	}
	return result, err
}
