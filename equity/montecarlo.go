package equity

import (
	"context"
	rand "math/rand/v2"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lox/plo-equity/poker"
)

// sample estimates equity from c.samples random board completions. The work
// is split across one goroutine per generator in rngs; per-worker tallies
// are merged in worker order, so a seeded calculator is reproducible
// regardless of scheduling.
func (c *Calculator) sample(ctx context.Context, hands [][]poker.Card, board, unseen []poker.Card, need int, rngs []*rand.Rand) (*tally, error) {
	workers := len(rngs)
	if workers > c.samples {
		workers = c.samples
	}
	if workers <= 1 {
		t := newTally(len(hands))
		var done atomic.Int64
		err := c.sampleWorker(ctx, hands, board, unseen, need, c.samples, rngs[0], t, &done)
		return t, err
	}

	perWorker := c.samples / workers
	remainder := c.samples % workers
	tallies := make([]*tally, workers)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := perWorker
		if w < remainder {
			n++ // Distribute remainder samples
		}
		tallies[w] = newTally(len(hands))
		g.Go(func() error {
			return c.sampleWorker(gctx, hands, board, unseen, need, n, rngs[w], tallies[w], &done)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t := tallies[0]
	for _, other := range tallies[1:] {
		t.merge(other)
	}
	return t, nil
}

// sampleWorker draws n boards. Each draw is a partial Fisher-Yates shuffle
// of a private copy of the unseen pool: the first `need` positions are a
// uniformly random selection, the same as shuffling the whole pool and
// taking its first cards.
func (c *Calculator) sampleWorker(ctx context.Context, hands [][]poker.Card, board, unseen []poker.Card, need, n int, rng *rand.Rand, t *tally, done *atomic.Int64) error {
	pool := append([]poker.Card(nil), unseen...)
	trial := make([]poker.Card, len(board)+need)
	copy(trial, board)

	reported := 0
	for i := range n {
		if i > 0 && i%chunkSize == 0 {
			reported += chunkSize
			c.report(int(done.Add(chunkSize)), c.samples)
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		for j := range need {
			k := j + rng.IntN(len(pool)-j)
			pool[j], pool[k] = pool[k], pool[j]
			trial[len(board)+j] = pool[j]
		}
		t.add(poker.EvaluateBoardHands(hands, trial))
	}
	c.report(int(done.Add(int64(n-reported))), c.samples)
	return nil
}
