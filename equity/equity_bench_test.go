package equity

import (
	"context"
	"testing"

	"github.com/lox/plo-equity/poker"
)

func BenchmarkCalculateExactFlop(b *testing.B) {
	calc := NewCalculator()
	hands := parseHands("AsAhKsKh", "QsQhJsJh")
	board := poker.MustParseCards("2c3d4h")
	ctx := context.Background()

	for b.Loop() {
		if _, err := calc.Calculate(ctx, hands, board); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCalculateMonteCarlo(b *testing.B) {
	for _, workers := range []int{1, 4} {
		b.Run(workersName(workers), func(b *testing.B) {
			calc := NewCalculator(WithSamples(10000), WithSeed(1), WithWorkers(workers))
			hands := parseHands("AsAhKsKh", "QsQhJsJh", "9c9d8c8d")
			ctx := context.Background()

			for b.Loop() {
				if _, err := calc.Calculate(ctx, hands, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNextCardsFlop(b *testing.B) {
	calc := NewCalculator()
	hands := parseHands("AsAhKsKh6c", "QsQhJsJh7d")
	board := poker.MustParseCards("2c3d4h")
	ctx := context.Background()

	for b.Loop() {
		if _, err := calc.NextCards(ctx, hands, board); err != nil {
			b.Fatal(err)
		}
	}
}

func workersName(n int) string {
	if n == 1 {
		return "sequential"
	}
	return "parallel"
}
