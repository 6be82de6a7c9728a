package scenario

import (
	"fmt"
	"strings"

	"github.com/lox/plo-equity/poker"
)

// Target is a condition a dealt scenario must satisfy. Player 0 is the hero.
type Target interface {
	Match(d *Deal) bool
	String() string
}

type target struct {
	name  string
	match func(d *Deal) bool
}

func (t target) Match(d *Deal) bool { return t.match(d) }
func (t target) String() string     { return t.name }

// AnyHand accepts every deal.
func AnyHand() Target {
	return target{name: "any", match: func(*Deal) bool { return true }}
}

// MadeHand requires the hero's best hand to be at least atLeast.
func MadeHand(atLeast poker.HandType) Target {
	return target{
		name: "made:" + strings.ReplaceAll(strings.ToLower(atLeast.String()), " ", "-"),
		match: func(d *Deal) bool {
			best, ok := poker.BestOmaha(d.Hero(), d.Board)
			return ok && best.Type >= atLeast
		},
	}
}

// TopSet requires the hero to hold a pocket pair matching the highest board
// card while the board itself is not paired on that rank.
func TopSet() Target {
	return target{
		name: "top-set",
		match: func(d *Deal) bool {
			top := poker.Two
			for _, c := range d.Board {
				top = max(top, c.Rank())
			}
			if countRank(d.Board, top) != 1 || countRank(d.Hero(), top) < 2 {
				return false
			}
			best, ok := poker.BestOmaha(d.Hero(), d.Board)
			return ok && best.Type >= poker.ThreeOfAKind
		},
	}
}

// FlushDrawTarget requires the hero to hold any Omaha flush draw.
func FlushDrawTarget() Target {
	return target{
		name: "flush-draw",
		match: func(d *Deal) bool {
			draw, _ := DetectFlushDraw(d.Hero(), d.Board)
			return draw >= FlushDraw
		},
	}
}

// NutFlushDrawTarget requires the hero to hold the nut flush draw.
func NutFlushDrawTarget() Target {
	return target{
		name: "nut-flush-draw",
		match: func(d *Deal) bool {
			draw, _ := DetectFlushDraw(d.Hero(), d.Board)
			return draw == NutFlushDraw
		},
	}
}

// Leading requires the hero to be the sole winner on the current board.
func Leading() Target {
	return target{
		name: "leading",
		match: func(d *Deal) bool {
			result := poker.EvaluateBoard(d.Hands, d.Board)
			return result.Winner == 0 && len(result.Tied) == 1
		},
	}
}

var madeHandNames = map[string]poker.HandType{
	"pair":           poker.Pair,
	"two-pair":       poker.TwoPair,
	"trips":          poker.ThreeOfAKind,
	"straight":       poker.Straight,
	"flush":          poker.Flush,
	"full-house":     poker.FullHouse,
	"quads":          poker.FourOfAKind,
	"straight-flush": poker.StraightFlush,
}

// TargetNames lists the names accepted by ParseTarget.
func TargetNames() []string {
	return []string{
		"any", "top-set", "flush-draw", "nut-flush-draw", "leading",
		"pair", "two-pair", "trips", "straight", "flush", "full-house", "quads", "straight-flush",
	}
}

// ParseTarget resolves a target by name. Made hand names ("trips",
// "flush", ...) require at least that category.
func ParseTarget(name string) (Target, error) {
	switch strings.ToLower(name) {
	case "", "any":
		return AnyHand(), nil
	case "top-set":
		return TopSet(), nil
	case "flush-draw":
		return FlushDrawTarget(), nil
	case "nut-flush-draw":
		return NutFlushDrawTarget(), nil
	case "leading":
		return Leading(), nil
	}
	if ht, ok := madeHandNames[strings.ToLower(name)]; ok {
		return MadeHand(ht), nil
	}
	return nil, fmt.Errorf("unknown target %q (valid: %s)", name, strings.Join(TargetNames(), ", "))
}

func countRank(cards []poker.Card, rank poker.Rank) int {
	n := 0
	for _, c := range cards {
		if c.Rank() == rank {
			n++
		}
	}
	return n
}
