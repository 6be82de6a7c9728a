package equity

import (
	"math"
	"time"

	"github.com/lox/plo-equity/poker"
)

// Method records how an equity figure was produced.
type Method string

const (
	MethodExact      Method = "exact"
	MethodMonteCarlo Method = "montecarlo"
)

// EquityResult is one player's share of the evaluated boards.
type EquityResult struct {
	Wins  int
	Ties  int
	Total int

	WinPct    float64
	TiePct    float64
	EquityPct float64 // wins plus each tie split evenly among the tied players

	Method Method

	// HandTypes counts the player's final hand category per evaluated board.
	HandTypes [poker.NumHandTypes]int
}

// LossPct returns the percentage of boards the player neither won nor tied.
func (e EquityResult) LossPct() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Total-e.Wins-e.Ties) / float64(e.Total) * 100
}

// HandTypePct returns how often the player finished with hand type t.
func (e EquityResult) HandTypePct(t poker.HandType) float64 {
	if e.Total == 0 || int(t) >= len(e.HandTypes) {
		return 0
	}
	return float64(e.HandTypes[t]) / float64(e.Total) * 100
}

// ConfidenceInterval returns the 95% confidence interval for EquityPct.
// Exact results have no sampling error, so the interval collapses.
func (e EquityResult) ConfidenceInterval() (lower, upper float64) {
	if e.Method == MethodExact || e.Total == 0 {
		return e.EquityPct, e.EquityPct
	}
	p := e.EquityPct / 100
	se := math.Sqrt(p * (1 - p) / float64(e.Total))
	margin := 1.96 * se * 100

	lower = math.Max(0, e.EquityPct-margin)
	upper = math.Min(100, e.EquityPct+margin)
	return lower, upper
}

// Report is the full outcome of a calculation.
type Report struct {
	Players []EquityResult
	Method  Method
	Boards  int
	Elapsed time.Duration
}

// NextCardResult is the equity of every player once Card is dealt.
type NextCardResult struct {
	Card     poker.Card
	Equities []float64 // per player, percent rounded to one decimal
}

// tally accumulates showdown outcomes across boards.
type tally struct {
	wins      []int
	ties      []int
	shares    []float64
	handTypes [][poker.NumHandTypes]int
	total     int
}

func newTally(players int) *tally {
	return &tally{
		wins:      make([]int, players),
		ties:      make([]int, players),
		shares:    make([]float64, players),
		handTypes: make([][poker.NumHandTypes]int, players),
	}
}

func (t *tally) add(result poker.BoardResult, hands []poker.PlayerHand) {
	t.total++
	if len(result.Tied) == 1 {
		t.wins[result.Winner]++
	} else {
		share := 1 / float64(len(result.Tied))
		for _, i := range result.Tied {
			t.ties[i]++
			t.shares[i] += share
		}
	}
	for i, h := range hands {
		if h.OK {
			t.handTypes[i][h.Hand.Type]++
		}
	}
}

func (t *tally) merge(other *tally) {
	t.total += other.total
	for i := range t.wins {
		t.wins[i] += other.wins[i]
		t.ties[i] += other.ties[i]
		t.shares[i] += other.shares[i]
		for j := range t.handTypes[i] {
			t.handTypes[i][j] += other.handTypes[i][j]
		}
	}
}

func (t *tally) equityPct(player int) float64 {
	if t.total == 0 {
		return 0
	}
	return (float64(t.wins[player]) + t.shares[player]) / float64(t.total) * 100
}

func (t *tally) results(method Method) []EquityResult {
	out := make([]EquityResult, len(t.wins))
	for i := range out {
		r := EquityResult{
			Wins:      t.wins[i],
			Ties:      t.ties[i],
			Total:     t.total,
			Method:    method,
			HandTypes: t.handTypes[i],
		}
		if t.total > 0 {
			r.WinPct = float64(t.wins[i]) / float64(t.total) * 100
			r.TiePct = float64(t.ties[i]) / float64(t.total) * 100
			r.EquityPct = t.equityPct(i)
		}
		out[i] = r
	}
	return out
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
