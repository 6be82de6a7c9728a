package poker

import (
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/plo-equity/internal/randutil"
)

func eval(t *testing.T, s string) HandEvaluation {
	t.Helper()
	h, ok := EvaluateCards(MustParseCards(s))
	require.True(t, ok, "need five cards: %s", s)
	return h
}

func TestEvaluate5Categories(t *testing.T) {
	tests := []struct {
		name    string
		cards   string
		want    HandType
		primary Rank
		kickers []Rank
	}{
		{"Royal Flush", "AsKsQsJsTs", StraightFlush, Ace, []Rank{}},
		{"Straight Flush", "9h8h7h6h5h", StraightFlush, Nine, []Rank{}},
		{"Steel Wheel", "As2s3s4s5s", StraightFlush, Five, []Rank{}},
		{"Four of a Kind", "AsAhAdAcKs", FourOfAKind, Ace, []Rank{King}},
		{"Full House", "3s3h3dKsKh", FullHouse, Three, []Rank{King}},
		{"Flush", "AsKsQs8s6s", Flush, Ace, []Rank{Ace, King, Queen, Eight, Six}},
		{"Straight", "AsKhQdJcTs", Straight, Ace, []Rank{}},
		{"Wheel", "Ah2s3d4c5s", Straight, Five, []Rank{}},
		{"Three of a Kind", "7s7h7dKs2c", ThreeOfAKind, Seven, []Rank{King, Two}},
		{"Two Pair", "AsAhKdKs9c", TwoPair, Ace, []Rank{King, Nine}},
		{"One Pair", "AsAhKdQs9c", Pair, Ace, []Rank{King, Queen, Nine}},
		{"High Card", "AsKhQd9s7c", HighCard, Ace, []Rank{Ace, King, Queen, Nine, Seven}},
		{"Not a straight (gap)", "AsKhQdJc9s", HighCard, Ace, []Rank{Ace, King, Queen, Jack, Nine}},
		{"Not a wraparound straight", "QsKhAd2c3s", HighCard, Ace, []Rank{Ace, King, Queen, Three, Two}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := eval(t, tt.cards)
			assert.Equal(t, tt.want, h.Type, "type for %s", tt.cards)
			assert.Equal(t, tt.primary, h.Primary, "primary for %s", tt.cards)
			assert.Equal(t, tt.kickers, h.Kickers(), "kickers for %s", tt.cards)
		})
	}
}

func TestEvaluate5IgnoresCardOrder(t *testing.T) {
	cards := MustParseCards("Kd9c5sKs9h")
	rng := randutil.New(3)
	want := Evaluate5([5]Card(cards))
	for range 20 {
		Shuffle(cards, rng)
		assert.Equal(t, want, Evaluate5([5]Card(cards)))
	}
}

func TestHandTypeOrdering(t *testing.T) {
	// One representative per category, weakest first.
	hands := []string{
		"AsKhQd9s7c",
		"2s2hKdQs9c",
		"2s2h3d3s9c",
		"2s2h2d3s4c",
		"Ah2s3d4c5s",
		"2s3s4s5s7s",
		"2s2h2d3s3c",
		"2s2h2d2c3s",
		"As2s3s4s5s",
	}
	for i := 1; i < len(hands); i++ {
		weaker, stronger := eval(t, hands[i-1]), eval(t, hands[i])
		assert.Equal(t, HandType(i), stronger.Type)
		assert.Equal(t, 1, Compare(stronger, weaker), "%s should beat %s", hands[i], hands[i-1])
		assert.Equal(t, -1, Compare(weaker, stronger))
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"higher pair wins", "KsKh2d3c4s", "QsQhAdKcJs", 1},
		{"pair kicker decides", "KsKhAd3c4s", "KdKcQd3h4h", 1},
		{"last kicker decides", "KsKhAd3c5s", "KdKcAh3h4h", 1},
		{"identical ranks tie", "KsKhAd3c5s", "KdKcAh3h5h", 0},
		{"two pair low pair", "AsAhKdKc2s", "AdAcQdQc3s", 1},
		{"two pair kicker", "AsAhKdKc3s", "AdAcKhKs2s", 1},
		{"wheel loses to six-high straight", "Ah2s3d4c5s", "2h3s4d5c6s", -1},
		{"flush second card", "AsKs9s7s2s", "AhQh9h7h2h", 1},
		{"flush tie", "AsKs9s7s2s", "AhKh9h7h2h", 0},
		{"full house trips first", "QsQhQd2s2h", "JsJhJdAsAh", 1},
		{"full house pair", "QsQhQdAsAh", "QcQhQsKsKh", 1},
		{"quads kicker", "9s9h9d9cAs", "9s9h9d9cKs", 1},
		{"trips kicker", "7s7h7dAs2c", "7c7h7dKs2h", 1},
		{"straight flush beats quads", "5h6h7h8h9h", "AsAhAdAcKs", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := eval(t, tt.a), eval(t, tt.b)
			assert.Equal(t, tt.want, Compare(a, b))
			assert.Equal(t, -tt.want, b.Compare(a), "compare is antisymmetric")
		})
	}
}

// oracleEval scores five cards with an independent evaluator.
func oracleEval(t *testing.T, cards [5]Card) int16 {
	t.Helper()
	suits := [...]ph.Suit{ph.Club, ph.Diamond, ph.Heart, ph.Spade}
	var hand [5]ph.Card
	for i, c := range cards {
		rank := ph.Rank(c.Rank())
		if c.Rank() == Ace {
			rank = 1
		}
		pc, err := ph.MakeCard(suits[c.Suit()], rank)
		require.NoError(t, err)
		hand[i] = pc
	}
	return ph.Eval5(&hand)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func TestEvaluate5AgreesWithOracle(t *testing.T) {
	rng := randutil.New(20240601)
	deck := BuildDeck()
	for i := range 5000 {
		Shuffle(deck, rng)
		a := [5]Card(deck[0:5])
		b := [5]Card(deck[5:10])

		got := Compare(Evaluate5(a), Evaluate5(b))
		want := sign(int(oracleEval(t, a)) - int(oracleEval(t, b)))
		if got != want {
			t.Fatalf("sample %d: %v vs %v: got %d, oracle %d",
				i, FormatCards(a[:]), FormatCards(b[:]), got, want)
		}
	}
}
