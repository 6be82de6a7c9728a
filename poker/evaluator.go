package poker

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumHandTypes is the number of hand categories.
const NumHandTypes = int(StraightFlush) + 1

// String returns a human-readable hand description.
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandEvaluation is the comparable strength of a five card hand.
//
// Type orders the categories, Primary is the rank defining the category
// (quad, trips or pair rank, straight or flush high card, top card) and the
// kickers break remaining ties left to right.
type HandEvaluation struct {
	Type    HandType
	Primary Rank

	kickers  [5]Rank
	nKickers uint8
}

// Kickers returns the tie-break ranks in descending significance.
func (h HandEvaluation) Kickers() []Rank {
	out := make([]Rank, h.nKickers)
	copy(out, h.kickers[:h.nKickers])
	return out
}

// String returns the category name with its defining rank, e.g. "Pair (K)".
func (h HandEvaluation) String() string {
	return h.Type.String() + " (" + h.Primary.String() + ")"
}

func (h *HandEvaluation) addKicker(r Rank) {
	h.kickers[h.nKickers] = r
	h.nKickers++
}

// Compare returns 1 if a is stronger than b, -1 if weaker and 0 on an exact tie.
func Compare(a, b HandEvaluation) int {
	switch {
	case a.Type > b.Type:
		return 1
	case a.Type < b.Type:
		return -1
	case a.Primary > b.Primary:
		return 1
	case a.Primary < b.Primary:
		return -1
	}
	n := min(a.nKickers, b.nKickers)
	for i := range n {
		if a.kickers[i] > b.kickers[i] {
			return 1
		}
		if a.kickers[i] < b.kickers[i] {
			return -1
		}
	}
	return 0
}

// Compare compares h against other (see Compare).
func (h HandEvaluation) Compare(other HandEvaluation) int {
	return Compare(h, other)
}

// rankGroup is a run of equal ranks within a five card hand.
type rankGroup struct {
	rank  Rank
	count uint8
}

// Evaluate5 scores exactly five cards.
func Evaluate5(cards [5]Card) HandEvaluation {
	// Ranks sorted descending (insertion sort, five elements).
	var ranks [5]Rank
	flush := true
	for i, c := range cards {
		r := c.Rank()
		j := i
		for j > 0 && ranks[j-1] < r {
			ranks[j] = ranks[j-1]
			j--
		}
		ranks[j] = r
		if c.Suit() != cards[0].Suit() {
			flush = false
		}
	}

	// Groups by (count desc, rank desc). Ranks are already descending so a
	// stable sort on count is enough.
	var groups [5]rankGroup
	n := 0
	for i, r := range ranks {
		if i > 0 && r == ranks[i-1] {
			groups[n-1].count++
			continue
		}
		groups[n] = rankGroup{rank: r, count: 1}
		n++
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0 && groups[j-1].count < groups[j].count; j-- {
			groups[j-1], groups[j] = groups[j], groups[j-1]
		}
	}

	straightHigh, straight := straightHighCard(ranks, n)

	var h HandEvaluation
	switch {
	case flush && straight:
		h.Type = StraightFlush
		h.Primary = straightHigh
	case groups[0].count == 4:
		h.Type = FourOfAKind
		h.Primary = groups[0].rank
		h.addKicker(groups[1].rank)
	case groups[0].count == 3 && groups[1].count == 2:
		h.Type = FullHouse
		h.Primary = groups[0].rank
		h.addKicker(groups[1].rank)
	case flush:
		h.Type = Flush
		h.Primary = ranks[0]
		for _, r := range ranks {
			h.addKicker(r)
		}
	case straight:
		h.Type = Straight
		h.Primary = straightHigh
	case groups[0].count == 3:
		h.Type = ThreeOfAKind
		h.Primary = groups[0].rank
		h.addKicker(groups[1].rank)
		h.addKicker(groups[2].rank)
	case groups[0].count == 2 && groups[1].count == 2:
		h.Type = TwoPair
		h.Primary = groups[0].rank
		h.addKicker(groups[1].rank)
		h.addKicker(groups[2].rank)
	case groups[0].count == 2:
		h.Type = Pair
		h.Primary = groups[0].rank
		for _, g := range groups[1:n] {
			h.addKicker(g.rank)
		}
	default:
		h.Type = HighCard
		h.Primary = ranks[0]
		for _, r := range ranks {
			h.addKicker(r)
		}
	}
	return h
}

// EvaluateCards scores a slice of exactly five cards. It reports false for
// any other length.
func EvaluateCards(cards []Card) (HandEvaluation, bool) {
	if len(cards) != 5 {
		return HandEvaluation{}, false
	}
	return Evaluate5([5]Card(cards)), true
}

// straightHighCard detects a straight in five descending ranks with
// `distinct` unique values. The wheel (A-5-4-3-2) is five-high.
func straightHighCard(ranks [5]Rank, distinct int) (Rank, bool) {
	if distinct != 5 {
		return 0, false
	}
	if ranks[0]-ranks[4] == 4 {
		return ranks[0], true
	}
	if ranks[0] == Ace && ranks[1] == Five && ranks[4] == Two {
		return Five, true
	}
	return 0, false
}
