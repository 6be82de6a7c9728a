package poker

// BestOmaha returns the best five card hand that uses exactly two hole cards
// and exactly three board cards. It reports false when fewer than two hole
// cards or fewer than three board cards are available, meaning the hand
// cannot be evaluated yet.
func BestOmaha(hole, board []Card) (HandEvaluation, bool) {
	if len(hole) < 2 || len(board) < 3 {
		return HandEvaluation{}, false
	}

	pairs := holePairs.get(len(hole))
	if pairs == nil {
		pairs = indexSubsets(len(hole), 2)
	}
	triples := boardTriples.get(len(board))
	if triples == nil {
		triples = indexSubsets(len(board), 3)
	}

	var best HandEvaluation
	found := false
	var five [5]Card
	for _, p := range pairs {
		five[0], five[1] = hole[p[0]], hole[p[1]]
		for _, t := range triples {
			five[2], five[3], five[4] = board[t[0]], board[t[1]], board[t[2]]
			h := Evaluate5(five)
			if !found || Compare(h, best) > 0 {
				best = h
				found = true
			}
		}
	}
	return best, found
}

func indexSubsets(n, k int) [][]int {
	var out [][]int
	for idx := range CombinationIndices(n, k) {
		out = append(out, append([]int(nil), idx...))
	}
	return out
}

// BoardResult identifies the winner(s) of one fully specified board.
// Tied has a single entry for a sole winner; otherwise it lists every tied
// player and Winner is the first of them.
type BoardResult struct {
	Winner int
	Tied   []int
}

// Split reports whether the pot is shared between several players.
func (r BoardResult) Split() bool {
	return len(r.Tied) > 1
}

// PlayerHand is one player's best hand on a board. OK is false when the
// player has too few hole cards to make an Omaha hand.
type PlayerHand struct {
	Hand HandEvaluation
	OK   bool
}

// EvaluateBoard finds the winner or tied set among all players for a board
// of at least three cards.
func EvaluateBoard(hands [][]Card, board []Card) BoardResult {
	result, _ := EvaluateBoardHands(hands, board)
	return result
}

// EvaluateBoardHands is EvaluateBoard that also returns every player's best
// hand. A player without a valid hand ranks below every evaluated hand.
func EvaluateBoardHands(hands [][]Card, board []Card) (BoardResult, []PlayerHand) {
	if len(hands) == 0 {
		return BoardResult{Winner: -1}, nil
	}

	evals := make([]PlayerHand, len(hands))
	for i, hole := range hands {
		h, ok := BestOmaha(hole, board)
		evals[i] = PlayerHand{Hand: h, OK: ok}
	}

	best := 0
	tied := []int{0}
	for i := 1; i < len(evals); i++ {
		switch cmp := comparePlayers(evals[i], evals[best]); {
		case cmp > 0:
			best = i
			tied = append(tied[:0], i)
		case cmp == 0:
			tied = append(tied, i)
		}
	}
	return BoardResult{Winner: best, Tied: tied}, evals
}

func comparePlayers(a, b PlayerHand) int {
	switch {
	case a.OK && b.OK:
		return Compare(a.Hand, b.Hand)
	case a.OK:
		return 1
	case b.OK:
		return -1
	default:
		return 0
	}
}
