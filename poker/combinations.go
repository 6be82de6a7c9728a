package poker

import "iter"

// Binomial returns C(n, k), or 0 when k is out of range.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// CombinationIndices yields every k-element subset of {0..n-1} as ascending
// index slices, in lexicographic order. The yielded slice is reused between
// iterations; copy it if it must outlive the loop body.
func CombinationIndices(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			if !yield(idx) {
				return
			}
			// Find the rightmost index that can still move right.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Combinations returns every k-element subset of items. Subsets keep the
// relative order of items, and the enumeration order follows item order.
func Combinations[T any](items []T, k int) [][]T {
	out := make([][]T, 0, Binomial(len(items), k))
	for idx := range CombinationIndices(len(items), k) {
		combo := make([]T, k)
		for i, j := range idx {
			combo[i] = items[j]
		}
		out = append(out, combo)
	}
	return out
}

// comboTable caches index subsets for the small selections used by BestOmaha.
type comboTable [][][]int

func newComboTable(maxN, k int) comboTable {
	table := make(comboTable, maxN+1)
	for n := range table {
		for idx := range CombinationIndices(n, k) {
			table[n] = append(table[n], append([]int(nil), idx...))
		}
	}
	return table
}

func (t comboTable) get(n int) [][]int {
	if n < len(t) {
		return t[n]
	}
	return nil
}

const (
	maxHoleCards  = 6
	maxBoardCards = 5
)

var (
	holePairs    = newComboTable(maxHoleCards, 2)
	boardTriples = newComboTable(maxBoardCards, 3)
)
