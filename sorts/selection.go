package sorts

import "github.com/katalvlaran/sortlab/instrument"

// Selection sorts seq by swapping the minimum of each suffix into place.
// Already-placed minima are not swapped with themselves.
//
// Complexity: exactly n(n-1)/2 comparisons, at most n-1 swaps.
func Selection(seq []int, in *instrument.Instrumentation, opts ...Option) ([]int, error) {
	if _, err := resolve(in, opts); err != nil {
		return nil, err
	}

	n := len(seq)
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			lt, err := in.CompareAt(seq[j], seq[minIdx], j, minIdx, instrument.LT)
			if err != nil {
				return nil, err
			}
			if lt {
				minIdx = j
			}
		}
		if minIdx != i {
			in.Swap(seq, i, minIdx)
		}
	}
	return seq, nil
}
