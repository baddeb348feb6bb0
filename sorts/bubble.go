package sorts

import "github.com/katalvlaran/sortlab/instrument"

// Bubble sorts seq by repeatedly swapping adjacent out-of-order pairs.
// A pass without swaps ends the sort early, so sorted input costs n-1
// comparisons.
//
// Complexity: O(n²) comparisons worst case, O(n) best case.
func Bubble(seq []int, in *instrument.Instrumentation, opts ...Option) ([]int, error) {
	if _, err := resolve(in, opts); err != nil {
		return nil, err
	}

	n := len(seq)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			gt, err := in.CompareAt(seq[j], seq[j+1], j, j+1, instrument.GT)
			if err != nil {
				return nil, err
			}
			if gt {
				in.Swap(seq, j, j+1)
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return seq, nil
}
