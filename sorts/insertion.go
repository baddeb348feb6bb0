package sorts

import "github.com/katalvlaran/sortlab/instrument"

// Insertion sorts seq by sliding each element left over larger ones.
//
// The held-out key is compared against seq[j], but the compare event is
// reported for positions (j, j+1): j+1 is the hole the key currently fills,
// which is what a visualizer highlights.
//
// Complexity: O(n²) comparisons and writes worst case, O(n) best case.
func Insertion(seq []int, in *instrument.Instrumentation, opts ...Option) ([]int, error) {
	if _, err := resolve(in, opts); err != nil {
		return nil, err
	}

	for i := 1; i < len(seq); i++ {
		key := seq[i]
		j := i - 1
		for j >= 0 {
			gt, err := in.CompareAt(seq[j], key, j, j+1, instrument.GT)
			if err != nil {
				return nil, err
			}
			if !gt {
				break
			}
			in.Write(seq, j+1, seq[j])
			j--
		}
		in.Write(seq, j+1, key)
	}
	return seq, nil
}
