package sorts

import "github.com/katalvlaran/sortlab/instrument"

// Shell sorts seq with gapped insertion passes, one per gap of the selected
// variant (WithGapVariant, default "shell"). The gap sequence is resolved
// before the first element is touched: an unknown variant leaves seq as it
// was.
//
// Complexity: depends on the gap sequence; O(n^(3/2)) for hibbard,
// roughly O(n^(4/3)) in practice for knuth and tokuda.
func Shell(seq []int, in *instrument.Instrumentation, opts ...Option) ([]int, error) {
	o, err := resolve(in, opts)
	if err != nil {
		return nil, err
	}
	n := len(seq)
	gapSeq, err := o.gapSequence(n)
	if err != nil {
		return nil, err
	}

	for _, gap := range gapSeq {
		for i := gap; i < n; i++ {
			temp := seq[i]
			j := i
			for j >= gap {
				gt, err := in.CompareAt(seq[j-gap], temp, j-gap, j, instrument.GT)
				if err != nil {
					return nil, err
				}
				if !gt {
					break
				}
				in.Write(seq, j, seq[j-gap])
				j -= gap
			}
			in.Write(seq, j, temp)
		}
	}
	return seq, nil
}
