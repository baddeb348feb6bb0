// Package gaps generates shell-sort gap sequences.
//
// A gap sequence is strictly decreasing, strictly positive and ends at 1, so
// that the last shell-sort pass is a plain insertion sort. Every built-in
// generator builds its terms in ascending order, keeps only the terms
// strictly below n, and returns them reversed:
//
//	shell    n/2, n/4, ..., 1                 (halving)
//	knuth    1, 4, 13, 40, ...                (g = 3g+1)
//	hibbard  1, 3, 7, 15, ...                 (2^k - 1)
//	tokuda   1, 4, 9, 20, 46, ...             (ceil((9·(9/4)^(k-1) - 4)/5))
//
// For n <= 1 every sequence is empty: there is nothing to sort.
//
// Generators are pure: the same (variant, n) always yields the same slice
// contents. Sequence resolves the built-in variants without any shared
// state; a Registry adds named custom generators and a sorted listing.
package gaps
