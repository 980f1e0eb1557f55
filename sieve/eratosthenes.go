package sieve

import "github.com/bits-and-blooms/bitset"

// eratosthenes sieves [lo, hi] by striking composites.
//
// Algorithm Outline:
//  1. Allocate hi−lo+1 bits, all set; clear offset 0 when lo == 1.
//  2. For each i ≥ 2 with i*i ≤ hi, clear every multiple of i from
//     max(i*i, ⌈lo/i⌉*i) up to hi.
//     A divisor that lies inside the window and is already struck is composite;
//     its multiples were cleared by its smallest prime factor, so it is skipped.
//
// Complexity: O(√hi + n log log hi) time, O(n) bits, n = hi − lo + 1.
func eratosthenes(lo, hi int64) *bitset.BitSet {
	size := span(lo, hi)
	table := bitset.New(size).FlipRange(0, size)
	if lo == 1 {
		table.Clear(0)
	}

	var i, j int64
	for i = 2; i*i <= hi; i++ {
		if i >= lo && !table.Test(uint(i-lo)) {
			continue
		}
		for j = max(i*i, ceilDiv(lo, i)*i); j <= hi; j += i {
			table.Clear(uint(j - lo))
		}
	}

	return table
}
