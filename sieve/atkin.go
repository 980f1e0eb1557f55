package sieve

import "github.com/bits-and-blooms/bitset"

// atkin sieves [lo, hi] with the Sieve of Atkin.
//
// Algorithm Outline:
//  1. Allocate hi−lo+1 bits, all clear; set 2 and 3 when they fall in range.
//  2. For x, y ≥ 1 flip n when n ∈ [lo, hi] and
//     - n = 4x²+y², n mod 12 ∈ {1, 5}
//     - n = 3x²+y², n mod 12 = 7
//     - n = 3x²−y², x > y, n mod 12 = 11
//     For each x only the y whose n lands in the window are visited.
//     After this pass the survivors are the primes ≥ 5 plus numbers divisible
//     by the square of a prime.
//  3. For every prime p ≥ 5 with p*p ≤ hi, clear the multiples of p² in range.
//     The primes p are taken from an Atkin sieve of [1, ⌊√hi⌋], so roots that
//     lie below lo are still known.
//
// Complexity: O(√hi + n) time, O(n) bits, n = hi − lo + 1.
func atkin(lo, hi int64) *bitset.BitSet {
	table := bitset.New(span(lo, hi))
	if lo <= 2 && hi >= 2 {
		table.Set(uint(2 - lo))
	}
	if lo <= 3 && hi >= 3 {
		table.Set(uint(3 - lo))
	}
	flip := func(n int64) { table.Flip(uint(n - lo)) }

	var x, y, xx, n int64
	for x = 1; 4*x*x+1 <= hi; x++ {
		xx = 4 * x * x
		for y = max(1, ceilSqrt(lo-xx)); y*y <= hi-xx; y++ {
			if n = xx + y*y; n%12 == 1 || n%12 == 5 {
				flip(n)
			}
		}
	}
	for x = 1; 3*x*x+1 <= hi; x++ {
		xx = 3 * x * x
		for y = max(1, ceilSqrt(lo-xx)); y*y <= hi-xx; y++ {
			if n = xx + y*y; n%12 == 7 {
				flip(n)
			}
		}
	}
	// 3x²−y² is smallest at y = x−1, where it equals 2x²+2x−1.
	for x = 2; 2*x*x+2*x-1 <= hi; x++ {
		xx = 3 * x * x
		for y = max(1, ceilSqrt(xx-hi)); y < x && y*y <= xx-lo; y++ {
			if n = xx - y*y; n%12 == 11 {
				flip(n)
			}
		}
	}

	root := isqrt(hi)
	if root < 5 {
		return table
	}

	roots := atkin(1, root)
	var p, sq, j int64
	for idx, ok := roots.NextSet(4); ok; idx, ok = roots.NextSet(idx + 1) {
		p = int64(idx) + 1
		sq = p * p
		for j = ceilDiv(lo, sq) * sq; j <= hi; j += sq {
			table.Clear(uint(j - lo))
		}
	}

	return table
}
