package sieve

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Generate returns the primes in [minBound, maxBound] in ascending order.
//
// Preconditions and validation (in order):
//  1. 1 ≤ minBound ≤ maxBound (ErrInvalidBounds).
//  2. alg is Eratosthenes or Atkin (ErrUnknownAlgorithm).
//
// The result is freshly allocated; callers own it.
func Generate(minBound, maxBound int64, alg Algorithm) ([]int64, error) {
	table, err := Table(minBound, maxBound, alg)
	if err != nil {
		return nil, err
	}

	return Collect(table, minBound), nil
}

// Table runs the selected sieve and returns its membership table:
// bit i is set iff minBound+i is prime.
func Table(minBound, maxBound int64, alg Algorithm) (*bitset.BitSet, error) {
	if minBound < 1 || minBound > maxBound {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidBounds, minBound, maxBound)
	}

	switch alg {
	case Eratosthenes:
		return eratosthenes(minBound, maxBound), nil
	case Atkin:
		return atkin(minBound, maxBound), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
}

// Collect converts a membership table into absolute primes (offset + minBound).
func Collect(table *bitset.BitSet, minBound int64) []int64 {
	primes := make([]int64, 0, table.Count())
	for idx, ok := table.NextSet(0); ok; idx, ok = table.NextSet(idx + 1) {
		primes = append(primes, minBound+int64(idx))
	}

	return primes
}

// span returns the table size for [lo, hi].
func span(lo, hi int64) uint { return uint(hi - lo + 1) }

// ceilDiv returns ⌈a/b⌉ for a ≥ 0, b > 0.
func ceilDiv(a, b int64) int64 { return (a + b - 1) / b }

// ceilSqrt returns ⌈√n⌉, or 0 for n ≤ 0.
func ceilSqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	r := isqrt(n)
	if r*r < n {
		r++
	}

	return r
}

// isqrt returns ⌊√n⌋ for n ≥ 0, correcting float rounding near 2^53.
func isqrt(n int64) int64 {
	r := int64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}
