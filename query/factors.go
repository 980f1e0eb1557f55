package query

import (
	"strconv"
	"strings"
)

// Factors returns the prime factorization of n with multiplicity, ascending.
// The product of the result equals n; Factors(1) is empty.
//
// Validation (in order):
//  1. n within [minBound, maxBound] (ErrRange).
//  2. the table starts at or below 2, so every divisor is known (ErrNotCovered).
//
// Trial division walks the table's primes p while p*p ≤ n; a remaining
// cofactor above 1 is itself prime.
//
// Complexity: O(π(√n)) divisions.
func (s *Service) Factors(n int64) ([]int64, error) {
	snap := s.store.Snapshot()
	if err := checkMinMax(snap, n); err != nil {
		return nil, err
	}
	if snap.MinBound > 2 {
		return nil, notCovered()
	}

	factors := make([]int64, 0, 8)
	for _, p := range snap.Primes {
		if p*p > n {
			break
		}
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}

	return factors, nil
}

// FactorsFormula renders Factors(n) as "base" or "base^exponent" terms joined
// by "*", in ascending base order: 24 → "2^3*3". Factors(1) renders as "".
func (s *Service) FactorsFormula(n int64) (string, error) {
	factors, err := s.Factors(n)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 0; i < len(factors); {
		j := i
		for j < len(factors) && factors[j] == factors[i] {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte('*')
		}
		b.WriteString(strconv.FormatInt(factors[i], 10))
		if exp := j - i; exp > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(exp))
		}
		i = j
	}

	return b.String(), nil
}
