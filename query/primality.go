package query

import (
	"slices"

	"github.com/s-hama/sigma-js-primes/msgs"
)

// IsPrime reports whether n is in the prime table.
//
// Validation: n ≤ maxBound, then n ≥ minBound (ErrRange).
func (s *Service) IsPrime(n int64) (bool, error) {
	snap := s.store.Snapshot()
	if n > snap.MaxBound {
		return false, rangeErr(msgs.Specified, msgs.Less, snap.MaxBound)
	}
	if n < snap.MinBound {
		return false, rangeErr(msgs.Specified, msgs.Greater, snap.MinBound)
	}

	_, found := slices.BinarySearch(snap.Primes, n)

	return found, nil
}

// Primes returns the primes in [start, end] in ascending order.
// The result is a copy and may be modified by the caller.
//
// Validation (in order): start ≥ minBound, end ≤ maxBound, start ≤ end (ErrRange).
func (s *Service) Primes(opts ...RangeOption) ([]int64, error) {
	inRange, err := s.primesIn(s.store.Snapshot(), opts)
	if err != nil {
		return nil, err
	}

	return slices.Clone(inRange), nil
}

// PrimesCount returns how many primes lie in the range.
// An empty range yields ErrNoTarget.
func (s *Service) PrimesCount(opts ...RangeOption) (int, error) {
	inRange, err := s.primesIn(s.store.Snapshot(), opts)
	if err != nil {
		return 0, err
	}
	if len(inRange) == 0 {
		return 0, noTarget()
	}

	return len(inRange), nil
}

// PrimesIndex returns the 1-based position of n among the primes of the range.
//
// Validation (in order): n within the bounds (ErrRange), range checks as in
// Primes, non-empty range (ErrNoTarget), n present in the range (ErrNoTarget).
func (s *Service) PrimesIndex(n int64, opts ...RangeOption) (int, error) {
	snap := s.store.Snapshot()
	if err := checkMinMax(snap, n); err != nil {
		return 0, err
	}

	inRange, err := s.primesIn(snap, opts)
	if err != nil {
		return 0, err
	}
	if len(inRange) == 0 {
		return 0, noTarget()
	}

	pos, found := slices.BinarySearch(inRange, n)
	if !found {
		return 0, noTarget()
	}

	return pos + 1, nil
}
