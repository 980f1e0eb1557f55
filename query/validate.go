package query

import (
	"slices"

	"github.com/s-hama/sigma-js-primes/msgs"
	"github.com/s-hama/sigma-js-primes/store"
)

// checkMinMax validates n against the bounds, lower bound first.
func checkMinMax(snap store.Snapshot, n int64) error {
	if n < snap.MinBound {
		return rangeErr(msgs.Specified, msgs.Greater, snap.MinBound)
	}
	if n > snap.MaxBound {
		return rangeErr(msgs.Specified, msgs.Less, snap.MaxBound)
	}

	return nil
}

// checkPair validates two operands: both lower bounds, then both upper bounds.
func checkPair(snap store.Snapshot, a, b int64) error {
	if a < snap.MinBound || b < snap.MinBound {
		return rangeErr(msgs.Specified, msgs.Greater, snap.MinBound)
	}
	if a > snap.MaxBound || b > snap.MaxBound {
		return rangeErr(msgs.Specified, msgs.Less, snap.MaxBound)
	}

	return nil
}

// resolve applies opts over the snapshot bounds and validates the result:
// start ≥ minBound, then end ≤ maxBound, then start ≤ end.
func resolve(snap store.Snapshot, opts []RangeOption) (start, end int64, err error) {
	var r span
	for _, opt := range opts {
		opt(&r)
	}

	start, end = snap.MinBound, snap.MaxBound
	if r.start != nil {
		start = *r.start
	}
	if r.end != nil {
		end = *r.end
	}

	if start < snap.MinBound {
		return 0, 0, rangeErr(msgs.Starting, msgs.Greater, snap.MinBound)
	}
	if end > snap.MaxBound {
		return 0, 0, rangeErr(msgs.Ending, msgs.Less, snap.MaxBound)
	}
	if start > end {
		return 0, 0, rangeErr(msgs.Starting, msgs.Less, msgs.EndingNumber)
	}

	return start, end, nil
}

// primesIn resolves the range and returns the matching window of the table.
// The result aliases the snapshot and is capacity-limited so appends copy.
func (s *Service) primesIn(snap store.Snapshot, opts []RangeOption) ([]int64, error) {
	start, end, err := resolve(snap, opts)
	if err != nil {
		return nil, err
	}

	lo, _ := slices.BinarySearch(snap.Primes, start)
	hi, found := slices.BinarySearch(snap.Primes, end)
	if found {
		hi++
	}

	return snap.Primes[lo:hi:hi], nil
}
