package query

import (
	"math"

	"github.com/s-hama/sigma-js-primes/msgs"
)

// PrimesSum returns the sum of the primes in the range, or 0 when empty.
func (s *Service) PrimesSum(opts ...RangeOption) (int64, error) {
	inRange, err := s.primesIn(s.store.Snapshot(), opts)
	if err != nil {
		return 0, err
	}

	return sum(inRange), nil
}

// PrimesAverage returns the mean of the primes in the range rounded half away
// from zero to places decimal digits, or 0 when empty.
//
// Validation (in order): places ≥ 0 (ErrRange), then range checks as in Primes.
// Above 15 places the mean is returned unrounded.
func (s *Service) PrimesAverage(places int, opts ...RangeOption) (float64, error) {
	if places < 0 {
		return 0, rangeErr(msgs.DecimalPlaces, msgs.Greater, 0)
	}

	inRange, err := s.primesIn(s.store.Snapshot(), opts)
	if err != nil {
		return 0, err
	}
	if len(inRange) == 0 {
		return 0, nil
	}

	return roundHalfAway(float64(sum(inRange))/float64(len(inRange)), places), nil
}

// PrimesMedian returns the middle prime of the range (mean of the two middle
// primes for even counts), or 0 when empty.
func (s *Service) PrimesMedian(opts ...RangeOption) (float64, error) {
	inRange, err := s.primesIn(s.store.Snapshot(), opts)
	if err != nil {
		return 0, err
	}

	n := len(inRange)
	switch {
	case n == 0:
		return 0, nil
	case n%2 == 1:
		return float64(inRange[n/2]), nil
	default:
		return float64(inRange[n/2-1]+inRange[n/2]) / 2, nil
	}
}

// PrimesTwins returns every adjacent pair (p, p+2) of the range.
// An empty range yields ErrNoTarget; a range without twins yields an empty list.
func (s *Service) PrimesTwins(opts ...RangeOption) ([][2]int64, error) {
	inRange, err := s.primesIn(s.store.Snapshot(), opts)
	if err != nil {
		return nil, err
	}
	if len(inRange) == 0 {
		return nil, noTarget()
	}

	twins := make([][2]int64, 0)
	for i := 0; i+1 < len(inRange); i++ {
		if inRange[i+1]-inRange[i] == 2 {
			twins = append(twins, [2]int64{inRange[i], inRange[i+1]})
		}
	}

	return twins, nil
}

func sum(values []int64) int64 {
	var total int64
	for _, v := range values {
		total += v
	}

	return total
}

// roundHalfAway rounds x to places decimals, ties away from zero.
func roundHalfAway(x float64, places int) float64 {
	if places > maxAveragePlaces {
		return x
	}
	pow := math.Pow10(places)

	return math.Round(x*pow) / pow
}
