package query

import (
	"math/rand"
	"time"
)

// defaultRNGSeed replaces a zero seed so WithSeed(0) is still reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// clockRNG returns a source seeded from the wall clock.
func clockRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// intn draws a uniform index in [0, n) under the service's rand lock.
func (s *Service) intn(n int) int {
	s.muRand.Lock()
	defer s.muRand.Unlock()

	return int(s.rng.Int63n(int64(n)))
}

// RandomPrime returns a uniformly chosen prime from the range.
// Range validation follows Primes; an empty range yields ErrNoTarget.
func (s *Service) RandomPrime(opts ...RangeOption) (int64, error) {
	inRange, err := s.primesIn(s.store.Snapshot(), opts)
	if err != nil {
		return 0, err
	}
	if len(inRange) == 0 {
		return 0, noTarget()
	}

	return inRange[s.intn(len(inRange))], nil
}
