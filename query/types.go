package query

import (
	"sync"

	"github.com/s-hama/sigma-js-primes/store"
)

// DefaultAveragePlaces is the rounding precision callers usually want for
// PrimesAverage.
const DefaultAveragePlaces = 2

// maxAveragePlaces bounds rounding; beyond it float64 has no digits left to round.
const maxAveragePlaces = 15

// Rand is the randomness capability used by RandomPrime.
// *math/rand.Rand satisfies it.
type Rand interface {
	Int63n(n int64) int64
}

// Service answers queries against a Store.
type Service struct {
	store *store.Store

	muRand sync.Mutex // math/rand sources are not goroutine-safe
	rng    Rand
}

// Option configures a Service.
type Option func(*Service)

// WithRand injects the random source used by RandomPrime.
func WithRand(r Rand) Option {
	return func(s *Service) { s.rng = r }
}

// WithSeed installs a deterministic source; seed 0 maps to a fixed default.
func WithSeed(seed int64) Option {
	return func(s *Service) { s.rng = rngFromSeed(seed) }
}

// New returns a Service reading from st. Without WithRand/WithSeed the random
// source is seeded from the clock.
func New(st *store.Store, opts ...Option) *Service {
	s := &Service{store: st}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = clockRNG()
	}

	return s
}

// Store returns the underlying store.
func (s *Service) Store() *store.Store { return s.store }

// RangeOption narrows the [start, end] range of a query.
type RangeOption func(*span)

type span struct {
	start, end *int64
}

// From sets the inclusive start of the range.
func From(start int64) RangeOption {
	return func(r *span) { r.start = &start }
}

// To sets the inclusive end of the range.
func To(end int64) RangeOption {
	return func(r *span) { r.end = &end }
}

// Between sets both ends of the range.
func Between(start, end int64) RangeOption {
	return func(r *span) {
		r.start = &start
		r.end = &end
	}
}
