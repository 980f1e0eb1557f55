package store

import (
	"fmt"
	"sync"

	"github.com/s-hama/sigma-js-primes/msgs"
	"github.com/s-hama/sigma-js-primes/sieve"
)

// Store is the range store: current settings plus the prime table generated
// from them. The zero value is not usable; construct with New.
type Store struct {
	reconf sync.Mutex   // serializes Reconfigure/Apply
	mu     sync.RWMutex // guards settings and primes

	settings Settings
	primes   []int64 // immutable once published
}

// New builds a Store from the defaults overridden by opts and sieves its
// table before returning. With no opts the defaults are used as-is.
//
// Validation follows Reconfigure; on failure no Store is returned.
func New(opts ...Option) (*Store, error) {
	next := DefaultSettings()
	if len(opts) > 0 {
		var err error
		if next, err = merge(next, buildConfig(opts)); err != nil {
			return nil, err
		}
	}

	primes, err := generate(next)
	if err != nil {
		return nil, err
	}

	return &Store{settings: next, primes: primes}, nil
}

// Reconfigure replaces the provided fields, keeps the others, and regenerates
// the table from the merged configuration.
//
// Validation (in order, first failure wins):
//  1. at least one field provided (ErrNotSpecified);
//  2. maxBound within [1, MaxSafeInteger] (ErrOutOfRange);
//  3. minBound ≥ 1 (ErrOutOfRange);
//  4. merged minBound ≤ merged maxBound (ErrOutOfRange);
//  5. algorithm recognized (ErrInvalidEnum).
//
// The call is atomic: on error neither settings nor table change.
func (s *Store) Reconfigure(opts ...Option) error {
	return s.Apply(buildConfig(opts))
}

// Apply is Reconfigure for an already assembled Config.
func (s *Store) Apply(cfg Config) error {
	s.reconf.Lock()
	defer s.reconf.Unlock()

	// Only Apply writes settings and it holds reconf, so base cannot go stale.
	s.mu.RLock()
	base := s.settings
	s.mu.RUnlock()

	next, err := merge(base, cfg)
	if err != nil {
		return err
	}

	primes, err := generate(next)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.settings = next
	s.primes = primes
	s.mu.Unlock()

	return nil
}

// MinBound returns the current lower bound.
func (s *Store) MinBound() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings.MinBound
}

// MaxBound returns the current upper bound.
func (s *Store) MaxBound() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings.MaxBound
}

// Algorithm returns the current sieve strategy.
func (s *Store) Algorithm() sieve.Algorithm {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings.Algorithm
}

// Settings returns the current resolved configuration.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// Len returns the number of primes in the current table.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.primes)
}

// Snapshot returns settings and table read under a single shared lock.
// The returned Primes slice must not be modified.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{Settings: s.settings, Primes: s.primes}
}

// merge overlays cfg on base and validates the result.
func merge(base Settings, cfg Config) (Settings, error) {
	if cfg.Empty() {
		return base, notSpecified()
	}

	next := base
	if cfg.MaxBound != nil {
		if *cfg.MaxBound < 1 {
			return base, outOfRange(msgs.MaxBound, msgs.Greater, 1)
		}
		if *cfg.MaxBound > MaxSafeInteger {
			return base, outOfRange(msgs.MaxBound, msgs.Less, MaxSafeInteger)
		}
		next.MaxBound = *cfg.MaxBound
	}

	if cfg.MinBound != nil {
		if *cfg.MinBound < 1 {
			return base, outOfRange(msgs.MinBound, msgs.Greater, 1)
		}
		next.MinBound = *cfg.MinBound
	}

	if next.MinBound > next.MaxBound {
		if cfg.MinBound != nil {
			return base, outOfRange(msgs.MinBound, msgs.Less, next.MaxBound)
		}
		return base, outOfRange(msgs.MaxBound, msgs.Greater, next.MinBound)
	}

	if cfg.Algorithm != nil {
		if !cfg.Algorithm.Valid() {
			return base, invalidEnum()
		}
		next.Algorithm = *cfg.Algorithm
	}

	return next, nil
}

// generate sieves the table for already validated settings.
func generate(st Settings) ([]int64, error) {
	primes, err := sieve.Generate(st.MinBound, st.MaxBound, st.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("store: regenerate [%d, %d] with %s: %w", st.MinBound, st.MaxBound, st.Algorithm, err)
	}

	return primes, nil
}
