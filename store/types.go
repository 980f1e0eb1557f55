package store

import "github.com/s-hama/sigma-js-primes/sieve"

// Defaults applied when a field has never been configured.
const (
	// DefaultMinBound is the lowest integer covered by a fresh Store.
	DefaultMinBound int64 = 1

	// DefaultMaxBound is the highest integer covered by a fresh Store (2^23 − 1).
	DefaultMaxBound int64 = 8388607

	// MaxSafeInteger is the largest accepted bound (2^53 − 1).
	MaxSafeInteger int64 = 1<<53 - 1
)

// Config is a partial configuration: a nil field means "keep the current value".
type Config struct {
	MinBound  *int64
	MaxBound  *int64
	Algorithm *sieve.Algorithm
}

// Empty reports whether no field is provided.
func (c Config) Empty() bool {
	return c.MinBound == nil && c.MaxBound == nil && c.Algorithm == nil
}

// Option sets one field of a Config.
type Option func(*Config)

// WithMinBound overrides the lower bound.
func WithMinBound(n int64) Option {
	return func(c *Config) { c.MinBound = &n }
}

// WithMaxBound overrides the upper bound.
func WithMaxBound(n int64) Option {
	return func(c *Config) { c.MaxBound = &n }
}

// WithAlgorithm overrides the sieve strategy. Unknown values are reported by
// Reconfigure as ErrInvalidEnum.
func WithAlgorithm(a sieve.Algorithm) Option {
	return func(c *Config) { c.Algorithm = &a }
}

// WithConfig copies every non-nil field of other.
func WithConfig(other Config) Option {
	return func(c *Config) {
		if other.MinBound != nil {
			c.MinBound = other.MinBound
		}
		if other.MaxBound != nil {
			c.MaxBound = other.MaxBound
		}
		if other.Algorithm != nil {
			c.Algorithm = other.Algorithm
		}
	}
}

// buildConfig folds opts into a Config.
func buildConfig(opts []Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Settings is a fully resolved configuration.
type Settings struct {
	MinBound  int64           `json:"min_bound" yaml:"min_bound"`
	MaxBound  int64           `json:"max_bound" yaml:"max_bound"`
	Algorithm sieve.Algorithm `json:"algorithm" yaml:"algorithm"`
}

// DefaultSettings returns the configuration of a never-configured Store.
func DefaultSettings() Settings {
	return Settings{
		MinBound:  DefaultMinBound,
		MaxBound:  DefaultMaxBound,
		Algorithm: sieve.DefaultAlgorithm,
	}
}

// Snapshot is a consistent view of a Store: the settings and the table that
// was generated from them.
//
// Primes is shared with the Store and must be treated as read-only.
type Snapshot struct {
	Settings
	Primes []int64
}
