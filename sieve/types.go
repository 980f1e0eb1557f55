package sieve

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for sieve generation.
var (
	// ErrInvalidBounds indicates min < 1 or min > max.
	ErrInvalidBounds = errors.New("sieve: invalid bounds")

	// ErrUnknownAlgorithm indicates an Algorithm other than Eratosthenes or Atkin.
	ErrUnknownAlgorithm = errors.New("sieve: unknown algorithm")
)

// Algorithm selects the sieve strategy.
type Algorithm string

const (
	// Eratosthenes strikes multiples of each divisor up to √max.
	Eratosthenes Algorithm = "eratosthenes"

	// Atkin toggles quadratic-form candidates, then removes non-squarefree survivors.
	Atkin Algorithm = "atkin"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = Eratosthenes

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Eratosthenes, Atkin}
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	return a == Eratosthenes || a == Atkin
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string { return string(a) }

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return a, nil
}
