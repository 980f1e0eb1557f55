package query

import (
	"errors"
	"fmt"

	"github.com/s-hama/sigma-js-primes/msgs"
)

// Sentinel error kinds. Match them with errors.Is.
var (
	// ErrRange indicates an argument outside [minBound, maxBound] or start > end.
	ErrRange = errors.New("query: argument out of range")

	// ErrNoTarget indicates the resolved range holds no qualifying prime.
	ErrNoTarget = errors.New("query: no target in range")

	// ErrNotExist indicates the requested modular inverse does not exist.
	ErrNotExist = errors.New("query: result does not exist")

	// ErrNotCovered indicates the prime table does not reach down to 2.
	ErrNotCovered = errors.New("query: prime table does not cover divisors")
)

// QueryError is returned by every Service operation. It carries the message
// key and arguments so callers can render it with package msgs.
type QueryError struct {
	Kind error
	Key  msgs.Key
	Args []any
}

// Error renders the English message prefixed with the kind.
func (e *QueryError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, msgs.English(e.Key, e.Args...))
}

// Unwrap exposes the sentinel kind.
func (e *QueryError) Unwrap() error { return e.Kind }

// MessageKey implements msgs.Message.
func (e *QueryError) MessageKey() msgs.Key { return e.Key }

// MessageArgs implements msgs.Message.
func (e *QueryError) MessageArgs() []any { return e.Args }

func rangeErr(subject, relation msgs.Term, limit any) error {
	return &QueryError{Kind: ErrRange, Key: msgs.ErrNumericRange, Args: []any{subject, relation, limit}}
}

func noTarget() error {
	return &QueryError{Kind: ErrNoTarget, Key: msgs.ErrNoTarget, Args: []any{msgs.PrimeNumbers, msgs.SpecifiedRange}}
}

func notExist() error {
	return &QueryError{Kind: ErrNotExist, Key: msgs.ErrNotExist, Args: []any{msgs.MultInverse}}
}

func notCovered() error {
	return &QueryError{Kind: ErrNotCovered, Key: msgs.ErrNotCovered, Args: []any{msgs.Factorization, int64(2)}}
}
