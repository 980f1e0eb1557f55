package store

import (
	"errors"
	"fmt"

	"github.com/s-hama/sigma-js-primes/msgs"
)

// Sentinel error kinds. Match them with errors.Is.
var (
	// ErrNotSpecified indicates Reconfigure was called without any field.
	ErrNotSpecified = errors.New("store: configuration not specified")

	// ErrOutOfRange indicates a bound outside [1, MaxSafeInteger] or min > max.
	ErrOutOfRange = errors.New("store: bound out of range")

	// ErrInvalidEnum indicates an unrecognized algorithm.
	ErrInvalidEnum = errors.New("store: invalid algorithm")
)

// ConfigError is returned by New and Reconfigure. It carries the message key
// and arguments so callers can render it with package msgs.
type ConfigError struct {
	Kind error
	Key  msgs.Key
	Args []any
}

// Error renders the English message prefixed with the kind.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, msgs.English(e.Key, e.Args...))
}

// Unwrap exposes the sentinel kind.
func (e *ConfigError) Unwrap() error { return e.Kind }

// MessageKey implements msgs.Message.
func (e *ConfigError) MessageKey() msgs.Key { return e.Key }

// MessageArgs implements msgs.Message.
func (e *ConfigError) MessageArgs() []any { return e.Args }

func notSpecified() error {
	return &ConfigError{Kind: ErrNotSpecified, Key: msgs.ErrNotSpecify, Args: []any{msgs.SettingValue}}
}

func outOfRange(subject, relation msgs.Term, limit int64) error {
	return &ConfigError{Kind: ErrOutOfRange, Key: msgs.ErrNumericRange, Args: []any{subject, relation, limit}}
}

func invalidEnum() error {
	return &ConfigError{Kind: ErrInvalidEnum, Key: msgs.ErrInvalidSpecify, Args: []any{msgs.Algorithm, msgs.AlgorithmNames}}
}
