package cli

import (
	"errors"
	"fmt"

	"github.com/s-hama/sigma-js-primes/config"
	"github.com/s-hama/sigma-js-primes/query"
	"github.com/s-hama/sigma-js-primes/store"
)

// ErrUsage marks malformed command arguments.
var ErrUsage = errors.New("invalid argument")

// Error codes reported in the JSON envelope and text output.
const (
	CodeRange        = "E_RANGE"
	CodeNoTarget     = "E_NO_TARGET"
	CodeNotExist     = "E_NOT_EXIST"
	CodeNotCovered   = "E_NOT_COVERED"
	CodeNotSpecified = "E_NOT_SPECIFIED"
	CodeOutOfRange   = "E_OUT_OF_RANGE"
	CodeInvalidEnum  = "E_INVALID_ENUM"
	CodeConfig       = "E_CONFIG"
	CodeUsage        = "E_USAGE"
	CodeGeneric      = "E_GENERIC"
)

// errorCode maps an error to its envelope code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, query.ErrRange):
		return CodeRange
	case errors.Is(err, query.ErrNoTarget):
		return CodeNoTarget
	case errors.Is(err, query.ErrNotExist):
		return CodeNotExist
	case errors.Is(err, query.ErrNotCovered):
		return CodeNotCovered
	case errors.Is(err, store.ErrNotSpecified):
		return CodeNotSpecified
	case errors.Is(err, store.ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, store.ErrInvalidEnum):
		return CodeInvalidEnum
	case errors.Is(err, config.ErrInvalidFile), errors.Is(err, config.ErrInvalidEnv),
		errors.Is(err, config.ErrWrite):
		return CodeConfig
	case errors.Is(err, ErrUsage):
		return CodeUsage
	default:
		return CodeGeneric
	}
}

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
