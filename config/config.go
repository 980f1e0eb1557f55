package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/s-hama/sigma-js-primes/sieve"
	"github.com/s-hama/sigma-js-primes/store"
)

// Environment variables consulted by Load.
const (
	EnvMinBound  = "PRIMES_MIN_BOUND"
	EnvMaxBound  = "PRIMES_MAX_BOUND"
	EnvAlgorithm = "PRIMES_ALGORITHM"
)

var (
	// ErrInvalidFile indicates a configuration file that cannot be read or parsed.
	ErrInvalidFile = errors.New("config: invalid configuration file")

	// ErrInvalidEnv indicates an environment override that is not an integer.
	ErrInvalidEnv = errors.New("config: invalid environment override")

	// ErrWrite indicates settings that could not be written back to a file.
	ErrWrite = errors.New("config: cannot write configuration file")
)

// File mirrors the YAML document.
type File struct {
	Sieve Sieve `yaml:"sieve"`
}

// Sieve is the sieve section; nil fields were not set.
type Sieve struct {
	MinBound  *int64  `yaml:"min_bound,omitempty"`
	MaxBound  *int64  `yaml:"max_bound,omitempty"`
	Algorithm *string `yaml:"algorithm,omitempty"`
}

// Load reads path (if any) and applies environment overrides.
// An empty path or a missing file yields only the environment overrides.
func Load(path string) (store.Config, error) {
	var f File
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// no file: env only
		case err != nil:
			return store.Config{}, fmt.Errorf("%w: read %s: %v", ErrInvalidFile, path, err)
		default:
			if err := decode(data, &f); err != nil {
				return store.Config{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidFile, path, err)
			}
		}
	}

	if err := f.applyEnvOverrides(); err != nil {
		return store.Config{}, err
	}

	return f.Config(), nil
}

// Save writes the resolved settings to path as YAML.
func Save(path string, st store.Settings) error {
	alg := st.Algorithm.String()
	f := File{Sieve: Sieve{MinBound: &st.MinBound, MaxBound: &st.MaxBound, Algorithm: &alg}}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("%w: marshal: %w", ErrWrite, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	return nil
}

// Config converts the file into a partial store configuration. Algorithm
// names are normalized; unknown names are passed through so the store reports
// them as ErrInvalidEnum.
func (f File) Config() store.Config {
	cfg := store.Config{MinBound: f.Sieve.MinBound, MaxBound: f.Sieve.MaxBound}
	if f.Sieve.Algorithm != nil {
		alg, err := sieve.ParseAlgorithm(*f.Sieve.Algorithm)
		if err != nil {
			alg = sieve.Algorithm(*f.Sieve.Algorithm)
		}
		cfg.Algorithm = &alg
	}

	return cfg
}

// decode parses YAML strictly; an empty document is valid.
func decode(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnvOverrides applies PRIMES_* variables over the file values.
func (f *File) applyEnvOverrides() error {
	if v, ok := lookup(EnvMinBound); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvMinBound, v)
		}
		f.Sieve.MinBound = &n
	}
	if v, ok := lookup(EnvMaxBound); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvMaxBound, v)
		}
		f.Sieve.MaxBound = &n
	}
	if v, ok := lookup(EnvAlgorithm); ok {
		f.Sieve.Algorithm = &v
	}

	return nil
}

// lookup treats blank variables as unset.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)

	return v, ok && v != ""
}
