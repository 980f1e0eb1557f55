// Package config loads sieve settings from YAML and the environment and keeps
// a store.Store in step with the file.
//
// File layout:
//
//	sieve:
//	  min_bound: 1
//	  max_bound: 8388607
//	  algorithm: eratosthenes
//
// Every field is optional; an absent field keeps whatever the store already
// has. Environment variables PRIMES_MIN_BOUND, PRIMES_MAX_BOUND and
// PRIMES_ALGORITHM override the file. Command-line flags are applied on top by
// the caller, through store.WithConfig.
//
// Watch follows the file with fsnotify and re-applies it whenever it changes.
// A reload that fails validation is logged and leaves the store untouched.
package config
