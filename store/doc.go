// Package store owns the current sieve configuration and the prime table
// derived from it.
//
// A Store holds the triple (minBound, maxBound, algorithm) together with the
// ordered primes of that window. The table is regenerated in full whenever the
// configuration changes; there are no incremental updates.
//
// Lifecycle:
//
//	New()               → defaults (1, 8388607, eratosthenes), table sieved eagerly
//	New(opts...)        → defaults merged with opts, validated, then sieved
//	Reconfigure(opts...) → merge → validate → regenerate → swap
//
// A failed Reconfigure leaves both configuration and table untouched.
//
// Concurrency:
//
//	Reads (MinBound, MaxBound, Algorithm, Snapshot) take a shared lock; the
//	swap of (settings, table) takes the exclusive lock, so a reader never sees
//	new bounds with a stale table or the reverse. The expensive sieve runs
//	outside the exclusive lock; concurrent reconfigurations are serialized.
//
// Errors:
//
//	ErrNotSpecified - no configuration field was provided.
//	ErrOutOfRange   - a bound is < 1, above MaxSafeInteger, or min > max after merge.
//	ErrInvalidEnum  - the algorithm is not eratosthenes or atkin.
package store
