// Package primes is a small, embeddable toolkit for working with the primes of
// a bounded integer range: sieve once, then ask questions.
//
// 🚀 What is in the box?
//
//   - Sieve engine: Eratosthenes and Atkin over any [min, max] window
//   - Range store: the current bounds + the materialized prime table, swapped atomically
//   - Query service: primality, factorization, counts, sum/average/median,
//     twin primes, coprimality, modular inverse and random sampling
//   - Message catalog: localized, interpolated diagnostics for every error kind
//
// ✨ Why use it?
//
//   - Explicit state: every configuration lives in its own store.Store value
//   - Safe reconfiguration: readers never see bounds and table out of step
//   - Typed errors: match with errors.Is, render with msgs.Localize
//   - One bit per integer: the sieve table is a bits-and-blooms bitset
//
// Layout:
//
//	sieve/        Generate(min, max, algorithm) → ordered primes
//	store/        configuration + prime table under an RW lock
//	query/        validated read-only queries over a Store
//	msgs/         message catalog (English, Japanese) on golang.org/x/text
//	config/       YAML configuration, env overrides, file watcher
//	internal/cli/ cobra commands behind cmd/primes
//	examples/     runnable walkthroughs
//
// Quick example:
//
//	st, _ := store.New(store.WithMaxBound(100))
//	q := query.New(st)
//	twins, _ := q.PrimesTwins(query.Between(1, 20))
//	// [[3 5] [5 7] [11 13] [17 19]]
//
// Everything is bounded by the configured range: the sieve holds one bit per
// integer in [min, max], and every query validates its arguments against those
// bounds before touching the table.
package primes
