// Package query answers questions about the primes held by a store.Store.
//
// A Service never mutates its store. Each call takes one store.Snapshot, so a
// concurrent Reconfigure is observed either completely or not at all, then
// validates its arguments against that snapshot's bounds before computing.
//
// Operations:
//
//	IsPrime(n)                 membership test
//	Primes(opts...)            primes in [start, end]
//	Factors(n)                 prime factors with multiplicity, ascending
//	FactorsFormula(n)          "2^3*3" style rendering of Factors
//	RandomPrime(opts...)       uniform pick from the range
//	IsCoprime(a, b)            gcd(a, b) == 1
//	PrimesCount(opts...)       number of primes in range
//	PrimesIndex(n, opts...)    1-based position of n in the range
//	PrimesSum(opts...)         sum, 0 when empty
//	PrimesAverage(p, opts...)  mean rounded half away from zero to p places, 0 when empty
//	PrimesMedian(opts...)      median, 0 when empty
//	PrimesTwins(opts...)       adjacent (p, p+2) pairs
//	MultInverse(a, m)          smallest x > 0 with a·x ≡ 1 (mod m)
//
// Ranges default to the store's [minBound, maxBound]; narrow them with From,
// To or Between.
//
// Empty ranges:
//
//	RandomPrime, PrimesCount, PrimesIndex and PrimesTwins fail with ErrNoTarget.
//	PrimesSum, PrimesAverage and PrimesMedian return 0 instead.
//
// Errors:
//
//	ErrRange      - an argument lies outside the bounds or start > end.
//	ErrNoTarget   - the range holds no qualifying prime.
//	ErrNotExist   - the modular inverse does not exist.
//	ErrNotCovered - factorization needs a table that starts at or below 2.
package query
