// Package sieve generates the ordered primes of a bounded window [min, max].
//
// 🚀 Two classic algorithms, one contract:
//
//	Generate(min, max, alg) → []int64 strictly increasing, every element prime,
//	and nothing prime in the window left out.
//
//	• Eratosthenes: strike multiples of every divisor i with i*i ≤ max,
//	  starting at max(i*i, ceil(min/i)*i).
//	• Atkin: toggle candidates of the three quadratic forms
//	  4x²+y² (n mod 12 ∈ {1,5}), 3x²+y² (n mod 12 = 7) and 3x²−y² (x>y, n mod 12 = 11),
//	  then clear multiples of p² for every prime p ≥ 5.
//
// Both variants are deterministic and return identical output for identical
// input; the test-suite cross-checks them against trial division.
//
// Memory:
//
//	One bit per integer of the window (github.com/bits-and-blooms/bitset). The engine neither
//	chunks nor streams, so callers must keep max−min+1 within available memory.
//
// Complexity:
//
//   - Eratosthenes: O(√max + n log log max) time
//   - Atkin:        O(√max + n) time; the quadratic-form loops visit only
//     the (x, y) pairs that land in the window, plus one pass over x ≤ √max
//   - Space:        O(n) bits, n = max − min + 1
//
// Both pay the √max term even for a narrow window, since divisors (or square
// roots) up to √max must be known.
package sieve
