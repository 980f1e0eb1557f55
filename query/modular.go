package query

// IsCoprime reports whether gcd(a, b) == 1.
//
// Validation: both ≥ minBound, then both ≤ maxBound (ErrRange).
func (s *Service) IsCoprime(a, b int64) (bool, error) {
	if err := checkPair(s.store.Snapshot(), a, b); err != nil {
		return false, err
	}

	return gcd(a, b) == 1, nil
}

// MultInverse returns the smallest x > 0 with (a·x) mod m == 1.
//
// Validation (in order): a and m within the bounds (ErrRange), gcd(a, m) == 1
// (ErrNotExist). m == 1 has no inverse either, since every product is ≡ 0.
//
// The search is exhaustive from x = 1, tracking a·x mod m incrementally so no
// product can overflow.
//
// Complexity: O(m).
func (s *Service) MultInverse(a, m int64) (int64, error) {
	if err := checkPair(s.store.Snapshot(), a, m); err != nil {
		return 0, err
	}
	if gcd(a, m) != 1 || m == 1 {
		return 0, notExist()
	}

	step := a % m
	var residue int64
	for x := int64(1); x < m; x++ {
		residue += step
		if residue >= m {
			residue -= m
		}
		if residue == 1 {
			return x, nil
		}
	}

	return 0, notExist()
}

// gcd is Euclid's algorithm.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
