package store_test

import (
	"errors"
	"fmt"

	"github.com/s-hama/sigma-js-primes/sieve"
	"github.com/s-hama/sigma-js-primes/store"
)

// ExampleStore_Reconfigure narrows the window and switches algorithm.
func ExampleStore_Reconfigure() {
	st, err := store.New(store.WithMaxBound(100))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if err = st.Reconfigure(store.WithMinBound(80), store.WithAlgorithm(sieve.Atkin)); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(st.MinBound(), st.MaxBound(), st.Algorithm(), st.Snapshot().Primes)

	// A failed call changes nothing.
	err = st.Reconfigure(store.WithMinBound(200))
	fmt.Println(errors.Is(err, store.ErrOutOfRange), st.MinBound())
	// Output:
	// 80 100 atkin [83 89 97]
	// true 80
}
