package query_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/s-hama/sigma-js-primes/query"
	"github.com/s-hama/sigma-js-primes/store"
)

// TestConcurrentQueriesDuringReconfigure mixes queries (including the shared
// random source) with a writer flipping the upper bound. Every answer must be
// valid for one of the two configurations.
func TestConcurrentQueriesDuringReconfigure(t *testing.T) {
	st, err := store.New(store.WithMaxBound(100))
	require.NoError(t, err)
	q := query.New(st, query.WithSeed(3))

	var g errgroup.Group
	g.Go(func() error {
		for i := 0; i < 100; i++ {
			ceiling := int64(100)
			if i%2 == 0 {
				ceiling = 1000
			}
			if err := st.Reconfigure(store.WithMaxBound(ceiling)); err != nil {
				return err
			}
		}
		return nil
	})

	for r := 0; r < 6; r++ {
		g.Go(func() error {
			for i := 0; i < 300; i++ {
				n, err := q.PrimesCount()
				if err != nil {
					return err
				}
				if n != 25 && n != 168 {
					t.Errorf("count %d matches neither configuration", n)
				}

				p, err := q.RandomPrime()
				if err != nil {
					return err
				}
				if p > 1000 {
					t.Errorf("random prime %d beyond both configurations", p)
				}

				// 997 is only valid under the wider bound.
				ok, err := q.IsPrime(997)
				if err != nil && !errors.Is(err, query.ErrRange) {
					return err
				}
				if err == nil && !ok {
					t.Errorf("997 reported composite")
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
