package query_test

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/s-hama/sigma-js-primes/msgs"
	"github.com/s-hama/sigma-js-primes/query"
	"github.com/s-hama/sigma-js-primes/store"
)

// ExampleService walks through the main queries on a store capped at 100.
func ExampleService() {
	st, err := store.New(store.WithMaxBound(100))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	q := query.New(st)

	primes, _ := q.Primes(query.Between(1, 15))
	factors, _ := q.Factors(24)
	formula, _ := q.FactorsFormula(24)
	twins, _ := q.PrimesTwins(query.Between(1, 20))
	median, _ := q.PrimesMedian()
	average, _ := q.PrimesAverage(2, query.Between(1, 30))
	inverse, _ := q.MultInverse(3, 11)

	fmt.Println(primes)
	fmt.Println(factors, formula)
	fmt.Println(twins)
	fmt.Println(median, average, inverse)
	// Output:
	// [2 3 5 7 11 13]
	// [2 2 2 3] 2^3*3
	// [[3 5] [5 7] [11 13] [17 19]]
	// 41 12.9 4
}

// ExampleService_PrimesCount shows the structured error of an empty range and
// its rendering in two languages.
func ExampleService_PrimesCount() {
	st, _ := store.New(store.WithMaxBound(100))
	q := query.New(st)

	_, err := q.PrimesCount(query.Between(14, 15))
	fmt.Println(msgs.Localize(err, language.English))
	fmt.Println(msgs.Localize(err, language.Japanese))

	sum, _ := q.PrimesSum(query.Between(14, 15))
	fmt.Println(sum)
	// Output:
	// There are no prime numbers in the specified range.
	// 指定範囲に素数はありません。
	// 0
}
