package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/s-hama/sigma-js-primes/store"
)

// numbers renders as space-separated integers in text mode.
type numbers []int64

func (n numbers) String() string {
	parts := make([]string, len(n))
	for i, v := range n {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return strings.Join(parts, " ")
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

type infoResult struct {
	MinBound  int64  `json:"min_bound"`
	MaxBound  int64  `json:"max_bound"`
	Algorithm string `json:"algorithm"`
	Primes    int    `json:"primes"`
}

// info summarizes the store's current settings.
func info(st *store.Store) infoResult {
	snap := st.Snapshot()

	return infoResult{
		MinBound:  snap.MinBound,
		MaxBound:  snap.MaxBound,
		Algorithm: snap.Algorithm.String(),
		Primes:    len(snap.Primes),
	}
}

func (r infoResult) String() string {
	return fmt.Sprintf("min_bound: %d\nmax_bound: %d\nalgorithm: %s\nprimes: %d",
		r.MinBound, r.MaxBound, r.Algorithm, r.Primes)
}

type primeCheck struct {
	N     int64 `json:"n"`
	Prime bool  `json:"prime"`
}

func (r primeCheck) String() string { return strconv.FormatBool(r.Prime) }

type primesResult struct {
	Primes numbers `json:"primes"`
}

func (r primesResult) String() string { return r.Primes.String() }

type factorsResult struct {
	N       int64   `json:"n"`
	Factors numbers `json:"factors"`
}

func (r factorsResult) String() string { return r.Factors.String() }

type formulaResult struct {
	N       int64  `json:"n"`
	Formula string `json:"formula"`
}

func (r formulaResult) String() string { return r.Formula }

type randomResult struct {
	Prime int64 `json:"prime"`
}

func (r randomResult) String() string { return strconv.FormatInt(r.Prime, 10) }

type coprimeResult struct {
	A       int64 `json:"a"`
	B       int64 `json:"b"`
	Coprime bool  `json:"coprime"`
}

func (r coprimeResult) String() string { return strconv.FormatBool(r.Coprime) }

type countResult struct {
	Count int `json:"count"`
}

func (r countResult) String() string { return strconv.Itoa(r.Count) }

type indexResult struct {
	N     int64 `json:"n"`
	Index int   `json:"index"`
}

func (r indexResult) String() string { return strconv.Itoa(r.Index) }

type sumResult struct {
	Sum int64 `json:"sum"`
}

func (r sumResult) String() string { return strconv.FormatInt(r.Sum, 10) }

type averageResult struct {
	Average float64 `json:"average"`
	Places  int     `json:"places"`
}

func (r averageResult) String() string { return formatFloat(r.Average) }

type medianResult struct {
	Median float64 `json:"median"`
}

func (r medianResult) String() string { return formatFloat(r.Median) }

type twinsResult struct {
	Twins [][2]int64 `json:"twins"`
}

// String prints one pair per line.
func (r twinsResult) String() string {
	lines := make([]string, len(r.Twins))
	for i, p := range r.Twins {
		lines[i] = fmt.Sprintf("%d %d", p[0], p[1])
	}

	return strings.Join(lines, "\n")
}

type inverseResult struct {
	A       int64 `json:"a"`
	M       int64 `json:"m"`
	Inverse int64 `json:"inverse"`
}

func (r inverseResult) String() string { return strconv.FormatInt(r.Inverse, 10) }
