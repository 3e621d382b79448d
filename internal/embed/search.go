// internal/embed/search.go
package embed

import "sort"

// Result is a single ranked search hit.
type Result struct {
	Word     string
	Distance float32
}

// Searcher answers nearest-neighbor queries against a fixed table. It scans
// the whole vocabulary on every query; there is no index structure, which
// keeps the semantics exact and the implementation obvious.
type Searcher struct {
	table    *Table
	distance DistanceFunc
}

// NewSearcher builds a searcher over the table using the given metric. An
// empty metric falls back to Euclidean distance.
func NewSearcher(table *Table, metric Metric) (*Searcher, error) {
	fn, err := metric.Func()
	if err != nil {
		return nil, err
	}
	return &Searcher{table: table, distance: fn}, nil
}

// Table returns the table the searcher scans.
func (s *Searcher) Table() *Table {
	return s.table
}

// NearestTo returns the min(n, table.Len()) entries closest to the query
// vector, ordered by ascending distance. Ties keep enumeration order (the
// sort is stable). A non-positive n yields an empty result.
func (s *Searcher) NearestTo(query []float32, n int) ([]Result, error) {
	if len(query) != s.table.Dim() {
		return nil, &DimensionMismatchError{Got: len(query), Want: s.table.Dim()}
	}
	if n <= 0 {
		return nil, nil
	}

	results := make([]Result, 0, s.table.Len())
	s.table.Range(func(word string, vector []float32) bool {
		results = append(results, Result{Word: word, Distance: s.distance(query, vector)})
		return true
	})

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if n < len(results) {
		results = results[:n]
	}
	return results, nil
}

// Neighbors looks up the word and returns its nearest neighbors. The word
// itself ranks first at distance zero.
func (s *Searcher) Neighbors(word string, n int) ([]Result, error) {
	query, err := s.table.Lookup(word)
	if err != nil {
		return nil, err
	}
	return s.NearestTo(query, n)
}
