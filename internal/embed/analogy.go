// internal/embed/analogy.go
package embed

// Analogy answers "w1 is to w2 as w3 is to ?" by searching near the vector
// lookup(w2) - lookup(w1) + lookup(w3). With filterGiven set, the three
// input words are removed from the ranking and the search over-fetches by
// three so that n candidates survive the filter.
func (s *Searcher) Analogy(w1, w2, w3 string, n int, filterGiven bool) ([]Result, error) {
	v1, err := s.table.Lookup(w1)
	if err != nil {
		return nil, err
	}
	v2, err := s.table.Lookup(w2)
	if err != nil {
		return nil, err
	}
	v3, err := s.table.Lookup(w3)
	if err != nil {
		return nil, err
	}

	query := make([]float32, s.table.Dim())
	for i := range query {
		query[i] = v2[i] - v1[i] + v3[i]
	}

	if !filterGiven {
		return s.NearestTo(query, n)
	}
	if n <= 0 {
		return nil, nil
	}

	candidates, err := s.NearestTo(query, n+3)
	if err != nil {
		return nil, err
	}

	results := candidates[:0]
	for _, r := range candidates {
		if r.Word == w1 || r.Word == w2 || r.Word == w3 {
			continue
		}
		results = append(results, r)
	}
	if n < len(results) {
		results = results[:n]
	}
	return results, nil
}
