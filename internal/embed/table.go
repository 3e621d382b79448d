// internal/embed/table.go
// Package embed holds the in-memory word-vector table and the query
// operations over it: brute-force nearest-neighbor search and analogy
// completion via vector arithmetic.
package embed

// Entry is a single word paired with its embedding vector.
type Entry struct {
	Word   string
	Vector []float32
}

// Table is an immutable word-to-vector mapping. Vectors are stored in one
// contiguous block indexed in parallel with the word list, so repeated full
// scans walk memory linearly and enumeration order is stable per instance.
type Table struct {
	words []string
	index map[string]int
	data  []float32
	dim   int
}

// NewTable builds a table from parsed entries. Every vector must have the
// same length; a mismatch is a *LoadError. Duplicate words overwrite the
// earlier vector in place (last write wins), keeping the word's original
// position in the enumeration order.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, &LoadError{Reason: "no entries"}
	}

	dim := len(entries[0].Vector)
	if dim == 0 {
		return nil, &LoadError{Line: 1, Reason: "empty vector"}
	}

	t := &Table{
		index: make(map[string]int, len(entries)),
		dim:   dim,
	}
	for i, entry := range entries {
		if len(entry.Vector) != dim {
			return nil, &LoadError{Line: i + 1, Reason: "inconsistent vector length"}
		}
		if at, seen := t.index[entry.Word]; seen {
			copy(t.data[at*dim:(at+1)*dim], entry.Vector)
			continue
		}
		t.index[entry.Word] = len(t.words)
		t.words = append(t.words, entry.Word)
		t.data = append(t.data, entry.Vector...)
	}
	return t, nil
}

// Lookup returns the stored vector for an exact, case-sensitive match. The
// returned slice aliases the table's backing store and must not be modified.
func (t *Table) Lookup(word string) ([]float32, error) {
	i, ok := t.index[word]
	if !ok {
		return nil, &UnknownWordError{Word: word}
	}
	return t.vectorAt(i), nil
}

// Contains reports whether the word is in the vocabulary.
func (t *Table) Contains(word string) bool {
	_, ok := t.index[word]
	return ok
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return len(t.words)
}

// Dim returns the dimensionality shared by every vector in the table.
func (t *Table) Dim() int {
	return t.dim
}

// Range calls fn for every (word, vector) pair in enumeration order,
// stopping early if fn returns false.
func (t *Table) Range(fn func(word string, vector []float32) bool) {
	for i, word := range t.words {
		if !fn(word, t.vectorAt(i)) {
			return
		}
	}
}

// Words returns the vocabulary in enumeration order. The returned slice is
// shared and must not be modified.
func (t *Table) Words() []string {
	return t.words
}

func (t *Table) vectorAt(i int) []float32 {
	return t.data[i*t.dim : (i+1)*t.dim]
}
