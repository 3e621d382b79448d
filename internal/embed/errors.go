// internal/embed/errors.go
package embed

import "fmt"

// UnknownWordError reports a lookup for a word that is not in the vocabulary.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("word %q not in vocabulary", e.Word)
}

// DimensionMismatchError reports a query vector whose length does not match
// the table's dimensionality.
type DimensionMismatchError struct {
	Got  int
	Want int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("query dimension mismatch: got %d, want %d", e.Got, e.Want)
}

// LoadError reports malformed source data encountered while building a table.
type LoadError struct {
	Line   int
	Reason string
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed vector data at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed vector data: %s", e.Reason)
}
