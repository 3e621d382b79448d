// internal/tui/parse.go
// Package tui implements the interactive explore screen: a prompt that
// answers nearest-neighbor queries for a word and analogy queries written
// as "a : b :: c".
package tui

import (
	"fmt"
	"strings"
)

// queryKind distinguishes the two query forms the prompt accepts.
type queryKind int

const (
	queryNeighbors queryKind = iota
	queryAnalogy
)

// parseQuery classifies the raw prompt input. A single token is a neighbors
// query; "a : b :: c" (spacing optional) is an analogy query.
func parseQuery(raw string) (queryKind, []string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil, fmt.Errorf("empty query")
	}

	if strings.Contains(raw, "::") {
		parts := strings.SplitN(raw, "::", 2)
		left := strings.SplitN(parts[0], ":", 2)
		if len(left) != 2 {
			return 0, nil, fmt.Errorf("analogy must look like a : b :: c")
		}
		words := []string{
			strings.TrimSpace(left[0]),
			strings.TrimSpace(left[1]),
			strings.TrimSpace(parts[1]),
		}
		for _, w := range words {
			if w == "" || strings.ContainsAny(w, " \t") {
				return 0, nil, fmt.Errorf("analogy must look like a : b :: c")
			}
		}
		return queryAnalogy, words, nil
	}

	if strings.ContainsAny(raw, " \t") {
		return 0, nil, fmt.Errorf("neighbors query takes a single word")
	}
	return queryNeighbors, []string{raw}, nil
}
