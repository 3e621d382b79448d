// internal/glove/parse.go
package glove

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mwiater/wordvec/internal/embed"
)

// Parse reads the GloVe text format, one "word v1 .. vD" line per entry.
// The first line fixes the dimensionality; later lines with a different
// component count, or unparsable components, surface a *embed.LoadError
// carrying the offending line number. Duplicate words follow the source
// behavior of the format: the last occurrence wins.
func Parse(r io.Reader) (*embed.Table, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 8*1024*1024)

	var entries []embed.Entry
	dim := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &embed.LoadError{Line: lineNo, Reason: "no vector components"}
		}
		if dim == 0 {
			dim = len(fields) - 1
		} else if len(fields)-1 != dim {
			return nil, &embed.LoadError{Line: lineNo, Reason: fmt.Sprintf("expected %d components, got %d", dim, len(fields)-1)}
		}

		vector := make([]float32, dim)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, &embed.LoadError{Line: lineNo, Reason: fmt.Sprintf("bad component %q", field)}
			}
			vector[i] = float32(v)
		}
		entries = append(entries, embed.Entry{Word: fields[0], Vector: vector})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vector data: %w", err)
	}
	if len(entries) == 0 {
		return nil, &embed.LoadError{Reason: "no entries"}
	}

	return embed.NewTable(entries)
}
