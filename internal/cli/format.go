// internal/cli/format.go
package wordvec

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/wordvec/internal/embed"
)

var (
	distanceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	wordStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// formatDistance fixes a distance to four decimal places in parentheses.
func formatDistance(d float32) string {
	return fmt.Sprintf("(%.4f)", d)
}

// formatResult renders one search hit as "(<distance>) <word>".
func formatResult(r embed.Result) string {
	return formatDistance(r.Distance) + " " + r.Word
}

// renderResults styles the ranked hits one per line, in input order.
func renderResults(results []embed.Result) string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = fmt.Sprintf("%s %s",
			distanceStyle.Render(formatDistance(r.Distance)),
			wordStyle.Render(r.Word))
	}
	return strings.Join(lines, "\n")
}
