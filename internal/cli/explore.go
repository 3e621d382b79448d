// internal/cli/explore.go
package wordvec

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mwiater/wordvec/internal/tui"
)

// exploreCmd implements 'explore', an interactive prompt for neighbor and
// analogy queries against the loaded table.
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively query the loaded vector table",
	Long:  `The 'explore' command loads the configured vector set once and opens a prompt. Type a word for its nearest neighbors, or "a : b :: c" for an analogy.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		searcher, err := loadSearcher(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		model := tui.NewExplorer(searcher, cfg.ResultCount(), cfg.MetricName())
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("explore UI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
