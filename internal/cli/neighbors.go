// internal/cli/neighbors.go
package wordvec

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwiater/wordvec/internal/logging"
)

// neighborsCmd implements 'neighbors', which prints the words closest to the
// given word by vector distance. The word itself ranks first at distance zero.
var neighborsCmd = &cobra.Command{
	Use:   "neighbors <word>",
	Short: "Find the nearest neighbors of a word",
	Long:  "The 'neighbors' command scans the whole vocabulary and prints the top-N words closest to the given word under the configured distance metric.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		searcher, err := loadSearcher(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		word := args[0]
		start := time.Now()
		results, err := searcher.Neighbors(word, cfg.ResultCount())
		if err != nil {
			return err
		}
		logging.LogQuery("neighbors", word, cfg.MetricName(), len(results), time.Since(start))

		fmt.Println(renderResults(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(neighborsCmd)
}
