// internal/cli/analogy.go
package wordvec

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwiater/wordvec/internal/logging"
)

var analogyKeepGiven bool

// analogyCmd implements 'analogy', answering "a is to b as c is to ?" via
// vector arithmetic over the loaded table.
var analogyCmd = &cobra.Command{
	Use:   "analogy <a> <b> <c>",
	Short: `Complete the analogy "a is to b as c is to ?"`,
	Long:  "The 'analogy' command computes vector(b) - vector(a) + vector(c) and prints the words nearest that point. The three input words are filtered from the results unless --keep-given is set.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		searcher, err := loadSearcher(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		filter := cfg.FilterGivenWords() && !analogyKeepGiven
		start := time.Now()
		results, err := searcher.Analogy(args[0], args[1], args[2], cfg.ResultCount(), filter)
		if err != nil {
			return err
		}
		input := fmt.Sprintf("%s : %s :: %s", args[0], args[1], args[2])
		logging.LogQuery("analogy", input, cfg.MetricName(), len(results), time.Since(start))

		fmt.Printf("%s is to %s as %s is to:\n", args[0], args[1], args[2])
		fmt.Println(renderResults(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analogyCmd)
	analogyCmd.Flags().BoolVar(&analogyKeepGiven, "keep-given", false, "keep the three input words in the results")
}
