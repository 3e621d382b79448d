// internal/cli/info.go
package wordvec

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwiater/wordvec/internal/glove"
)

var infoLoad bool

// infoCmd implements 'info', which reports the configured dataset, its cache
// status, and (with --load) the loaded vocabulary size.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show dataset and cache status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		src, err := glove.Resolve(cfg.DatasetName(), cfg.VectorDimension())
		if err != nil {
			return err
		}

		cacheDir := cfg.CacheDirPath()
		vectorPath := glove.VectorPath(src, cacheDir)
		sidecarPath := glove.SidecarPath(vectorPath)

		fmt.Printf("Dataset:        %s\n", src.Name)
		fmt.Printf("Dimensionality: %d\n", src.Dim)
		fmt.Printf("Metric:         %s\n", cfg.MetricName())
		fmt.Printf("Cache dir:      %s\n", cacheDir)
		fmt.Printf("Vector file:    %s (%s)\n", vectorPath, presence(vectorPath))
		fmt.Printf("Sidecar:        %s (%s)\n", sidecarPath, presence(sidecarPath))
		fmt.Printf("Known sets:     %s\n", strings.Join(glove.DatasetNames(), ", "))

		if infoLoad {
			searcher, err := loadSearcher(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			fmt.Printf("Vocabulary:     %d words\n", searcher.Table().Len())
		}
		return nil
	},
}

func presence(path string) string {
	if _, err := os.Stat(path); err == nil {
		return "cached"
	}
	return "not cached"
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoLoad, "load", false, "load the table and report the vocabulary size")
}
