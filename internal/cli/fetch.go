// internal/cli/fetch.go
package wordvec

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/wordvec/internal/glove"
)

// fetchCmd implements 'fetch', which downloads and unpacks the configured
// pretrained vector set into the cache directory without running a query.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the configured pretrained vector set",
	Long:  "The 'fetch' command downloads the configured pretrained archive, extracts the vector file for the configured dimensionality, and leaves both in the cache directory. Cached files are reused.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		src, err := glove.Resolve(cfg.DatasetName(), cfg.VectorDimension())
		if err != nil {
			return err
		}

		color.Cyan("Fetching %s (%dd) into %s ...", src.Name, src.Dim, cfg.CacheDirPath())
		client := &http.Client{Timeout: cfg.RequestTimeout()}
		path, err := glove.Fetch(cmd.Context(), client, src, cfg.CacheDirPath())
		if err != nil {
			return err
		}
		color.Green("Ready: %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
