// internal/cli/show_config.go
package wordvec

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements 'show config', printing the merged configuration
// so flag/file precedence can be checked at a glance.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON config is loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		file := viper.ConfigFileUsed()
		if file == "" {
			fmt.Println("No config file loaded (using defaults).")
		} else {
			fmt.Printf("Config file: %s\n\n", file)
		}

		cfg := GetConfig()
		fmt.Println("Current configuration:")
		fmt.Printf("  Dataset:   %s\n", cfg.DatasetName())
		fmt.Printf("  Dimension: %d\n", cfg.VectorDimension())
		fmt.Printf("  Top N:     %d\n", cfg.ResultCount())
		fmt.Printf("  Metric:    %s\n", cfg.MetricName())
		fmt.Printf("  Cache dir: %s\n", cfg.CacheDirPath())
		fmt.Printf("  Debug:     %v\n", cfg.Debug)

		if cfg.Debug {
			fmt.Println()
			pp.Println(cfg)
		}
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
