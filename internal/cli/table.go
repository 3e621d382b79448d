// internal/cli/table.go
package wordvec

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fatih/color"

	"github.com/mwiater/wordvec/internal/appconfig"
	"github.com/mwiater/wordvec/internal/embed"
	"github.com/mwiater/wordvec/internal/glove"
	"github.com/mwiater/wordvec/internal/logging"
)

// loadSearcher materializes the configured vector table and wraps it in a
// searcher. The first call for a dataset downloads and unpacks it; later
// calls reuse the cache.
func loadSearcher(ctx context.Context, cfg *appconfig.Config) (*embed.Searcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	name := cfg.DatasetName()
	dim := cfg.VectorDimension()
	color.Cyan("Loading %s (%dd) ...", name, dim)

	start := time.Now()
	client := &http.Client{Timeout: cfg.RequestTimeout()}
	table, err := glove.Load(ctx, client, name, dim, cfg.CacheDirPath())
	if err != nil {
		return nil, err
	}
	logging.LogEvent("[LOAD] %s: %d words, %d dims in %s", name, table.Len(), table.Dim(), time.Since(start).Round(time.Millisecond))

	searcher, err := embed.NewSearcher(table, embed.Metric(cfg.MetricName()))
	if err != nil {
		return nil, err
	}
	return searcher, nil
}
