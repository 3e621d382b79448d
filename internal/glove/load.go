// internal/glove/load.go
package glove

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/mwiater/wordvec/internal/embed"
	"github.com/mwiater/wordvec/internal/logging"
)

// Load resolves a named pretrained set, fetches it into the cache if needed,
// and returns the in-memory table. A valid binary sidecar from a previous
// load is preferred over re-parsing the text file; after a text parse the
// sidecar is rewritten on a best-effort basis.
func Load(ctx context.Context, client *http.Client, name string, dim int, cacheDir string) (*embed.Table, error) {
	src, err := Resolve(name, dim)
	if err != nil {
		return nil, err
	}
	return LoadSource(ctx, client, src, cacheDir)
}

// LoadSource is Load for an already-resolved source.
func LoadSource(ctx context.Context, client *http.Client, src Source, cacheDir string) (*embed.Table, error) {
	vectorPath, err := Fetch(ctx, client, src, cacheDir)
	if err != nil {
		return nil, err
	}

	sidecarPath := SidecarPath(vectorPath)
	if table, ok := loadSidecar(sidecarPath, vectorPath, src.Dim); ok {
		return table, nil
	}

	f, err := os.Open(vectorPath)
	if err != nil {
		return nil, fmt.Errorf("open vector file: %w", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if table.Dim() != src.Dim {
		return nil, &embed.LoadError{Reason: fmt.Sprintf("vector file has %d-dimensional vectors, want %d", table.Dim(), src.Dim)}
	}

	if err := WriteSidecar(sidecarPath, table); err != nil {
		logging.LogEvent("[LOAD] sidecar write failed, continuing without it: %v", err)
	}
	return table, nil
}

// loadSidecar returns the sidecar-backed table when the sidecar exists, is
// at least as new as the text file, and matches the expected dimensionality.
func loadSidecar(sidecarPath, vectorPath string, dim int) (*embed.Table, bool) {
	scInfo, err := os.Stat(sidecarPath)
	if err != nil {
		return nil, false
	}
	txtInfo, err := os.Stat(vectorPath)
	if err == nil && scInfo.ModTime().Before(txtInfo.ModTime()) {
		return nil, false
	}

	table, err := ReadSidecar(sidecarPath)
	if err != nil {
		logging.LogEvent("[LOAD] sidecar unusable, falling back to text parse: %v", err)
		return nil, false
	}
	if table.Dim() != dim {
		return nil, false
	}
	return table, true
}
