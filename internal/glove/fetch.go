// internal/glove/fetch.go
package glove

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mwiater/wordvec/internal/embed"
	"github.com/mwiater/wordvec/internal/logging"
)

// VectorPath returns where the extracted vector text file lives in the cache.
func VectorPath(src Source, cacheDir string) string {
	return filepath.Join(cacheDir, src.File)
}

// ArchivePath returns where the downloaded archive lives in the cache.
func ArchivePath(src Source, cacheDir string) string {
	return filepath.Join(cacheDir, filepath.Base(src.URL))
}

// Fetch ensures the vector text file for the source is present in the cache
// directory, downloading and unpacking the archive when it is not. It
// returns the path to the extracted text file. Already-cached files are
// reused without touching the network.
func Fetch(ctx context.Context, client *http.Client, src Source, cacheDir string) (string, error) {
	vectorPath := VectorPath(src, cacheDir)
	if _, err := os.Stat(vectorPath); err == nil {
		return vectorPath, nil
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	archivePath := ArchivePath(src, cacheDir)
	if _, err := os.Stat(archivePath); err != nil {
		if err := download(ctx, client, src.URL, archivePath); err != nil {
			return "", err
		}
	}

	if err := extract(archivePath, src.File, vectorPath); err != nil {
		return "", err
	}
	return vectorPath, nil
}

func download(ctx context.Context, client *http.Client, url, dest string) error {
	logging.LogEvent("[FETCH] downloading %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create download request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".partial-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("finalize download: %w", err)
	}

	logging.LogEvent("[FETCH] downloaded %d bytes to %s", written, dest)
	return nil
}

func extract(archivePath, member, dest string) error {
	logging.LogEvent("[FETCH] extracting %s from %s", member, archivePath)

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open archive %s: %w", archivePath, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != member {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("open archive member %s: %w", member, err)
		}
		defer rc.Close()

		tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".partial-*")
		if err != nil {
			return fmt.Errorf("create temp file: %w", err)
		}
		defer os.Remove(tmp.Name())

		_, err = io.Copy(tmp, rc)
		if cerr := tmp.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("extract %s: %w", member, err)
		}
		return os.Rename(tmp.Name(), dest)
	}
	return &embed.LoadError{Reason: fmt.Sprintf("archive %s has no member %s", filepath.Base(archivePath), member)}
}
