// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultRequestTimeout is the default timeout for dataset downloads.
	defaultRequestTimeout = 600 * time.Second
	// defaultDataset is the pretrained set used when the config omits one.
	defaultDataset = "glove.6B"
	// defaultDimension is the vector dimensionality used when the config omits one.
	defaultDimension = 100
	// defaultTopN is the result count used when the config omits one.
	defaultTopN = 10
)

// Config represents the top-level application configuration.
type Config struct {
	Dataset        string `json:"dataset"`
	Dimension      int    `json:"dimension"`
	CacheDir       string `json:"cacheDir,omitempty"`
	TopN           int    `json:"topN,omitempty"`
	Metric         string `json:"metric,omitempty"`
	FilterGiven    *bool  `json:"filterGiven,omitempty"`
	TimeoutSeconds int    `json:"timeout,omitempty"`
	LogFile        string `json:"logFile,omitempty"`
	Debug          bool   `json:"debug"`
	ConfigPath     string `json:"-"`
}

// RequestTimeout returns the timeout duration for dataset downloads, falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DatasetName returns the configured pretrained set, applying the default if not set.
func (c Config) DatasetName() string {
	if name := strings.TrimSpace(c.Dataset); name != "" {
		return name
	}
	return defaultDataset
}

// VectorDimension returns the configured dimensionality, applying the default if not set.
func (c Config) VectorDimension() int {
	if c.Dimension > 0 {
		return c.Dimension
	}
	return defaultDimension
}

// ResultCount returns the configured top-N result count, applying the default if not set.
func (c Config) ResultCount() int {
	if c.TopN > 0 {
		return c.TopN
	}
	return defaultTopN
}

// MetricName returns the configured distance metric, defaulting to euclidean.
func (c Config) MetricName() string {
	if m := strings.TrimSpace(c.Metric); m != "" {
		return m
	}
	return "euclidean"
}

// FilterGivenWords reports whether analogy results drop the three input
// words. Enabled unless the config explicitly disables it.
func (c Config) FilterGivenWords() bool {
	if c.FilterGiven == nil {
		return true
	}
	return *c.FilterGiven
}

// CacheDirPath returns the directory holding downloaded vector sets,
// defaulting to a wordvec directory under the user cache dir.
func (c Config) CacheDirPath() string {
	if dir := strings.TrimSpace(c.CacheDir); dir != "" {
		return dir
	}
	if base, err := os.UserCacheDir(); err == nil {
		return filepath.Join(base, "wordvec")
	}
	return ".wordvec-cache"
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "wordvec.log"
}

// Load reads the application configuration from the specified path. A
// missing file at the default path is not an error; defaults apply.
func Load(path string) (Config, error) {
	usedDefault := path == ""
	if usedDefault {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if usedDefault {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}
	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := validate(data); err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = int(defaultRequestTimeout.Seconds())
	}
	return config, nil
}
