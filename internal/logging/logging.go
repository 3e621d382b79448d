package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogQuery records one lookup against the vector table: the query kind
// (neighbors or analogy), its input, the metric used, how many results came
// back, and how long the scan took.
func LogQuery(kind, input, metric string, results int, elapsed time.Duration) {
	msg := buildQueryMessage(kind, input, metric, results, elapsed)
	log.Println(msg)
}

func buildQueryMessage(kind, input, metric string, results int, elapsed time.Duration) string {
	kindValue := strings.TrimSpace(kind)
	if kindValue == "" {
		kindValue = "query"
	}
	inputValue := strings.TrimSpace(input)
	if inputValue == "" {
		inputValue = "unknown"
	}
	metricValue := strings.TrimSpace(metric)
	if metricValue == "" {
		metricValue = "euclidean"
	}
	parts := []string{fmt.Sprintf("[%s]", strings.ToUpper(kindValue))}
	parts = append(parts, fmt.Sprintf("input=%s", inputValue))
	parts = append(parts, fmt.Sprintf("metric=%s", metricValue))
	parts = append(parts, fmt.Sprintf("results=%d", results))
	parts = append(parts, fmt.Sprintf("elapsed=%s", elapsed))
	return strings.Join(parts, " ")
}
