package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// EnvVar names the trace file.
const EnvVar = "ASCII_DEBUG"

// New opens the logger named by ASCII_DEBUG. See Open.
func New() (*log.Logger, func() error, error) {
	return Open(os.Getenv(EnvVar))
}

// Open returns a logger that appends to path at debug level, creating
// missing directories, and a func that closes the file. An empty path gives
// a logger that writes nowhere and only passes warnings.
func Open(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel}), func() error { return nil }, nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "ascii",
	})
	return logger, f.Close, nil
}
