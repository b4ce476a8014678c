package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "OVERLAY_DEBUG"

var (
	mu      sync.Mutex
	logger  *log.Logger
	logFile *os.File
	probed  bool
)

// newLogger builds a debug-level logger with millisecond timestamps.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "overlay",
	})
}

// Init initializes debug logging to the specified file path.
// If path is empty, uses "overlay-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "overlay-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = newLogger(f)
	probed = true
	return nil
}

// SetLogger routes debug output into l. Passing nil disables logging.
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
	probed = true
}

// Close closes the debug log file, if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	probed = false
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// current returns the active logger, opening OVERLAY_DEBUG on first use.
// Caller must hold mu.
func current() *log.Logger {
	if !probed {
		probed = true
		if path := os.Getenv(EnvVar); path != "" {
			if err := initLocked(path); err != nil {
				fmt.Fprintf(os.Stderr, "overlay: %v\n", err)
			}
		}
	}
	return logger
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if l := current(); l != nil {
		l.Debugf(format, args...)
	}
}

// Event writes a structured debug message with key/value pairs.
func Event(msg string, keyvals ...any) {
	mu.Lock()
	defer mu.Unlock()

	if l := current(); l != nil {
		l.Debug(msg, keyvals...)
	}
}
