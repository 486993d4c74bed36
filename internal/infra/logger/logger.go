// Package logger owns the process-wide slog logger. Until Setup succeeds,
// L() returns a logger that discards everything, so packages can log
// unconditionally.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Config struct {
	// Dir is the directory the log file lives in; created if missing.
	Dir   string
	Debug bool
}

const logFileName = "libretto.log"

var (
	mu      sync.RWMutex
	global  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile *os.File
	logPath string
)

// Setup opens the log file and installs the global logger. The returned
// cleanup closes the file and resets the global to a discarding logger.
func Setup(cfg Config) (func() error, error) {
	dir := filepath.Clean(cfg.Dir)
	if dir == "" || dir == "." {
		dir = filepath.Join(".libretto", "logs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		setDiscard()
		return nil, err
	}

	path := filepath.Join(dir, logFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		setDiscard()
		return nil, err
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewTextHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	global.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = slog.New(slog.NewTextHandler(io.Discard, nil))
		return cerr
	}

	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile = nil
	logPath = ""
}
