package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "SCENE_DEBUG"

var (
	logFile  *os.File
	mu       sync.Mutex
	envOnce  sync.Once
	disabled bool
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "scene-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "scene-debug.log"
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
	disabled = false
	return nil
}

// initFromEnv opens the file named by SCENE_DEBUG once. Caller must hold mu.
func initFromEnv() {
	envOnce.Do(func() {
		if logFile != nil {
			return
		}
		path := os.Getenv(EnvVar)
		if path == "" {
			disabled = true
			return
		}
		if err := initLocked(path); err != nil {
			disabled = true
		}
	})
}

// Enabled reports whether debug messages are being written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	initFromEnv()
	return logFile != nil && !disabled
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
// It is a no-op unless SCENE_DEBUG is set or Init was called.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	initFromEnv()
	if logFile == nil || disabled {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
}
