// ABOUTME: File-backed debug logger for the TUI
// ABOUTME: Keeps log output away from the terminal while the app is drawing

package debuglog

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = newLogger(io.Discard)
)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Init opens debug.log in the config directory. An empty configDir
// disables logging.
func Init(configDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if configDir == "" {
		logger.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	logPath := filepath.Join(configDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}

	logFile = f
	logger.SetOutput(f)
	return nil
}

// Close closes the log file and disables logging
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger.SetOutput(io.Discard)
}

// Log writes a formatted message at info level
func Log(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Error logs an error with context; nil errors are ignored
func Error(context string, err error) {
	if err == nil {
		return
	}
	logger.WithField("context", context).Error(err)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}
