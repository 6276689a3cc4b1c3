// Package logging provides the process-wide structured logger: a logrus
// instance rotated to disk with lumberjack and mirrored into a bounded
// in-memory ring buffer for diagnostics.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a logrus.Logger with the file rotation and in-memory
// buffering the rest of the engine depends on.
type Logger struct {
	*logrus.Logger
	logFile     *lumberjack.Logger
	buffer      *BufferedHook
	initialized bool
}

var (
	instance *Logger
	once     sync.Once
)

// Get returns the singleton logger. Safe to call before Init; Init
// reconfigures the same instance in place so every held reference updates
// its behavior together.
func Get() *Logger {
	once.Do(func() {
		instance = &Logger{Logger: logrus.New()}
		instance.buffer = NewBufferedHook(512)
		instance.AddHook(instance.buffer)
	})
	return instance
}

// Settings is the subset of System configuration that drives the logger;
// defined here rather than imported from config to avoid a dependency
// cycle (config logs through this package during load/reload).
type Settings struct {
	Level          string
	FilePath       string
	RetentionDays  int
	MaxSizeMB      int
	MaxBackups     int
}

// Init applies settings to the singleton logger. Safe to call repeatedly
// on configuration hot-reload (§A "Logging"); each call replaces the
// level, formatter, and file sink with the new values.
func (l *Logger) Init(s Settings, baseDir string) error {
	level, err := logrus.ParseLevel(s.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	logPath := s.FilePath
	if logPath == "" {
		logPath = "spotlight-dimmer.log"
	}
	if !filepath.IsAbs(logPath) {
		logPath = filepath.Join(baseDir, logPath)
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	maxSize := s.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}

	if l.logFile != nil {
		l.logFile.Close()
	}
	l.logFile = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSize,
		MaxBackups: s.MaxBackups,
		MaxAge:     s.RetentionDays,
		Compress:   true,
	}
	l.SetOutput(io.MultiWriter(os.Stdout, l.logFile))

	l.initialized = true
	l.Info("logger initialized")
	return nil
}

// Close flushes and releases the rotated log file.
func (l *Logger) Close() {
	if l.logFile != nil {
		l.logFile.Close()
	}
}

// Buffer returns the in-memory ring buffer of recent log entries.
func (l *Logger) Buffer() *LogBuffer {
	return l.buffer.buffer
}

// Overlay logs an overlay-renderer-related message.
func (l *Logger) Overlay(format string, args ...interface{}) {
	l.WithField("component", "overlay").Infof(format, args...)
}

// Focus logs a focus-tracking-related message.
func (l *Logger) Focus(format string, args ...interface{}) {
	l.WithField("component", "focus").Infof(format, args...)
}

// Config logs a configuration-related message.
func (l *Logger) Config(format string, args ...interface{}) {
	l.WithField("component", "config").Infof(format, args...)
}

// Display logs a monitor-inventory-related message.
func (l *Logger) Display(format string, args ...interface{}) {
	l.WithField("component", "display").Infof(format, args...)
}

// Engine logs an engine-lifecycle-related message.
func (l *Logger) Engine(format string, args ...interface{}) {
	l.WithField("component", "engine").Infof(format, args...)
}
