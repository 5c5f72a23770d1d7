// Package logger holds the process-wide logger. All helpers are no-ops
// until Init runs, so packages and tests can log unconditionally.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/wagetrack/internal/constants"
)

// Logger is the global logger instance.
var Logger *log.Logger

var rotator *lumberjack.Logger

type Config struct {
	Debug bool
	// Dir is the settings directory; logs go to Dir/logs.
	Dir string
	// Output replaces the rotating log file when set.
	Output io.Writer
}

// Init builds the global logger. Warnings and above are kept by default;
// Debug lowers the level and mirrors everything to stderr.
func Init(cfg Config) error {
	Close()

	out := cfg.Output
	if out == nil {
		logDir := filepath.Join(cfg.Dir, "logs")
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return err
		}
		rotator = &lumberjack.Logger{
			Filename:   filepath.Join(logDir, constants.AppName+".log"),
			MaxSize:    5, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		}
		out = rotator
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
		// the TUI owns the terminal otherwise
		out = io.MultiWriter(os.Stderr, out)
	}

	Logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          constants.AppName,
		ReportTimestamp: true,
		ReportCaller:    cfg.Debug,
	})
	return nil
}

// Path returns the active log file, or "" when logging to a custom writer.
func Path() string {
	if rotator == nil {
		return ""
	}
	return rotator.Filename
}

// Close flushes and releases the log file.
func Close() {
	if rotator != nil {
		_ = rotator.Close()
		rotator = nil
	}
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal logs and exits with status 1.
func Fatal(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
	Close()
	os.Exit(1)
}
