package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// log is the process-wide logger. It writes to stdout until SetupLogger
// attaches the daily log file.
var log = logrus.New()

// SetupLogger sends log output to stdout and logs/<date>.log.
func SetupLogger() error {
	return SetupLoggerWithDir("logs")
}

// SetupLoggerWithDir is SetupLogger with a caller-chosen directory.
func SetupLoggerWithDir(logDir string) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	logFileName := filepath.Join(logDir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})
	log.SetLevel(logrus.InfoLevel)
	return nil
}

// SetOutput redirects all log output, mostly for tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetLevel parses a logrus level name ("debug", "info", ...).
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

// WithFields returns a structured entry.
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return log.WithFields(logrus.Fields(fields))
}

// Debug logs at debug level.
func Debug(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

// Info logs at info level.
func Info(format string, v ...interface{}) {
	log.Infof(format, v...)
}

// Warning logs at warn level.
func Warning(format string, v ...interface{}) {
	log.Warnf(format, v...)
}

// Error logs at error level.
func Error(format string, v ...interface{}) {
	log.Errorf(format, v...)
}

// Fatal logs and exits.
func Fatal(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}
