package util

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the shared logger for the iosgen tools. Generated
// configuration goes to stdout; everything logged here goes to stderr.
var Logger = logrus.New()

func init() {
	Logger.SetOutput(os.Stderr)
	Logger.SetLevel(logrus.WarnLevel)
	Logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}

// SetLogLevel sets the logging level
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)
	return nil
}

// SetLogOutput sets the log output destination
func SetLogOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// SetColor forces ANSI level coloring on or off for the text formatter.
func SetColor(enabled bool) {
	Logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      enabled,
		DisableColors:    !enabled,
	})
}

// WithField returns a logger with a field
func WithField(key string, value interface{}) *logrus.Entry {
	return Logger.WithField(key, value)
}

// WithTool returns a logger tagged with the generator name
func WithTool(tool string) *logrus.Entry {
	return Logger.WithField("tool", tool)
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}

// Infof logs a formatted info message
func Infof(format string, args ...interface{}) {
	Logger.Infof(format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	Logger.Warnf(format, args...)
}
