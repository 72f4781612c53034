// The package logger defines a simple leveled logger with DEBUG, INFO, WARN and ERROR prints.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

type Aggregate struct {
	logger *log.Logger
}

// New() returns an initialized Logger that prints INFO logs and above.
func New(out io.Writer) *Aggregate {
	return &Aggregate{
		logger: log.NewWithOptions(out, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "2006/01/02 15:04:05",
			Level:           log.InfoLevel,
		}),
	}
}

// SetLevel() changes the minimum level that gets printed.
// Valid levels are "debug", "info", "warn" and "error".
func (l *Aggregate) SetLevel(level string) error {
	parsed, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l.logger.SetLevel(parsed)
	return nil
}

// Debug() prints a DEBUG log
func (l *Aggregate) Debug(s string, v ...interface{}) {
	l.logger.Debugf(s, v...)
}

// Info() prints an INFO log
func (l *Aggregate) Info(s string, v ...interface{}) {
	l.logger.Infof(s, v...)
}

// Warn() prints an WARN log
func (l *Aggregate) Warn(s string, v ...interface{}) {
	l.logger.Warnf(s, v...)
}

// Error() prints an ERROR log
func (l *Aggregate) Error(s string, v ...interface{}) {
	l.logger.Errorf(s, v...)
}

// Init() initialise the logger and the file it prints to.
func Init(filePath string) (*Aggregate, *os.File, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening file %q: %w", filePath, err)
	}

	return New(file), file, nil
}
