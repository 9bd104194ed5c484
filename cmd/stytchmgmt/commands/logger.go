package commands

import (
	"io"
	"sort"

	"github.com/fivetwenty-io/stytch-mgmt/pkg/mgmt"
	"github.com/hashicorp/go-hclog"
)

// Logger adapts an hclog.Logger to mgmt.Logger.
type Logger struct {
	logger hclog.Logger
}

// NewLogger creates a logger writing to w. Debug messages are only emitted
// when verbose is set.
func NewLogger(w io.Writer, verbose bool) *Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}

	return &Logger{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:   "stytchmgmt",
			Level:  level,
			Output: w,
		}),
	}
}

var _ mgmt.Logger = (*Logger)(nil)

// Debug implements mgmt.Logger.Debug.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, keyValues(fields)...)
}

// Info implements mgmt.Logger.Info.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, keyValues(fields)...)
}

// Warn implements mgmt.Logger.Warn.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, keyValues(fields)...)
}

// Error implements mgmt.Logger.Error.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, keyValues(fields)...)
}

// keyValues flattens fields into hclog's alternating key/value form, sorted
// by key so output is stable.
func keyValues(fields map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	args := make([]interface{}, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}

	return args
}
