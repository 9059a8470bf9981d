// ABOUTME: Plain-text logger for local development runs (LOG_FORMAT=text)
// ABOUTME: Renders fields as sorted key=value pairs so lines diff cleanly

package standard

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levelTags = map[level]string{
	levelDebug: "DEBUG",
	levelInfo:  "INFO",
	levelWarn:  "WARN",
	levelError: "ERROR",
}

// Logger writes human-readable log lines to a single stream. It backs
// the text log format; deployments wanting JSON use the logrus logger.
type Logger struct {
	out io.Writer
	min level
}

// New creates a text logger writing to stdout. Unknown level names
// fall back to info.
func New(levelName string) *Logger {
	return NewWithOutput(levelName, os.Stdout)
}

// NewWithOutput creates a text logger writing to out
func NewWithOutput(levelName string, out io.Writer) *Logger {
	return &Logger{out: out, min: parseLevel(levelName)}
}

func parseLevel(name string) level {
	switch strings.ToLower(name) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.write(levelDebug, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.write(levelInfo, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.write(levelWarn, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.write(levelError, msg, fields)
}

func (l *Logger) write(lvl level, msg string, fields map[string]interface{}) {
	if lvl < l.min {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", time.Now().Format("2006-01-02 15:04:05"), levelTags[lvl], msg)

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, fields[k])
		}
	}
	b.WriteByte('\n')

	io.WriteString(l.out, b.String())
}
