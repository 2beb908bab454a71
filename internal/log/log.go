// SPDX-License-Identifier: EPL-2.0

// Package log is a small leveled logger over the standard library logger.
package log

import (
	"io"
	"log"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name case-insensitively. Unknown names map
// to LevelInfo.
func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger writes one line per message, prefixed with its level. It is safe for
// concurrent use.
type Logger struct {
	logger *log.Logger
	level  atomic.Int32
}

func New(out io.Writer, level Level) *Logger {
	l := &Logger{logger: log.New(out, "", log.LstdFlags)}
	l.level.Store(int32(level))
	return l
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

func (l *Logger) logf(level Level, format string, v ...any) {
	if l == nil || level < l.Level() {
		return
	}
	l.logger.Printf(level.String()+": "+format, v...)
}

func (l *Logger) Debugf(format string, v ...any) { l.logf(LevelDebug, format, v...) }
func (l *Logger) Infof(format string, v ...any)  { l.logf(LevelInfo, format, v...) }
func (l *Logger) Warnf(format string, v ...any)  { l.logf(LevelWarn, format, v...) }
func (l *Logger) Errorf(format string, v ...any) { l.logf(LevelError, format, v...) }

func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

func (l *Logger) Level() Level {
	return Level(l.level.Load())
}
