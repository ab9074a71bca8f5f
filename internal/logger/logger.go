package logger

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"sync"
)

type Level int

const (
	LevelOff Level = iota
	LevelError
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "OFF"
	}
}

var (
	mu    sync.RWMutex
	level = LevelOff
	out   = stdlog.New(io.Discard, "", stdlog.LstdFlags)
)

// SetOutput sends log lines to w at or below lvl
func SetOutput(w io.Writer, lvl Level) {
	mu.Lock()
	defer mu.Unlock()
	out.SetOutput(w)
	level = lvl
}

// OpenFile appends log output to path. The returned close func restores the
// discarding sink.
func OpenFile(path string, lvl Level) (func() error, error) {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	SetOutput(logFile, lvl)
	return func() error {
		SetOutput(io.Discard, LevelOff)
		return logFile.Close()
	}, nil
}

// Enabled reports whether lines at lvl are written
func Enabled(lvl Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return lvl != LevelOff && lvl <= level
}

// Logger writes lines tagged with a component name
type Logger struct {
	name string
}

// New returns a logger for the named component, e.g. "ebrowse.ui"
func New(name string) *Logger {
	return &Logger{name: name}
}

func (l *Logger) logf(lvl Level, format string, v ...interface{}) {
	if !Enabled(lvl) {
		return
	}
	msg := fmt.Sprintf(format, v...)
	mu.RLock()
	defer mu.RUnlock()
	out.Printf("%s:%s:%s", lvl, l.name, msg)
}

func (l *Logger) Debug(format string, v ...interface{}) { l.logf(LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.logf(LevelInfo, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.logf(LevelError, format, v...) }
