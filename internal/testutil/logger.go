package testutil

import (
	"sync"

	"photosort/internal/photosort"
)

// LogRecord is one message captured by RecordingLogger.
type LogRecord struct {
	Level string
	Msg   string
	Args  []any
}

// RecordingLogger keeps every message for later assertions.
type RecordingLogger struct {
	mu      sync.Mutex
	records []LogRecord
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, LogRecord{Level: level, Msg: msg, Args: args})
}

func (l *RecordingLogger) Debug(msg string, args ...any) { l.record("DEBUG", msg, args) }
func (l *RecordingLogger) Info(msg string, args ...any)  { l.record("INFO", msg, args) }
func (l *RecordingLogger) Warn(msg string, args ...any)  { l.record("WARN", msg, args) }
func (l *RecordingLogger) Error(msg string, args ...any) { l.record("ERROR", msg, args) }

// Records returns the messages logged at level.
func (l *RecordingLogger) Records(level string) []LogRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []LogRecord
	for _, r := range l.records {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// Compile-time check
var _ photosort.Logger = (*RecordingLogger)(nil)
