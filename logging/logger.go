// Package logging is a small structured JSON logger with a no-op variant for
// tests and libraries that run quietly by default.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// NewJSONLogger returns a logger writing entries at or above level to w.
func NewJSONLogger(w io.Writer, level Level) *JSONLogger {
	lvl := level
	return &JSONLogger{
		mu:     &sync.Mutex{},
		writer: w,
		level:  &lvl,
		now:    time.Now,
	}
}

// NewFromEnv returns a logger writing to w whose level comes from LOG_LEVEL,
// falling back to fallback when the variable is unset or invalid. A nil w
// means stderr.
func NewFromEnv(w io.Writer, fallback Level) *JSONLogger {
	level := fallback
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if parsed, err := ParseLevel(s); err == nil {
			level = parsed
		}
	}

	if w == nil {
		w = os.Stderr
	}

	return NewJSONLogger(w, level)
}

func (l *JSONLogger) log(level Level, msg string, fields ...Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < *l.level {
		return
	}

	e := entry{
		Time:    l.now().UTC().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
	}
	if n := len(l.fields) + len(fields); n > 0 {
		e.Fields = make(map[string]any, n)
		for _, f := range l.fields {
			e.Fields[f.Key] = f.Value
		}
		for _, f := range fields {
			e.Fields[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(e)
	if err != nil {
		fmt.Fprintf(l.writer, "{\"level\":\"error\",\"msg\":\"unencodable log entry: %v\"}\n", err)
		return
	}
	data = append(data, '\n')
	_, _ = l.writer.Write(data)
}

func (l *JSONLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields...) }
func (l *JSONLogger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields...) }
func (l *JSONLogger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields...) }
func (l *JSONLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields...) }

// With returns a child logger. Parent and child share the writer lock and the
// level, so SetLevel on either affects both.
func (l *JSONLogger) With(fields ...Field) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)

	return &JSONLogger{
		mu:     l.mu,
		writer: l.writer,
		level:  l.level,
		fields: merged,
		now:    l.now,
	}
}

func (l *JSONLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.level = level
}

func (l *JSONLogger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return *l.level
}

// StartTimer begins timing an operation logged under msg.
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{
		logger: logger,
		msg:    msg,
		start:  time.Now(),
		fields: fields,
	}
}

// Elapsed reports the time since StartTimer.
func (t *TimedOperation) Elapsed() time.Duration { return time.Since(t.start) }

// End logs the operation at debug level with its latency.
func (t *TimedOperation) End(fields ...Field) {
	t.logger.Debug(t.msg, t.collect(fields)...)
}

// EndInfo logs the operation at info level with its latency.
func (t *TimedOperation) EndInfo(fields ...Field) {
	t.logger.Info(t.msg, t.collect(fields)...)
}

// EndError logs the operation as failed. Expected outcomes such as an
// unreachable goal should be logged with End instead.
func (t *TimedOperation) EndError(err error, fields ...Field) {
	t.logger.Error(t.msg, append(t.collect(fields), Error(err))...)
}

func (t *TimedOperation) collect(extra []Field) []Field {
	out := make([]Field, 0, len(t.fields)+len(extra)+1)
	out = append(out, t.fields...)
	out = append(out, extra...)

	return append(out, Latency(t.Elapsed()))
}
