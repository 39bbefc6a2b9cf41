package logging

import "time"

func String(key, value string) Field           { return Field{Key: key, Value: value} }
func Int(key string, value int) Field          { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field      { return Field{Key: key, Value: value} }
func Float64(key string, value float64) Field  { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field        { return Field{Key: key, Value: value} }
func Strings(key string, value []string) Field { return Field{Key: key, Value: value} }

// Duration renders d with time.Duration.String so logs stay human readable.
func Duration(key string, d time.Duration) Field { return Field{Key: key, Value: d.String()} }

// Error records err under "error"; a nil error is logged as null.
func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Domain helpers.

func Component(name string) Field   { return String("component", name) }
func Operation(op string) Field     { return String("operation", op) }
func Station(name string) Field     { return String("station", name) }
func Line(name string) Field        { return String("line", name) }
func QueryID(id string) Field       { return String("query_id", id) }
func Path(p string) Field           { return String("path", p) }
func Count(n int) Field             { return Int("count", n) }
func Latency(d time.Duration) Field { return Duration("latency", d) }
