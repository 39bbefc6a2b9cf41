package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 8, 15, 0, 0, time.UTC)
}

func newTestLogger(level Level) (*JSONLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, level)
	l.now = fixedClock

	return l, &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []entry {
	t.Helper()
	var out []entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e entry
		require.NoError(t, json.Unmarshal([]byte(line), &e), line)
		out = append(out, e)
	}

	return out
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"":        InfoLevel,
		"Warn":    WarnLevel,
		"warning": WarnLevel,
		" error ": ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", DebugLevel.String())
	assert.Equal(t, "warn", WarnLevel.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestJSONLogger_FiltersBelowLevel(t *testing.T) {
	l, buf := newTestLogger(WarnLevel)
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("network split", Count(2))
	l.Error("load failed", Error(errors.New("boom")))

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0].Level)
	assert.Equal(t, "network split", entries[0].Message)
	assert.EqualValues(t, 2, entries[0].Fields["count"])
	assert.Equal(t, "boom", entries[1].Fields["error"])
	assert.Equal(t, "2024-03-01T08:15:00Z", entries[0].Time)
}

func TestJSONLogger_WithAddsFields(t *testing.T) {
	l, buf := newTestLogger(DebugLevel)
	child := l.With(Component("planner"))
	child.Info("query", Station("Karlsplatz"), Line("U1"), QueryID("q-1"))
	l.Info("root")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, map[string]any{
		"component": "planner",
		"station":   "Karlsplatz",
		"line":      "U1",
		"query_id":  "q-1",
	}, entries[0].Fields)
	assert.Nil(t, entries[1].Fields)
}

func TestJSONLogger_ChildSharesLevel(t *testing.T) {
	l, buf := newTestLogger(InfoLevel)
	child := l.With(Component("network"))

	l.SetLevel(ErrorLevel)
	assert.Equal(t, ErrorLevel, child.GetLevel())
	child.Info("dropped")
	assert.Empty(t, buf.String())
}

func TestJSONLogger_ConcurrentWritesStayWhole(t *testing.T) {
	l, buf := newTestLogger(InfoLevel)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			child := l.With(Int("worker", i))
			for j := 0; j < 20; j++ {
				child.Info("tick")
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, decodeLines(t, buf), 16*20)
}

func TestTimedOperation(t *testing.T) {
	l, buf := newTestLogger(DebugLevel)

	op := StartTimer(l, "plan", Operation("plan"))
	op.End(Count(3))
	StartTimer(l, "load").EndError(errors.New("bad row"))

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "debug", entries[0].Level)
	assert.Equal(t, "plan", entries[0].Fields["operation"])
	assert.Contains(t, entries[0].Fields, "latency")
	assert.Equal(t, "error", entries[1].Level)
	assert.Equal(t, "bad row", entries[1].Fields["error"])
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, DebugLevel, NewFromEnv(nil, ErrorLevel).GetLevel())

	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, ErrorLevel, NewFromEnv(nil, ErrorLevel).GetLevel())

	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	l := NewFromEnv(&buf, WarnLevel)
	l.Info("dropped")
	l.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNopLogger(t *testing.T) {
	var l Logger = NewNopLogger()
	l.Info("ignored")
	assert.Equal(t, l, l.With(Count(1)))
}

func TestErrorFieldNil(t *testing.T) {
	f := Error(nil)
	assert.Equal(t, "error", f.Key)
	assert.Nil(t, f.Value)
}
