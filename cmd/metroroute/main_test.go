package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_Route(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	code, out, errOut := runCLI("Leopoldau", "Westbahnhof")
	require.Equal(t, exitOK, code, errOut)
	assert.Empty(t, errOut)
	assert.True(t, strings.HasPrefix(out, "Leopoldau → Westbahnhof: 25 min via U1, U3 (1 transfer)\n"))
	assert.Contains(t, out, "  19  change to U3 at Stephansplatz\n")
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	cfg := writeFile(t, "metroroute.yaml", "avoid_lines: [U3]\nlog_level: error\n")

	code, out, _ := runCLI("-config", cfg, "Leopoldau", "Westbahnhof")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "30 min via U1, U4, U6")

	code, out, _ = runCLI("-config", cfg, "-avoid", "", "Leopoldau", "Westbahnhof")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "25 min via U1, U3")
}

func TestRun_UnknownStation(t *testing.T) {
	code, _, errOut := runCLI("Leopoldau", "westbahn")
	assert.Equal(t, exitUnknownStation, code)
	assert.Contains(t, errOut, `unknown goal station "westbahn"`)
	assert.Contains(t, errOut, "did you mean: Westbahnhof?")

	code, _, errOut = runCLI("Nowhere", "Leopoldau")
	assert.Equal(t, exitUnknownStation, code)
	assert.Contains(t, errOut, `unknown start station "Nowhere"`)
}

func TestRun_NoPath(t *testing.T) {
	code, _, errOut := runCLI("-max-cost", "20", "Leopoldau", "Westbahnhof")
	assert.Equal(t, exitNoPath, code)
	assert.Contains(t, errOut, "no path")

	code, _, _ = runCLI("-avoid", "U1", "Leopoldau", "Karlsplatz")
	assert.Equal(t, exitNoPath, code)
}

func TestRun_Usage(t *testing.T) {
	for name, args := range map[string][]string{
		"one station":     {"Leopoldau"},
		"unknown flag":    {"-fast", "A", "B"},
		"bad log level":   {"-log-level", "loud", "A", "B"},
		"bad format":      {"-format", "json", "A", "B"},
		"negative cost":   {"-max-cost", "-3", "A", "B"},
		"missing config":  {"-config", filepath.Join(t.TempDir(), "nope.yaml"), "A", "B"},
		"too many params": {"A", "B", "C"},
	} {
		code, _, _ := runCLI(args...)
		assert.Equal(t, exitUsage, code, name)
	}

	code, _, errOut := runCLI("-h")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "usage: metroroute")
}

func TestRun_Stations(t *testing.T) {
	code, out, _ := runCLI("-stations")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Karlsplatz (U1, U2, U4)\n")
	assert.Equal(t, 69, strings.Count(out, "\n"))
}

func TestRun_NetworkFile(t *testing.T) {
	path := writeFile(t, "ring.yml", `lines:
  - name: R
    stops:
      - {station: North, next: 4}
      - {station: East, next: 4}
      - {station: South}
  - name: X
    stops:
      - {station: North, next: 5}
      - {station: South}
`)
	code, out, errOut := runCLI("-network", path, "-stops", "North", "South")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "North → South: 5 min via X (0 transfers)")

	code, out, _ = runCLI("-network", path, "-avoid", "X", "-stops", "North", "South")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "via East")
}

func TestRun_BrokenNetwork(t *testing.T) {
	path := writeFile(t, "broken.csv", "U1,A,one,B\n")
	code, _, errOut := runCLI("-network", path, "A", "B")
	assert.Equal(t, exitInternal, code)
	assert.Contains(t, errOut, path+":1:")
}

func TestRun_InfoLogsGoToStderr(t *testing.T) {
	path := writeFile(t, "line.csv", "L,A,1,B\n")
	code, out, errOut := runCLI("-network", path, "-log-level", "info", "A", "B")
	require.Equal(t, exitOK, code)
	assert.NotContains(t, out, `"level"`)
	assert.Contains(t, errOut, `"msg":"network loaded"`)
	assert.Contains(t, errOut, `"msg":"network published"`)
}

func TestRun_LogLevelFromEnvironment(t *testing.T) {
	path := writeFile(t, "line.csv", "L,A,1,B\n")

	t.Setenv("LOG_LEVEL", "info")
	code, _, errOut := runCLI("-network", path, "A", "B")
	require.Equal(t, exitOK, code)
	assert.Contains(t, errOut, `"msg":"network loaded"`)

	// An explicit level wins over the environment.
	code, _, errOut = runCLI("-network", path, "-log-level", "error", "A", "B")
	require.Equal(t, exitOK, code)
	assert.Empty(t, errOut)

	cfg := writeFile(t, "metroroute.yaml", "log_level: error\n")
	code, _, errOut = runCLI("-config", cfg, "-network", path, "A", "B")
	require.Equal(t, exitOK, code)
	assert.Empty(t, errOut)
}

func TestRun_DebugLogsQueryMetrics(t *testing.T) {
	code, _, errOut := runCLI("-log-level", "debug", "Leopoldau", "Karlsplatz")
	require.Equal(t, exitOK, code)
	assert.Contains(t, errOut, `"name":"metroroute_queries_total"`)
	assert.Contains(t, errOut, `"name":"metroroute_network_stations"`)
	assert.Contains(t, errOut, `"value":69`)
}

func TestRun_UsageCheckedBeforeLoading(t *testing.T) {
	path := writeFile(t, "broken.csv", "U1,A,one,B\n")
	code, _, errOut := runCLI("-network", path, "A")
	assert.Equal(t, exitUsage, code)
	assert.NotContains(t, errOut, path)

	code, _, _ = runCLI("-network", path, "-stations")
	assert.Equal(t, exitInternal, code)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"U1", "U6"}, splitList(" U1, ,U6 "))
	assert.Nil(t, splitList(""))
}
