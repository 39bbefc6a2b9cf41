package network_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/logging"
	"github.com/katalvlaran/metroroute/network"
)

const u1CSV = `# line,station,minutes,next station
U1,Leopoldau,2,Grossfeldsiedlung
U1, Grossfeldsiedlung ,1,Aderklaaer Strasse

U1,Aderklaaer Strasse,1,Rennbahnweg
U1,Rennbahnweg,2,Kagraner Platz
`

const u1YAML = `lines:
  - name: U1
    stops:
      - {station: Leopoldau, next: 2}
      - {station: Grossfeldsiedlung, next: 1}
      - {station: Aderklaaer Strasse, next: 1}
      - {station: Rennbahnweg, next: 2}
      - {station: Kagraner Platz}
`

func TestParseCSV(t *testing.T) {
	recs, err := network.ParseCSV(strings.NewReader(u1CSV))
	require.NoError(t, err)
	require.Len(t, recs, 4)

	assert.Equal(t, network.Record{Line: "U1", From: "Leopoldau", To: "Grossfeldsiedlung", Weight: 2, Row: 2}, recs[0])
	assert.Equal(t, "Grossfeldsiedlung", recs[1].From, "fields are trimmed")
	assert.Equal(t, 5, recs[2].Row, "rows count comments and blank lines")
}

func TestParseCSV_Errors(t *testing.T) {
	cases := map[string]struct {
		input string
		row   int
	}{
		"bad weight":      {"U1,A,x,B\n", 1},
		"negative weight": {"U1,A,1,B\nU1,B,-3,C\n", 2},
		"missing line":    {"U1,A,1,B\n,B,1,C\n", 2},
		"empty station":   {"# header\nU1,,1,C\n", 2},
		"field count":     {"U1,A,1,B\nU1,A,1\n", 2},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := network.ParseCSV(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, network.ErrMalformedRecord)

			var rerr *network.RecordError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tc.row, rerr.Row)
		})
	}
}

func TestParseCSV_ValidationMessage(t *testing.T) {
	_, err := network.ParseCSV(strings.NewReader("U1,A,-1,B\n"))
	require.Error(t, err)
	assert.Equal(t, "csv:1: weight must be >= 0, got -1", err.Error())
}

func TestParseYAML_MatchesCSV(t *testing.T) {
	fromYAML, err := network.ParseYAML(strings.NewReader(u1YAML))
	require.NoError(t, err)
	fromCSV, err := network.ParseCSV(strings.NewReader(u1CSV))
	require.NoError(t, err)

	require.Len(t, fromYAML, len(fromCSV))
	for i := range fromCSV {
		a, b := fromCSV[i], fromYAML[i]
		a.Row, b.Row = 0, 0
		assert.Equal(t, a, b)
	}
	assert.Equal(t, 4, fromYAML[0].Row)
}

func TestParseYAML_Errors(t *testing.T) {
	cases := map[string]struct {
		input string
		row   int
	}{
		"next on last stop": {"lines:\n  - name: U1\n    stops:\n      - {station: A, next: 1}\n      - {station: B, next: 2}\n", 5},
		"missing next":      {"lines:\n  - name: U1\n    stops:\n      - {station: A}\n      - {station: B}\n", 4},
		"single stop":       {"lines:\n  - name: U1\n    stops:\n      - {station: A}\n", 2},
		"unknown stop key":  {"lines:\n  - name: U1\n    stops:\n      - {station: A, nxt: 1}\n      - {station: B}\n", 4},
		"negative time":     {"lines:\n  - name: U1\n    stops:\n      - {station: A, next: -1}\n      - {station: B}\n", 4},
		"empty station":     {"lines:\n  - name: U1\n    stops:\n      - {station: '', next: 1}\n      - {station: B}\n", 4},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := network.ParseYAML(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, network.ErrMalformedRecord)

			var rerr *network.RecordError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tc.row, rerr.Row)
		})
	}
}

func TestParseYAML_UnknownTopLevelKey(t *testing.T) {
	_, err := network.ParseYAML(strings.NewReader("routes: []\n"))
	assert.ErrorIs(t, err, network.ErrMalformedRecord)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]network.Format{
		"":     "",
		"CSV":  network.FormatCSV,
		"yaml": network.FormatYAML,
		"yml":  network.FormatYAML,
	} {
		got, err := network.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := network.ParseFormat("json")
	assert.Error(t, err)

	assert.Equal(t, network.FormatYAML, network.FormatFromPath("net/vienna.YML"))
	assert.Equal(t, network.FormatCSV, network.FormatFromPath("net/vienna.txt"))
}

func TestBuild_KeepsSourceOrder(t *testing.T) {
	recs, err := network.ParseCSV(strings.NewReader(u1CSV))
	require.NoError(t, err)

	g, err := network.Build(recs)
	require.NoError(t, err)
	assert.Equal(t, 5, g.StationCount())

	edges, err := g.Neighbors("Grossfeldsiedlung")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "Leopoldau", edges[0].To)
	assert.Equal(t, "Aderklaaer Strasse", edges[1].To)
}

func TestBuild_CoreErrorsKeepRow(t *testing.T) {
	_, err := network.Build([]network.Record{
		{Line: "U1", From: "A", To: "B", Weight: 1, Row: 1},
		{Line: "U1", From: "B", To: "C", Weight: -1, Row: 7},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.ErrorIs(t, err, network.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "row 7")
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "u1.csv")
	yamlPath := filepath.Join(dir, "u1.yaml")
	require.NoError(t, os.WriteFile(csvPath, []byte(u1CSV), 0o600))
	require.NoError(t, os.WriteFile(yamlPath, []byte(u1YAML), 0o600))

	var buf bytes.Buffer
	log := logging.NewJSONLogger(&buf, logging.InfoLevel)

	fromCSV, err := network.Load(csvPath, network.WithLogger(log))
	require.NoError(t, err)
	fromYAML, err := network.Load(yamlPath)
	require.NoError(t, err)

	assert.Equal(t, fromCSV.Stats(), fromYAML.Stats())
	assert.Contains(t, buf.String(), `"msg":"network loaded"`)
	assert.Contains(t, buf.String(), `"stations":5`)
}

func TestLoad_ErrorsNameTheFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, os.WriteFile(path, []byte("U1,A,1,B\nU1,B,oops,C\n"), 0o600))

	_, err := network.Load(path)
	require.Error(t, err)
	assert.Equal(t, path+`:2: weight "oops" is not an integer`, err.Error())

	_, err = network.Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadReader_FormatOverride(t *testing.T) {
	g, err := network.LoadReader(strings.NewReader(u1YAML), network.WithFormat(network.FormatYAML))
	require.NoError(t, err)
	assert.True(t, g.HasStation("Kagraner Platz"))

	_, err = network.LoadReader(strings.NewReader("# nothing\n"))
	assert.ErrorIs(t, err, network.ErrMalformedRecord)
}
