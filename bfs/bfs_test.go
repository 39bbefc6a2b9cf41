package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/bfs"
	"github.com/katalvlaran/metroroute/core"
)

// square builds A–B–C–D–A on alternating lines.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddConnection("A", "B", 1, "U1"))
	require.NoError(t, g.AddConnection("B", "C", 1, "U2"))
	require.NoError(t, g.AddConnection("C", "D", 1, "U1"))
	require.NoError(t, g.AddConnection("D", "A", 1, "U2"))

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	require.NoError(t, g.AddStation("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleStation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddStation("A"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Empty(t, res.Parent)
}

func TestBFS_CycleDepths(t *testing.T) {
	res, err := bfs.BFS(square(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

func TestBFS_AvoidLines(t *testing.T) {
	res, err := bfs.BFS(square(t), "A", bfs.WithAvoidLines("U2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.False(t, res.Reached("C"))

	_, err = res.PathTo("C")
	assert.Error(t, err)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddConnection("A", "B", 1, "U1"))
	require.NoError(t, g.AddConnection("B", "C", 1, "U1"))
	require.NoError(t, g.AddConnection("C", "D", 1, "U1"))

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(square(t), "A", bfs.WithOnVisit(func(station string, _ int) error {
		if station == "D" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(square(t), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddConnection("Westbahnhof", "Zieglergasse", 2, "U3"))
	require.NoError(t, g.AddConnection("Zieglergasse", "Neubaugasse", 1, "U3"))
	require.NoError(t, g.AddConnection("Alpha", "Beta", 1, "X"))
	require.NoError(t, g.AddStation("Island"))

	groups, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Neubaugasse", "Westbahnhof", "Zieglergasse"},
		{"Alpha", "Beta"},
		{"Island"},
	}, groups)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
