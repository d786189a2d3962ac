package adjacency_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/undicycle/adjacency"
)

// TestAsymmetries_Symmetric verifies a mirrored graph (with a loop) reports nothing.
func TestAsymmetries_Symmetric(t *testing.T) {
	g := adjacency.Graph[int]{1: {2, 3}, 2: {1, 3}, 3: {1, 2, 3}}

	assert.Empty(t, adjacency.Asymmetries(g))
	assert.True(t, adjacency.IsSymmetric(g))
	assert.NoError(t, adjacency.RequireSymmetric(g))
}

// TestAsymmetries_OneWayAndDangling verifies unmatched arcs, including dangling ones, are listed once.
func TestAsymmetries_OneWayAndDangling(t *testing.T) {
	g := adjacency.Graph[string]{
		"a": {"b", "b", "ghost"},
		"b": nil,
	}

	bad := adjacency.Asymmetries(g)
	assert.ElementsMatch(t,
		[]adjacency.Arc[string]{{From: "a", To: "b"}, {From: "a", To: "ghost"}},
		bad,
	)
	assert.False(t, adjacency.IsSymmetric(g))

	err := adjacency.RequireSymmetric(g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, adjacency.ErrAsymmetric))
}

// TestSymmetrize_AddsMirrors verifies missing mirrors are appended without touching the input.
func TestSymmetrize_AddsMirrors(t *testing.T) {
	g := adjacency.Graph[int]{1: {2}, 2: nil, 3: {1}}
	s := adjacency.Symmetrize(g)

	assert.True(t, adjacency.IsSymmetric(s))
	assert.ElementsMatch(t, []int{2, 3}, s[1])
	assert.Equal(t, []int{1}, s[2])
	assert.Nil(t, g[2]) // input untouched
}

// TestOrdered_Symmetrize verifies dangling neighbours are promoted in first-mirror order.
func TestOrdered_Symmetrize(t *testing.T) {
	o := adjacency.NewOrdered[string]()
	o.AddNode("a")
	o.Graph.AddArc("a", "x")
	o.Graph.AddArc("a", "b")
	o.AddNode("b")

	s := o.Symmetrize()

	assert.Equal(t, []string{"a", "b", "x"}, s.Order)
	assert.Equal(t, []string{"a"}, s.Graph["x"])
	assert.Equal(t, []string{"a"}, s.Graph["b"])
	assert.True(t, adjacency.IsSymmetric(s.Graph))
	assert.False(t, o.Graph.HasNode("x"))
}
