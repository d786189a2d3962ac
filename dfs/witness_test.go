package dfs_test

import (
	"cmp"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/undicycle/adjacency"
	"github.com/katalvlaran/undicycle/dfs"
)

// TestValidate covers every violated property and the valid shapes.
func TestValidate(t *testing.T) {
	g := adjacency.Graph[int]{
		1: {2, 3, 4},
		2: {1, 3},
		3: {1, 2},
		4: {1, 4},
	}

	cases := []struct {
		name string
		c    dfs.Cycle[int]
		want error
	}{
		{"triangle", dfs.Cycle[int]{1, 2, 3, 1}, nil},
		{"triangle reversed", dfs.Cycle[int]{3, 2, 1, 3}, nil},
		{"self-loop", dfs.Cycle[int]{4, 4}, nil},
		{"empty", nil, dfs.ErrCycleTooShort},
		{"single", dfs.Cycle[int]{1}, dfs.ErrCycleTooShort},
		{"edge there and back", dfs.Cycle[int]{1, 2, 1}, dfs.ErrCycleTooShort},
		{"open", dfs.Cycle[int]{1, 2, 3, 2}, dfs.ErrCycleNotClosed},
		{"repeat", dfs.Cycle[int]{1, 2, 1, 3, 1}, dfs.ErrCycleRepeatsNode},
		{"missing edge", dfs.Cycle[int]{1, 2, 4, 1}, dfs.ErrCycleNotAdjacent},
		{"missing loop", dfs.Cycle[int]{2, 2}, dfs.ErrCycleNotAdjacent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate(g)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

// TestValidate_EitherDirection verifies one stored direction is enough.
func TestValidate_EitherDirection(t *testing.T) {
	g := adjacency.Graph[string]{"a": {"b"}, "b": {"c"}, "c": {"a"}}
	assert.NoError(t, dfs.Cycle[string]{"a", "c", "b", "a"}.Validate(g))
}

// TestCycle_Accessors covers Len, Nodes and String.
func TestCycle_Accessors(t *testing.T) {
	c := dfs.Cycle[int]{1, 2, 3, 1}
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []int{1, 2, 3}, c.Nodes())
	assert.Equal(t, "1 -> 2 -> 3 -> 1", c.String())

	assert.Equal(t, 1, dfs.Cycle[int]{7, 7}.Len())
	assert.Equal(t, 0, dfs.Cycle[int]{7}.Len())
	assert.Nil(t, dfs.Cycle[int](nil).Nodes())
	assert.Equal(t, "", dfs.Cycle[int](nil).String())
}

// TestCanonical verifies rotations and reversals collapse to one representative.
func TestCanonical(t *testing.T) {
	want := dfs.Cycle[string]{"A", "B", "C", "D", "A"}
	for _, c := range []dfs.Cycle[string]{
		{"A", "B", "C", "D", "A"},
		{"C", "D", "A", "B", "C"},
		{"D", "C", "B", "A", "D"},
		{"B", "A", "D", "C", "B"},
	} {
		assert.Equal(t, want, dfs.Canonical(c, cmp.Compare[string]), "input %v", c)
	}

	in := dfs.Cycle[int]{3, 1, 2, 3}
	out := dfs.Canonical(in, cmp.Compare[int])
	assert.Equal(t, dfs.Cycle[int]{1, 2, 3, 1}, out)
	assert.Equal(t, dfs.Cycle[int]{3, 1, 2, 3}, in) // input untouched

	assert.Equal(t, dfs.Cycle[int]{5, 5}, dfs.Canonical(dfs.Cycle[int]{5, 5}, cmp.Compare[int]))
	assert.Equal(t, dfs.Cycle[int]{1, 2}, dfs.Canonical(dfs.Cycle[int]{1, 2}, cmp.Compare[int]))
}
