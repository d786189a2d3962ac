package dfs_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/undicycle/dfs"
)

// TestMinimalRotation checks Booth's algorithm on repeats, ties and edge sizes.
func TestMinimalRotation(t *testing.T) {
	cases := []struct {
		in, want []string
	}{
		{[]string{"b", "a"}, []string{"a", "b"}},
		{[]string{"c", "a", "b"}, []string{"a", "b", "c"}},
		{[]string{"b", "a", "b", "a", "a"}, []string{"a", "a", "b", "a", "b"}},
		{[]string{"a", "a", "a"}, []string{"a", "a", "a"}},
		{[]string{"x"}, []string{"x"}},
		{[]string{}, []string{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, dfs.MinimalRotation(tc.in, cmp.Compare[string]), "input %v", tc.in)
	}
}

// TestMinimalRotation_NoAliasing verifies the input backing array is not written.
func TestMinimalRotation_NoAliasing(t *testing.T) {
	backing := make([]int, 3, 10)
	copy(backing, []int{3, 1, 2})
	tail := backing[:10]
	tail[3] = 99

	assert.Equal(t, []int{1, 2, 3}, dfs.MinimalRotation(backing, cmp.Compare[int]))
	assert.Equal(t, 99, tail[3])
}

// TestReverseAndCompare covers the slice helpers.
func TestReverseAndCompare(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, dfs.Reverse([]int{1, 2, 3}))
	assert.Equal(t, []int{}, dfs.Reverse([]int{}))

	assert.Equal(t, -1, dfs.Compare([]int{1, 2}, []int{1, 3}, cmp.Compare[int]))
	assert.Equal(t, 0, dfs.Compare([]int{1, 2}, []int{1, 2}, cmp.Compare[int]))
	assert.Equal(t, 1, dfs.Compare([]int{2, 0}, []int{1, 9}, cmp.Compare[int]))
}
