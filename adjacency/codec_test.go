package adjacency_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/undicycle/adjacency"
)

// TestDecode_YAMLKeepsOrder verifies keys keep document order and integers are read as text.
func TestDecode_YAMLKeepsOrder(t *testing.T) {
	src := `
3: [1, 2]
1: [2, 3]
2:
  - 1
  - 3
4:
`
	o, err := adjacency.Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"3", "1", "2", "4"}, o.Order)
	assert.Equal(t, []string{"1", "2"}, o.Graph["3"])
	assert.Equal(t, []string{"1", "3"}, o.Graph["2"])
	assert.True(t, o.Graph.HasNode("4"))
	assert.Empty(t, o.Graph["4"])
}

// TestDecode_JSON verifies JSON documents decode through the same path.
func TestDecode_JSON(t *testing.T) {
	o, err := adjacency.Decode(strings.NewReader(`{"b": ["a"], "a": ["b", "a"], "c": []}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, o.Order)
	assert.Equal(t, []string{"b", "a"}, o.Graph["a"])
	assert.Empty(t, o.Graph["c"])
}

// TestDecode_EmptyAndNull verifies empty input and a null document both give an empty graph.
func TestDecode_EmptyAndNull(t *testing.T) {
	for _, src := range []string{"", "   \n", "null\n", "{}"} {
		o, err := adjacency.Decode(strings.NewReader(src))
		require.NoError(t, err, "input %q", src)
		assert.Equal(t, 0, o.Len(), "input %q", src)
		assert.Equal(t, 0, o.Graph.Len(), "input %q", src)
	}
}

// TestDecode_KeepsDanglingAndAsymmetry verifies nothing is mirrored or invented on decode.
func TestDecode_KeepsDanglingAndAsymmetry(t *testing.T) {
	o, err := adjacency.Decode(strings.NewReader("a: [b, ghost]\nb: []\n"))
	require.NoError(t, err)

	assert.False(t, o.Graph.HasNode("ghost"))
	assert.Equal(t, []string{"a", "b"}, o.Order)
	assert.Len(t, adjacency.Asymmetries(o.Graph), 2)
}

// TestDecode_Errors verifies malformed documents surface the matching sentinel.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"sequence root", "[1, 2]", adjacency.ErrNotMapping},
		{"scalar root", "hello", adjacency.ErrNotMapping},
		{"scalar neighbours", "a: b", adjacency.ErrBadNeighbors},
		{"nested neighbours", "a: [[b]]", adjacency.ErrBadNeighbors},
		{"mapping neighbours", "a: {b: c}", adjacency.ErrBadNeighbors},
		{"empty key", `"": [a]`, adjacency.ErrEmptyNode},
		{"empty neighbour", `a: [""]`, adjacency.ErrEmptyNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := adjacency.Decode(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	_, err := adjacency.Decode(strings.NewReader("a: [b\n"))
	assert.Error(t, err) // syntax error from the YAML parser
}

// TestEncode_RoundTrip verifies both formats decode back to the same ordered graph.
func TestEncode_RoundTrip(t *testing.T) {
	o := adjacency.NewOrdered[string]()
	o.AddEdge("n1", "n2")
	o.AddEdge("n2", "n3")
	o.AddEdge("n3", "n3")
	o.AddNode("solo")

	for _, f := range []adjacency.Format{adjacency.FormatYAML, adjacency.FormatJSON} {
		var buf bytes.Buffer
		require.NoError(t, adjacency.Encode(&buf, o, f))

		back, err := adjacency.Decode(&buf)
		require.NoError(t, err, "format %s", f)
		assert.Equal(t, o.Order, back.Order, "format %s", f)
		for _, k := range o.Order {
			assert.Equal(t, len(o.Graph[k]), len(back.Graph[k]), "format %s node %s", f, k)
			if len(o.Graph[k]) > 0 {
				assert.Equal(t, o.Graph[k], back.Graph[k], "format %s node %s", f, k)
			}
		}
	}
}

// TestEncode_YAMLShape pins the flow-sequence layout.
func TestEncode_YAMLShape(t *testing.T) {
	o := adjacency.NewOrdered[string]()
	o.AddEdge("a", "b")
	o.AddNode("c")

	var buf bytes.Buffer
	require.NoError(t, adjacency.Encode(&buf, o, adjacency.FormatYAML))
	assert.Equal(t, "a: [b]\nb: [a]\nc: []\n", buf.String())
}

// TestEncode_UnknownFormat verifies unsupported formats are rejected.
func TestEncode_UnknownFormat(t *testing.T) {
	err := adjacency.Encode(&bytes.Buffer{}, adjacency.NewOrdered[string](), "toml")
	assert.True(t, errors.Is(err, adjacency.ErrUnknownFormat))

	f, err := adjacency.ParseFormat(" YML ")
	require.NoError(t, err)
	assert.Equal(t, adjacency.FormatYAML, f)

	_, err = adjacency.ParseFormat("xml")
	assert.True(t, errors.Is(err, adjacency.ErrUnknownFormat))
}
