// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"sort"
	"strings"
)

// Params carries the size parameters a named shape may need.
type Params struct {
	N    int     // vertex count (cycle, path, star, wheel, complete, tree, sparse, isolated)
	Rows int     // grid rows
	Cols int     // grid columns
	P    float64 // edge probability (sparse)
}

var shapes = map[string]func(Params) Constructor{
	"cycle":    func(p Params) Constructor { return Cycle(p.N) },
	"path":     func(p Params) Constructor { return Path(p.N) },
	"star":     func(p Params) Constructor { return Star(p.N) },
	"wheel":    func(p Params) Constructor { return Wheel(p.N) },
	"complete": func(p Params) Constructor { return Complete(p.N) },
	"grid":     func(p Params) Constructor { return Grid(p.Rows, p.Cols) },
	"tree":     func(p Params) Constructor { return RandomTree(p.N) },
	"sparse":   func(p Params) Constructor { return RandomSparse(p.N, p.P) },
	"isolated": func(p Params) Constructor { return Isolated(p.N) },
	"loop":     func(p Params) Constructor { return Loop(0) },
}

// ShapeNames lists the names accepted by ByName, sorted.
func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ByName resolves a shape name (case-insensitive) to its Constructor.
func ByName(name string, p Params) (Constructor, error) {
	mk, ok := shapes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): known shapes are %s: %w",
			name, strings.Join(ShapeNames(), ", "), ErrUnknownShape)
	}

	return mk(p), nil
}

// VertexCount returns how many vertex indices the named shape uses, or 0 for
// unknown names. Callers use it to check an ID scheme's range up front.
func (p Params) VertexCount(name string) int {
	switch strings.ToLower(name) {
	case "grid":
		return p.Rows * p.Cols
	case "loop":
		return 1
	case "":
		return 0
	default:
		if _, ok := shapes[strings.ToLower(name)]; !ok {
			return 0
		}
		return p.N
	}
}
