// SPDX-License-Identifier: MIT

package adjacency

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseFormat maps a user-supplied format name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// Decode reads one YAML or JSON document describing a graph:
//
//	1: [2, 3]
//	2: [1, 3]
//	3: [1, 2]
//
// Keys and neighbours are scalars and are kept as their literal text, so 1 and
// "1" name the same node. A null value (`4:` or `4: null`) declares a node with
// no neighbours. Node order follows the document; repeated keys merge their
// lists. Neighbours are stored exactly as written: no mirror arcs are added
// and dangling references stay dangling. An empty document yields an empty graph.
func Decode(r io.Reader) (*Ordered[string], error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewOrdered[string](), nil
		}

		return nil, fmt.Errorf("Decode: %w", err)
	}

	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return NewOrdered[string](), nil
		}
		root = resolve(root.Content[0])
	}
	if isNull(root) {
		return NewOrdered[string](), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("Decode: line %d: %w", root.Line, ErrNotMapping)
	}

	out := NewOrdered[string]()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := resolve(root.Content[i]), resolve(root.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("Decode: line %d: non-scalar key: %w", key.Line, ErrNotMapping)
		}
		if key.Value == "" {
			return nil, fmt.Errorf("Decode: line %d: %w", key.Line, ErrEmptyNode)
		}
		out.AddNode(key.Value)

		if isNull(val) {
			continue
		}
		if val.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("Decode: node %q (line %d): %w", key.Value, val.Line, ErrBadNeighbors)
		}
		for _, item := range val.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode || isNull(item) {
				return nil, fmt.Errorf("Decode: node %q (line %d): %w", key.Value, item.Line, ErrBadNeighbors)
			}
			if item.Value == "" {
				return nil, fmt.Errorf("Decode: node %q (line %d): %w", key.Value, item.Line, ErrEmptyNode)
			}
			out.Graph.AddArc(key.Value, item.Value)
		}
	}

	return out, nil
}

// Encode writes o to w in the requested format, keys in o.Order.
// YAML output uses flow sequences ("a: [b, c]"); JSON output is indented by
// two spaces. Nodes without neighbours are written with an empty list.
func Encode(w io.Writer, o *Ordered[string], f Format) error {
	switch f {
	case FormatYAML:
		return encodeYAML(w, o)
	case FormatJSON:
		return encodeJSON(w, o)
	default:
		return fmt.Errorf("Encode(%q): %w", f, ErrUnknownFormat)
	}
}

func encodeYAML(w io.Writer, o *Ordered[string]) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range o.Order {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range o.Graph.Neighbors(k) {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: v})
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, seq)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("Encode: yaml: %w", err)
	}

	return enc.Close()
}

func encodeJSON(w io.Writer, o *Ordered[string]) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.Order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return fmt.Errorf("Encode: json key %q: %w", k, err)
		}
		nbs := o.Graph.Neighbors(k)
		if nbs == nil {
			nbs = []string{}
		}
		val, err := json.Marshal(nbs)
		if err != nil {
			return fmt.Errorf("Encode: json neighbours of %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("Encode: json: %w", err)
	}
	pretty.WriteByte('\n')
	_, err := w.Write(pretty.Bytes())

	return err
}

// resolve follows alias nodes to their anchor.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
