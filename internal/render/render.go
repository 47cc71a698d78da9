package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"chord/internal/parse"
)

// Output formats.
const (
	FormatTree  = "tree"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatShort = "short"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatTree, FormatJSON, FormatYAML, FormatShort}
}

// IsFormat reports whether name is a supported output format.
func IsFormat(name string) bool {
	for _, f := range Formats() {
		if f == name {
			return true
		}
	}
	return false
}

// Node is the document shape used by the JSON and YAML encodings. Next lists
// the whole adjacency chain after the node in order, so "a b c" is one text
// node with two entries in Next rather than three nested objects.
type Node struct {
	Kind  string  `json:"kind" yaml:"kind"`
	Text  string  `json:"text,omitempty" yaml:"text,omitempty"`
	From  string  `json:"from,omitempty" yaml:"from,omitempty"`
	To    string  `json:"to,omitempty" yaml:"to,omitempty"`
	Next  []*Node `json:"next,omitempty" yaml:"next,omitempty"`
	Items []*Node `json:"items,omitempty" yaml:"items,omitempty"`
}

// Document converts a tree to its encodable form.
func Document(nodes []*parse.Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		out = append(out, document(n))
	}
	return out
}

func document(n *parse.Node) *Node {
	d := single(n)
	for cur := n.Next; cur != nil; cur = cur.Next {
		d.Next = append(d.Next, single(cur))
	}
	return d
}

// single converts n without following Next.
func single(n *parse.Node) *Node {
	d := &Node{Kind: strings.ToLower(n.Kind.String())}
	switch n.Kind {
	case parse.KText:
		d.Text = n.Tok
	case parse.KRange:
		d.From = string(n.Lo)
		d.To = string(n.Hi)
	}
	if len(n.List) > 0 {
		d.Items = Document(n.List)
	}
	return d
}

// JSON encodes the tree as an indented JSON array.
func JSON(nodes []*parse.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Document(nodes)); err != nil {
		return nil, fmt.Errorf("render: json: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML encodes the tree as a YAML sequence.
func YAML(nodes []*parse.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Document(nodes)); err != nil {
		return nil, fmt.Errorf("render: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("render: yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Render writes nodes to w in the named format.
func Render(w io.Writer, format string, nodes []*parse.Node, opts Options) error {
	var out []byte
	switch format {
	case FormatTree:
		out = []byte(Tree(nodes, opts))
	case FormatShort:
		out = []byte(parse.Format(nodes) + "\n")
	case FormatJSON:
		b, err := JSON(nodes)
		if err != nil {
			return err
		}
		out = b
	case FormatYAML:
		b, err := YAML(nodes)
		if err != nil {
			return err
		}
		out = b
	default:
		return fmt.Errorf("render: unknown format %q", format)
	}
	_, err := w.Write(out)
	return err
}
