package parse

import (
	"io"
	"strings"
)

// Compile runs the full pipeline on input: scan, build, desugar.
func Compile(input string) ([]*Node, error) {
	return (&Builder{}).Compile(input)
}

// Compile runs the full pipeline with the builder's nesting limit.
func (b *Builder) Compile(input string) ([]*Node, error) {
	return b.Parse(strings.NewReader(input))
}

// Parse reads all of rd as a single shorthand expression and compiles it.
func (b *Builder) Parse(rd io.Reader) ([]*Node, error) {
	toks, err := ScanReader(rd)
	if err != nil {
		return nil, err
	}
	nodes, err := b.Build(toks)
	if err != nil {
		return nil, err
	}
	return Desugar(nodes), nil
}
