package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chord/internal/parse"
)

var (
	kindStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	linkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Options controls the tree dump.
type Options struct {
	Color bool
}

func (o Options) paint(s lipgloss.Style, text string) string {
	if !o.Color {
		return text
	}
	return s.Render(text)
}

// Tree returns a readable, indented representation of a node sequence.
func Tree(nodes []*parse.Node, opts Options) string {
	var b strings.Builder
	for _, n := range nodes {
		dumpNode(&b, n, 0, opts)
	}
	return b.String()
}

// dumpNode writes n and its adjacency chain. Every successor sits one level
// below the head, so long chains do not drift right.
func dumpNode(b *strings.Builder, n *parse.Node, indent int, opts Options) {
	if n == nil {
		return
	}
	pad := strings.Repeat(" ", indent)
	dumpOne(b, n, pad, indent, opts)
	for cur := n.Next; cur != nil; cur = cur.Next {
		fmt.Fprintf(b, "%s  %s\n", pad, opts.paint(linkStyle, "NEXT->"))
		dumpOne(b, cur, pad+"    ", indent+4, opts)
	}
}

func dumpOne(b *strings.Builder, n *parse.Node, pad string, indent int, opts Options) {
	fmt.Fprintf(b, "%s- %s\n", pad, nodeLine(n, opts))
	for _, child := range n.List {
		dumpNode(b, child, indent+4, opts)
	}
}

func nodeLine(n *parse.Node, opts Options) string {
	label := opts.paint(kindStyle, n.Kind.String())
	switch n.Kind {
	case parse.KText:
		return label + " " + opts.paint(textStyle, fmt.Sprintf("%q", n.Tok))
	case parse.KRange:
		return label + " " + opts.paint(textStyle, fmt.Sprintf("%c-%c", n.Lo, n.Hi))
	case parse.KGroup:
		return fmt.Sprintf("%s (%d)", label, len(n.List))
	default:
		return label
	}
}

// Tokens returns one line per scanned token.
func Tokens(toks []parse.Token) string {
	var b strings.Builder
	for _, t := range toks {
		if t.Kind == parse.TText {
			fmt.Fprintf(&b, "%s %q\n", t.Kind, t.Text)
			continue
		}
		fmt.Fprintf(&b, "%s\n", t.Kind)
	}
	return b.String()
}
