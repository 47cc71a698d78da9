package parse

import (
	"fmt"
	"strings"
)

// Format renders a node sequence as canonical shorthand. Compiling the
// result without desugaring yields the same tree.
func Format(nodes []*Node) string {
	return formatTerms(nodes)
}

func formatTerms(nodes []*Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		parts = append(parts, formatNode(n))
	}
	return strings.Join(parts, " + ")
}

func formatNode(n *Node) string {
	switch n.Kind {
	case KText:
		var b strings.Builder
		for cur := n; cur != nil; cur = cur.Next {
			if cur.Kind != KText {
				b.WriteString(formatNode(cur))
				break
			}
			if cur != n {
				b.WriteByte(' ')
			}
			b.WriteString(cur.Tok)
		}
		return b.String()
	case KGroup:
		opts := make([]string, 0, len(n.List))
		for _, o := range n.List {
			opts = append(opts, formatNode(o))
		}
		return "{" + strings.Join(opts, ", ") + "}"
	case KOption:
		return formatTerms(n.List)
	case KRange:
		return fmt.Sprintf("{%c-%c}", n.Lo, n.Hi)
	default:
		return ""
	}
}
