package parse

// Desugar returns a copy of nodes with every range replaced by the
// equivalent group: {a-c} becomes {a, b, c}. The input is not modified and
// no node is shared between input and output.
func Desugar(nodes []*Node) []*Node {
	if nodes == nil {
		return nil
	}
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = desugarNode(n)
	}
	return out
}

func desugarNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KRange:
		return expandRange(n.Lo, n.Hi)
	case KGroup:
		return G(Desugar(n.List)...)
	case KOption:
		return O(Desugar(n.List)...)
	case KText:
		// Adjacency chains can be long; copy them without recursing.
		head := T(n.Tok, nil)
		tail := head
		for cur := n.Next; cur != nil; cur = cur.Next {
			if cur.Kind != KText {
				tail.Next = desugarNode(cur)
				break
			}
			tail.Next = T(cur.Tok, nil)
			tail = tail.Next
		}
		return head
	default:
		cp := *n
		return &cp
	}
}

// Surrogate halves are not characters and are skipped inside ranges.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// RangeSize returns how many characters lo..hi expands to.
func RangeSize(lo, hi rune) int {
	if hi < lo {
		return 0
	}
	n := int(hi-lo) + 1
	if lo <= surrogateMax && hi >= surrogateMin {
		n -= int(min(hi, surrogateMax)-max(lo, surrogateMin)) + 1
	}
	return n
}

func expandRange(lo, hi rune) *Node {
	opts := make([]*Node, 0, RangeSize(lo, hi))
	for r := lo; r <= hi; r++ {
		if r >= surrogateMin && r <= surrogateMax {
			r = surrogateMax
			continue
		}
		opts = append(opts, O(T(string(r), nil)))
	}
	return G(opts...)
}
