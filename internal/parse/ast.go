package parse

import "fmt"

// Kind represents the tree node kind.
type Kind int

const (
	KText Kind = iota
	KGroup
	KOption
	KRange
)

func (k Kind) String() string {
	switch k {
	case KText:
		return "TEXT"
	case KGroup:
		return "GROUP"
	case KOption:
		return "OPTION"
	case KRange:
		return "RANGE"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is a compiled shorthand node.
//
// KText uses Tok and, for adjacency, Next. KGroup holds its options in List;
// KOption holds its term sequence in List. KRange uses Lo and Hi and only
// appears before desugaring.
type Node struct {
	Kind   Kind
	Tok    string
	Next   *Node
	List   []*Node
	Lo, Hi rune
}

// T constructs a text node, optionally followed by an adjacent node.
func T(s string, next *Node) *Node {
	return &Node{Kind: KText, Tok: s, Next: next}
}

// G constructs a group node from its options.
func G(opts ...*Node) *Node {
	return &Node{Kind: KGroup, List: opts}
}

// O constructs an option node from its term sequence.
func O(seq ...*Node) *Node {
	return &Node{Kind: KOption, List: seq}
}

// R constructs a range node.
func R(lo, hi rune) *Node {
	return &Node{Kind: KRange, Lo: lo, Hi: hi}
}

// Equal reports whether two trees have the same shape and content.
func (n *Node) Equal(o *Node) bool {
	for n != nil && o != nil {
		if n.Kind != o.Kind || n.Tok != o.Tok || n.Lo != o.Lo || n.Hi != o.Hi {
			return false
		}
		if !EqualNodes(n.List, o.List) {
			return false
		}
		n, o = n.Next, o.Next
	}
	return n == nil && o == nil
}

// EqualNodes compares two node sequences element-wise.
func EqualNodes(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
