package parse

// chain returns n followed by every node linked to it through Next. Only the
// last node of a chain can have children in List.
func chain(n *Node) []*Node {
	var out []*Node
	for cur := n; cur != nil; cur = cur.Next {
		out = append(out, cur)
	}
	return out
}

// TextsPreorder collects Tok values for KText nodes in preorder.
func TextsPreorder(nodes []*Node) []string {
	var out []string
	for _, n := range nodes {
		if n == nil {
			continue
		}
		for _, c := range chain(n) {
			if c.Kind == KText {
				out = append(out, c.Tok)
			}
			out = append(out, TextsPreorder(c.List)...)
		}
	}
	return out
}

// KindsPreorder collects node kinds in preorder.
func KindsPreorder(nodes []*Node) []Kind {
	var out []Kind
	for _, n := range nodes {
		if n == nil {
			continue
		}
		for _, c := range chain(n) {
			out = append(out, c.Kind)
			out = append(out, KindsPreorder(c.List)...)
		}
	}
	return out
}

// FindFirstKind returns the first node with the given kind in preorder.
func FindFirstKind(nodes []*Node, k Kind) *Node {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		for _, c := range chain(n) {
			if c.Kind == k {
				return c
			}
			if found := FindFirstKind(c.List, k); found != nil {
				return found
			}
		}
	}
	return nil
}

// ContainsRange reports whether any range node is left in the tree.
func ContainsRange(nodes []*Node) bool {
	return FindFirstKind(nodes, KRange) != nil
}

// Depth returns the deepest group nesting in the tree. A range counts as a
// group.
func Depth(nodes []*Node) int {
	deepest := 0
	for _, n := range nodes {
		if n == nil {
			continue
		}
		for _, c := range chain(n) {
			d := Depth(c.List)
			if c.Kind == KGroup || c.Kind == KRange {
				d++
			}
			if d > deepest {
				deepest = d
			}
		}
	}
	return deepest
}
