package parse

import "unicode/utf8"

// DefaultMaxDepth is the group nesting limit used when Builder.MaxDepth is
// not set.
const DefaultMaxDepth = 64

// DefaultMaxRange is the largest number of characters a range may expand to
// when Builder.MaxRange is not set.
const DefaultMaxRange = 1 << 12

// Builder turns token sequences into trees.
type Builder struct {
	// MaxDepth bounds group nesting; values <= 0 select DefaultMaxDepth.
	MaxDepth int
	// MaxRange bounds the characters in one range; values <= 0 select
	// DefaultMaxRange.
	MaxRange int
}

// Build compiles toks with the default nesting limit.
func Build(toks []Token) ([]*Node, error) {
	return (&Builder{}).Build(toks)
}

// Build compiles toks into one node per top-level "+" term. An empty token
// sequence yields no nodes.
func (b *Builder) Build(toks []Token) ([]*Node, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	return b.terms(toks, 0)
}

func (b *Builder) limit() int {
	if b == nil || b.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return b.MaxDepth
}

func (b *Builder) rangeLimit() int {
	if b == nil || b.MaxRange <= 0 {
		return DefaultMaxRange
	}
	return b.MaxRange
}

// terms splits toks on depth-0 "+" and builds each term.
func (b *Builder) terms(toks []Token, depth int) ([]*Node, error) {
	parts := SplitAt(toks, TPlus)
	out := make([]*Node, 0, len(parts))
	for _, part := range parts {
		if len(part) == 0 {
			return nil, syntaxErr(ErrEmptyTerm, toks, "missing term")
		}
		n, err := b.term(part, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// term builds one syntactic unit. Leading text runs are chained through Next;
// a group must close the term.
func (b *Builder) term(toks []Token, depth int) (*Node, error) {
	if len(toks) == 0 {
		return nil, syntaxErr(ErrEmptyTerm, nil, "")
	}
	var head, tail *Node
	link := func(n *Node) {
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}
	for len(toks) > 0 {
		t := toks[0]
		switch t.Kind {
		case TText:
			link(T(t.Text, nil))
			toks = toks[1:]
		case TGroupOpen:
			end := matchClose(toks)
			if end < 0 {
				return nil, syntaxErr(ErrUnmatchedGroupOpen, toks, "")
			}
			if end != len(toks)-1 {
				return nil, syntaxErr(ErrTrailingTokens, toks, "%q", JoinTokens(toks[end+1:]))
			}
			if depth >= b.limit() {
				return nil, syntaxErr(ErrTooDeep, nil, "limit is %d", b.limit())
			}
			g, err := b.group(toks[1:end], toks, depth+1)
			if err != nil {
				return nil, err
			}
			link(g)
			toks = nil
		default:
			return nil, syntaxErr(ErrUnexpectedToken, toks, "%q", t.String())
		}
	}
	return head, nil
}

// group builds the interior of a brace pair. whole is the full "{...}" slice,
// used for error context.
func (b *Builder) group(inner, whole []Token, depth int) (*Node, error) {
	alts := SplitAt(inner, TComma)
	if len(alts) == 1 && isRangeShape(alts[0]) {
		return b.rangeNode(alts[0], whole)
	}
	opts := make([]*Node, 0, len(alts))
	for _, alt := range alts {
		if len(alt) == 0 {
			return nil, syntaxErr(ErrEmptyTerm, whole, "empty option")
		}
		seq, err := b.terms(alt, depth)
		if err != nil {
			return nil, err
		}
		opts = append(opts, O(seq...))
	}
	return G(opts...), nil
}

func isRangeShape(toks []Token) bool {
	return len(toks) == 3 &&
		toks[0].Kind == TText &&
		toks[1].Kind == TRangeSep &&
		toks[2].Kind == TText
}

func (b *Builder) rangeNode(toks, whole []Token) (*Node, error) {
	from, to := toks[0].Text, toks[2].Text
	if utf8.RuneCountInString(from) != 1 || utf8.RuneCountInString(to) != 1 {
		return nil, syntaxErr(ErrInvalidRangeEndpoint, whole, "range endpoints must be single characters")
	}
	lo, _ := utf8.DecodeRuneInString(from)
	hi, _ := utf8.DecodeRuneInString(to)
	if !utf8.ValidRune(lo) || !utf8.ValidRune(hi) {
		return nil, syntaxErr(ErrInvalidRangeEndpoint, whole, "range endpoints must be valid characters")
	}
	if lo > hi {
		return nil, syntaxErr(ErrReversedRange, whole, "%q > %q", lo, hi)
	}
	if n := RangeSize(lo, hi); n > b.rangeLimit() {
		return nil, syntaxErr(ErrRangeTooLarge, whole, "%d characters, limit is %d", n, b.rangeLimit())
	}
	return R(lo, hi), nil
}
