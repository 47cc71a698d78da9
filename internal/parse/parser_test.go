package parse

import (
	"errors"
	"strings"
	"testing"
)

func mustBuild(t *testing.T, input string) []*Node {
	t.Helper()
	nodes, err := Build(Scan(input))
	if err != nil {
		t.Fatalf("Build(%q) returned error: %v", input, err)
	}
	return nodes
}

func assertTree(t *testing.T, input string, got, want []*Node) {
	t.Helper()
	if !EqualNodes(got, want) {
		t.Fatalf("tree mismatch for %q:\ngot  %s\nwant %s", input, Format(got), Format(want))
	}
}

func TestBuildSingleCharacters(t *testing.T) {
	for _, c := range []string{"a", "Z", "1", "@", "ä"} {
		nodes := mustBuild(t, c)
		assertTree(t, c, nodes, []*Node{T(c, nil)})
	}
}

func TestBuildEmptyInput(t *testing.T) {
	nodes, err := Build(Scan(""))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(nodes) != 0 {
		t.Fatalf("expected no nodes, got %v", nodes)
	}
}

func TestBuildAdjacencyVsPlus(t *testing.T) {
	assertTree(t, "x y", mustBuild(t, "x y"), []*Node{T("x", T("y", nil))})
	assertTree(t, "x + y", mustBuild(t, "x + y"), []*Node{T("x", nil), T("y", nil)})
}

func TestBuildAdjacencyChain(t *testing.T) {
	want := []*Node{T("a", T("b", T("c", G(O(T("d", nil)), O(T("e", nil))))))}
	assertTree(t, "a b c{d,e}", mustBuild(t, "a b c{d,e}"), want)
}

func TestBuildDepthRespectingSplit(t *testing.T) {
	nodes := mustBuild(t, "{a+x,b+y+z,c}")
	if len(nodes) != 1 || nodes[0].Kind != KGroup {
		t.Fatalf("expected a single group, got %s", Format(nodes))
	}
	opts := nodes[0].List
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	for i, want := range []int{2, 3, 1} {
		if opts[i].Kind != KOption {
			t.Fatalf("option %d has kind %v", i, opts[i].Kind)
		}
		if len(opts[i].List) != want {
			t.Fatalf("option %d: got %d terms, want %d", i, len(opts[i].List), want)
		}
	}
}

func TestBuildRange(t *testing.T) {
	assertTree(t, "{0-9}", mustBuild(t, "{0-9}"), []*Node{R('0', '9')})
	assertTree(t, "mouse{0-3}", mustBuild(t, "mouse{0-3}"), []*Node{T("mouse", R('0', '3'))})
	assertTree(t, "{a-a}", mustBuild(t, "{a-a}"), []*Node{R('a', 'a')})
}

func TestBuildSiblingGroups(t *testing.T) {
	want := []*Node{
		G(O(T("a", nil))),
		G(O(T("b", nil)), O(G(O(T("c", nil))))),
	}
	assertTree(t, "{a} + {b, {c}}", mustBuild(t, "{a} + {b, {c}}"), want)
}

func TestBuildNested(t *testing.T) {
	input := "a + {{0-9}, x + y + {k, l, m + 4}, 4} + XF86{Play,Pause}"
	want := []*Node{
		T("a", nil),
		G(
			O(R('0', '9')),
			O(T("x", nil), T("y", nil), G(O(T("k", nil)), O(T("l", nil)), O(T("m", nil), T("4", nil)))),
			O(T("4", nil)),
		),
		T("XF86", G(O(T("Play", nil)), O(T("Pause", nil)))),
	}
	assertTree(t, input, mustBuild(t, input), want)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"{a,b", ErrUnmatchedGroupOpen},
		{"{{a}", ErrUnmatchedGroupOpen},
		{"x + {a, {b}", ErrUnmatchedGroupOpen},
		{"a +", ErrEmptyTerm},
		{"+ a", ErrEmptyTerm},
		{"a ++ b", ErrEmptyTerm},
		{"{}", ErrEmptyTerm},
		{"{a,}", ErrEmptyTerm},
		{"{,a}", ErrEmptyTerm},
		{"{a + }", ErrEmptyTerm},
		{"}", ErrUnexpectedToken},
		{"a + }", ErrUnexpectedToken},
		{"a, b", ErrUnexpectedToken},
		{"shift + -", ErrUnexpectedToken},
		{"{a-b, c}", ErrUnexpectedToken},
		{"{a-}", ErrUnexpectedToken},
		{"{ab-c}", ErrInvalidRangeEndpoint},
		{"{a-cd}", ErrInvalidRangeEndpoint},
		{"{9-0}", ErrReversedRange},
		{"{b-a}", ErrReversedRange},
		{"{!-\U0010FFFF}", ErrRangeTooLarge},
		{"{a}{b}", ErrTrailingTokens},
		{"{a,b}c", ErrTrailingTokens},
		{"{a}}", ErrTrailingTokens},
		{"x{a} y", ErrTrailingTokens},
	}
	for _, tt := range tests {
		nodes, err := Build(Scan(tt.input))
		if err == nil {
			t.Fatalf("Build(%q): expected error, got %s", tt.input, Format(nodes))
		}
		if !errors.Is(err, tt.want) {
			t.Fatalf("Build(%q): got error %v, want %v", tt.input, err, tt.want)
		}
		if nodes != nil {
			t.Fatalf("Build(%q): expected no partial tree", tt.input)
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Fatalf("Build(%q): expected *SyntaxError, got %T", tt.input, err)
		}
	}
}

func TestBuildLastTokenIsNotTheMatch(t *testing.T) {
	// The trailing "}" closes the second group, not the first.
	_, err := Build(Scan("{a}+{b}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = Build(Scan("{a},{b}"))
	if !errors.Is(err, ErrTrailingTokens) {
		t.Fatalf("expected trailing tokens error, got %v", err)
	}
}

func TestBuildErrorMessage(t *testing.T) {
	_, err := Build(Scan("{ab-c}"))
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "single characters") || !strings.Contains(msg, "{ab-c}") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestBuilderMaxRange(t *testing.T) {
	b := &Builder{MaxRange: 10}
	if _, err := b.Build(Scan("{0-9}")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := b.Build(Scan("{a-z}"))
	if !errors.Is(err, ErrRangeTooLarge) {
		t.Fatalf("expected range too large error, got %v", err)
	}
	if !strings.Contains(err.Error(), "26 characters") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	// Surrogates do not count towards the limit.
	b.MaxRange = 2
	if _, err := b.Build(Scan("{\uD7FF-\uE000}")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuilderMaxDepth(t *testing.T) {
	b := &Builder{MaxDepth: 2}
	if _, err := b.Build(Scan("{a, {b}}")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Build(Scan("{a, {b, {c}}}")); !errors.Is(err, ErrTooDeep) {
		t.Fatalf("expected too deep error, got %v", err)
	}
}

func TestBuildDefaultMaxDepth(t *testing.T) {
	deep := strings.Repeat("{", DefaultMaxDepth) + "a" + strings.Repeat("}", DefaultMaxDepth)
	nodes := mustBuild(t, deep)
	if d := Depth(nodes); d != DefaultMaxDepth {
		t.Fatalf("expected depth %d, got %d", DefaultMaxDepth, d)
	}
	tooDeep := "{" + deep + "}"
	if _, err := Build(Scan(tooDeep)); !errors.Is(err, ErrTooDeep) {
		t.Fatalf("expected too deep error, got %v", err)
	}
}

func TestBuildLongAdjacency(t *testing.T) {
	words := make([]string, 10000)
	for i := range words {
		words[i] = "k"
	}
	nodes := mustBuild(t, strings.Join(words, " "))
	if got := len(TextsPreorder(nodes)); got != len(words) {
		t.Fatalf("expected %d texts, got %d", len(words), got)
	}
}
