package parse

// SplitAt cuts toks at every sep token found outside of groups. The segments
// are sub-slices of toks; there is always at least one, possibly empty.
// Unbalanced braces are left for the builder to report.
func SplitAt(toks []Token, sep TokenKind) [][]Token {
	var out [][]Token
	depth := 0
	start := 0
	for i, t := range toks {
		switch t.Kind {
		case TGroupOpen:
			depth++
		case TGroupClose:
			depth--
		case sep:
			if depth == 0 {
				out = append(out, toks[start:i:i])
				start = i + 1
			}
		}
	}
	return append(out, toks[start:len(toks):len(toks)])
}

// matchClose returns the index of the TGroupClose balancing the TGroupOpen
// at toks[0], or -1.
func matchClose(toks []Token) int {
	depth := 0
	for i, t := range toks {
		switch t.Kind {
		case TGroupOpen:
			depth++
		case TGroupClose:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
