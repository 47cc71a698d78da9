package parse

import "strings"

// TokenKind identifies a scanned token.
type TokenKind int

const (
	TGroupOpen TokenKind = iota
	TGroupClose
	TComma
	TRangeSep
	TPlus
	TText
)

// Token is a single scanned token. Only TText tokens carry Text.
type Token struct {
	Kind TokenKind
	Text string
}

// Tok constructs a delimiter token.
func Tok(k TokenKind) Token {
	return Token{Kind: k}
}

// TextTok constructs a text token.
func TextTok(s string) Token {
	return Token{Kind: TText, Text: s}
}

// String renders the token as it appears in source.
func (t Token) String() string {
	switch t.Kind {
	case TGroupOpen:
		return "{"
	case TGroupClose:
		return "}"
	case TComma:
		return ","
	case TRangeSep:
		return "-"
	case TPlus:
		return "+"
	default:
		return t.Text
	}
}

// String returns the kind name used in token dumps.
func (k TokenKind) String() string {
	switch k {
	case TGroupOpen:
		return "GROUP_OPEN"
	case TGroupClose:
		return "GROUP_CLOSE"
	case TComma:
		return "COMMA"
	case TRangeSep:
		return "RANGE_SEP"
	case TPlus:
		return "PLUS"
	case TText:
		return "TEXT"
	default:
		return "UNKNOWN"
	}
}

// JoinTokens renders a token sequence back to source, separating
// consecutive text tokens with a space so they are not merged.
func JoinTokens(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 && t.Kind == TText && toks[i-1].Kind == TText {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
