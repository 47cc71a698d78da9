package parse

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Lexer turns shorthand input into tokens, one at a time. Input is read as
// UTF-8; each invalid byte becomes U+FFFD in the token text.
type Lexer struct {
	r   *bufio.Reader
	Err error

	pending *Token
	text    strings.Builder
	eof     bool
}

func NewLexer(rd io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(rd)}
}

// Next returns the next token. ok is false once the input is exhausted or a
// read error was recorded in lx.Err.
func (lx *Lexer) Next() (tok Token, ok bool) {
	if lx.pending != nil {
		tok = *lx.pending
		lx.pending = nil
		return tok, true
	}
	for !lx.eof {
		r, _, err := lx.r.ReadRune()
		if err != nil {
			lx.eof = true
			if !errors.Is(err, io.EOF) && lx.Err == nil {
				lx.Err = err
			}
			break
		}
		switch r {
		case ' ':
			if t, ok := lx.flush(); ok {
				return t, true
			}
		case '{', '}', ',', '-', '+':
			delim := Tok(delimKind(r))
			if t, ok := lx.flush(); ok {
				lx.pending = &delim
				return t, true
			}
			return delim, true
		default:
			lx.text.WriteRune(r)
		}
	}
	return lx.flush()
}

// EOF reports whether the lexer has reached end of input.
func (lx *Lexer) EOF() bool {
	return lx.eof && lx.pending == nil && lx.text.Len() == 0
}

func (lx *Lexer) flush() (Token, bool) {
	if lx.text.Len() == 0 {
		return Token{}, false
	}
	t := TextTok(lx.text.String())
	lx.text.Reset()
	return t, true
}

func delimKind(r rune) TokenKind {
	switch r {
	case '{':
		return TGroupOpen
	case '}':
		return TGroupClose
	case ',':
		return TComma
	case '-':
		return TRangeSep
	default:
		return TPlus
	}
}

// ScanReader drains rd into a token slice.
func ScanReader(rd io.Reader) ([]Token, error) {
	lx := NewLexer(rd)
	var out []Token
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		out = append(out, tok)
	}
	if lx.Err != nil {
		return nil, lx.Err
	}
	return out, nil
}

// Scan tokenizes input. It never fails; empty input yields no tokens and
// invalid UTF-8 is replaced with U+FFFD.
func Scan(input string) []Token {
	toks, _ := ScanReader(strings.NewReader(input))
	return toks
}
