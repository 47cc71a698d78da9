package parse

import (
	"errors"
	"fmt"
)

// Syntax errors. Every error returned by the builder wraps one of these.
// ErrInvalidRangeEndpoint covers endpoints that are not exactly one valid
// character; ErrReversedRange and ErrRangeTooLarge cover well-formed
// endpoints that do not describe an acceptable range.
var (
	ErrEmptyTerm            = errors.New("empty term")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnmatchedGroupOpen   = errors.New("unmatched opening brace")
	ErrInvalidRangeEndpoint = errors.New("invalid range")
	ErrReversedRange        = errors.New("range start is after range end")
	ErrRangeTooLarge        = errors.New("range too large")
	ErrTrailingTokens       = errors.New("trailing tokens after group")
	ErrTooDeep              = errors.New("groups nested too deeply")
)

// SyntaxError reports a failed compilation together with the token
// subsequence that caused it.
type SyntaxError struct {
	Err    error
	Detail string
	Tokens []Token
}

func (e *SyntaxError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if len(e.Tokens) > 0 {
		msg += fmt.Sprintf(" in %q", JoinTokens(e.Tokens))
	}
	return msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxErr(err error, toks []Token, format string, args ...any) error {
	detail := ""
	if format != "" {
		detail = fmt.Sprintf(format, args...)
	}
	return &SyntaxError{Err: err, Detail: detail, Tokens: toks}
}
