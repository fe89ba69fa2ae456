package regexlib

import (
	"fmt"
	"strings"
)

// ErrorCode identifies the category of a compilation failure.
type ErrorCode string

const (
	// CodeMalformedGrouping indicates an unmatched '(' or ')'.
	CodeMalformedGrouping ErrorCode = "malformed-grouping"
	// CodeInvalidExpression indicates a postfix sequence that does not
	// evaluate to exactly one fragment.
	CodeInvalidExpression ErrorCode = "invalid-expression"
)

// Reason narrows an ErrorCode down to its root cause.
type Reason string

const (
	ReasonUnmatchedOpen  Reason = "unmatched-open"
	ReasonUnmatchedClose Reason = "unmatched-close"

	// ReasonEmpty: nothing to build, the pattern or postfix sequence is empty.
	ReasonEmpty Reason = "empty"
	// ReasonUnderflow: an operator found fewer operands than it needs.
	ReasonUnderflow Reason = "underflow"
	// ReasonDangling: more than one fragment remained after the last token,
	// typically two operands with no operator joining them.
	ReasonDangling Reason = "dangling-operands"
	// ReasonGrouping: a '(' or ')' reached the builder.
	ReasonGrouping Reason = "grouping-in-postfix"
)

// Sentinel errors for use with errors.Is.
var (
	ErrMalformedGrouping = &Error{Code: CodeMalformedGrouping}
	ErrInvalidExpression = &Error{Code: CodeInvalidExpression}
)

// Error describes a failed compilation stage.
//
// Pos is the rune index of the offending token within the input of the
// stage that failed (the desugared pattern for grouping errors, the postfix
// sequence for expression errors), or -1 when the failure was detected
// after the whole input had been consumed. Depth is the stack depth at that
// moment.
type Error struct {
	Code   ErrorCode
	Reason Reason
	Pos    int
	Depth  int
	Token  rune
	Input  string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Reason != "" {
		fmt.Fprintf(&b, " (%s)", e.Reason)
	}
	if e.Pos >= 0 && e.Token != 0 {
		fmt.Fprintf(&b, ": token %q at %d", e.Token, e.Pos)
	}
	if e.Depth > 0 || e.Reason == ReasonUnderflow || e.Reason == ReasonDangling {
		fmt.Fprintf(&b, ", stack depth %d", e.Depth)
	}
	if e.Input != "" {
		fmt.Fprintf(&b, " in %q", e.Input)
	}
	return b.String()
}

// Is matches any *Error carrying the same Code, so that
// errors.Is(err, ErrInvalidExpression) works for every sub-kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Reason != "" && t.Reason != e.Reason {
		return false
	}
	return t.Code == e.Code
}

func groupingError(reason Reason, tok token, depth int, input string) *Error {
	return &Error{
		Code:   CodeMalformedGrouping,
		Reason: reason,
		Pos:    tok.pos,
		Depth:  depth,
		Token:  tok.ch,
		Input:  input,
	}
}

func expressionError(reason Reason, tok token, depth int, input string) *Error {
	e := &Error{
		Code:   CodeInvalidExpression,
		Reason: reason,
		Pos:    tok.pos,
		Depth:  depth,
		Token:  tok.ch,
		Input:  input,
	}
	if tok.typ == tEOF {
		e.Pos = -1
		e.Token = 0
	}
	return e
}
