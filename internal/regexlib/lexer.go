package regexlib

import (
	"unicode/utf8"
)

// ConcatOp is the explicit concatenation operator inserted by Desugar.
// It is reserved: a '.' in a pattern is always read as concatenation.
const ConcatOp = '.'

type tokenType int

const (
	tEOF    tokenType = iota
	tChar             // literal rune
	tLParen           // (
	tRParen           // )
	tStar             // *
	tPlus             // +
	tQMark            // ?
	tUnion            // |
	tConcat           // .
)

func (t tokenType) String() string {
	switch t {
	case tEOF:
		return "EOF"
	case tChar:
		return "literal"
	case tLParen:
		return "'('"
	case tRParen:
		return "')'"
	case tStar:
		return "'*'"
	case tPlus:
		return "'+'"
	case tQMark:
		return "'?'"
	case tUnion:
		return "'|'"
	case tConcat:
		return "'.'"
	}
	return "unknown"
}

func (t tokenType) isRepeat() bool { return t == tStar || t == tPlus || t == tQMark }

// endsOperand reports whether a token of this type closes an operand,
// i.e. whether concatenation may follow it.
func (t tokenType) endsOperand() bool { return t == tChar || t == tRParen || t.isRepeat() }

// startsOperand reports whether a token of this type opens an operand.
func (t tokenType) startsOperand() bool { return t == tChar || t == tLParen }

type token struct {
	typ tokenType
	ch  rune
	pos int // rune index in the scanned string
}

type lexer struct {
	input string
	off   int // byte offset
	pos   int // rune index
}

func newLexer(s string) *lexer { return &lexer{input: s} }

func (l *lexer) next() token {
	if l.off >= len(l.input) {
		return token{typ: tEOF, pos: l.pos}
	}
	r, size := utf8.DecodeRuneInString(l.input[l.off:])
	tok := token{typ: classify(r), ch: r, pos: l.pos}
	l.off += size
	l.pos++
	return tok
}

func classify(r rune) tokenType {
	switch r {
	case '(':
		return tLParen
	case ')':
		return tRParen
	case '*':
		return tStar
	case '+':
		return tPlus
	case '?':
		return tQMark
	case '|':
		return tUnion
	case ConcatOp:
		return tConcat
	default:
		return tChar
	}
}

// tokenize scans s completely; the trailing EOF token is not included.
func tokenize(s string) []token {
	l := newLexer(s)
	toks := make([]token, 0, len(s))
	for tok := l.next(); tok.typ != tEOF; tok = l.next() {
		toks = append(toks, tok)
	}
	return toks
}
