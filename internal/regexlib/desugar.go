package regexlib

import "strings"

// Desugar makes concatenation explicit by inserting ConcatOp between every
// pair of adjacent tokens where one operand ends and the next one begins.
// It accepts any input; malformed patterns are rejected later by BuildNFA.
func Desugar(pattern string) string {
	var b strings.Builder
	b.Grow(2 * len(pattern))

	prev := tEOF
	for _, tok := range tokenize(pattern) {
		if prev.endsOperand() && tok.typ.startsOperand() {
			b.WriteRune(ConcatOp)
		}
		b.WriteRune(tok.ch)
		prev = tok.typ
	}
	return b.String()
}
