package regexlib

import "strings"

func precedence(t tokenType) int {
	switch t {
	case tUnion:
		return 1
	case tConcat:
		return 2
	case tStar, tPlus, tQMark:
		return 3
	default:
		return 0
	}
}

// ToPostfix rewrites a desugared pattern into postfix form with the
// shunting-yard algorithm. All operators are left associative. Groupings are
// dropped from the output; an unmatched '(' or ')' yields a
// CodeMalformedGrouping error.
func ToPostfix(desugared string) (string, error) {
	var out strings.Builder
	out.Grow(len(desugared))

	var ops []token
	pop := func() token {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		return top
	}

	for _, tok := range tokenize(desugared) {
		switch tok.typ {
		case tChar:
			out.WriteRune(tok.ch)
		case tLParen:
			ops = append(ops, tok)
		case tRParen:
			for {
				if len(ops) == 0 {
					return "", groupingError(ReasonUnmatchedClose, tok, 0, desugared)
				}
				top := pop()
				if top.typ == tLParen {
					break
				}
				out.WriteRune(top.ch)
			}
		default:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.typ == tLParen || precedence(top.typ) < precedence(tok.typ) {
					break
				}
				out.WriteRune(pop().ch)
			}
			ops = append(ops, tok)
		}
	}

	for len(ops) > 0 {
		depth := len(ops)
		top := pop()
		if top.typ == tLParen {
			return "", groupingError(ReasonUnmatchedOpen, top, depth, desugared)
		}
		out.WriteRune(top.ch)
	}
	return out.String(), nil
}
