package regexlib

import "testing"

func TestLexerTokens(t *testing.T) {
	l := newLexer(`a.(b|c)*+?`)
	want := []tokenType{
		tChar, tConcat, tLParen, tChar, tUnion, tChar, tRParen,
		tStar, tPlus, tQMark, tEOF,
	}
	for i, typ := range want {
		if tok := l.next(); tok.typ != typ {
			t.Fatalf("tok %d want %v got %v", i, typ, tok.typ)
		}
	}
}

func TestLexerRunePositions(t *testing.T) {
	toks := tokenize("λ|μ")
	if len(toks) != 3 {
		t.Fatalf("want 3 tokens got %d", len(toks))
	}
	for i, tok := range toks {
		if tok.pos != i {
			t.Errorf("token %q: want pos %d got %d", tok.ch, i, tok.pos)
		}
	}
	if toks[0].ch != 'λ' || toks[2].ch != 'μ' {
		t.Fatalf("unexpected runes %q %q", toks[0].ch, toks[2].ch)
	}
}
