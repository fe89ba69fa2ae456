package regexlib

// Trace keeps every intermediate form produced while compiling a pattern.
type Trace struct {
	Pattern   string
	Desugared string
	Postfix   string
	NFA       *NFA
}

// Compile runs the whole pipeline: Desugar, ToPostfix, BuildNFA.
// An empty pattern is rejected with CodeInvalidExpression.
func Compile(pattern string) (*NFA, error) {
	tr, err := Stages(pattern)
	if err != nil {
		return nil, err
	}
	return tr.NFA, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *NFA {
	n, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

// Stages compiles pattern and returns the intermediate forms. On error the
// returned Trace holds the stages that completed before the failure.
func Stages(pattern string) (*Trace, error) {
	tr := &Trace{Pattern: pattern}

	tr.Desugared = Desugar(pattern)

	postfix, err := ToPostfix(tr.Desugared)
	if err != nil {
		return tr, err
	}
	tr.Postfix = postfix

	n, err := BuildNFA(postfix)
	if err != nil {
		return tr, err
	}
	tr.NFA = n
	return tr, nil
}
