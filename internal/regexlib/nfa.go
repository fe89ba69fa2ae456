package regexlib

import (
	"slices"

	"golang.org/x/exp/maps"
)

// State is a node of the automaton. States are dense indices starting at 0,
// in allocation order.
type State int

// Label is the input symbol of a transition, or Epsilon.
type Label rune

// Epsilon labels a transition that consumes no input.
const Epsilon Label = -1

func (l Label) String() string {
	if l == Epsilon {
		return "ε"
	}
	return string(rune(l))
}

// Transition is an outgoing edge stored under its source state.
type Transition struct {
	Label Label
	To    State
}

// Edge is a fully qualified transition.
type Edge struct {
	From  State
	Label Label
	To    State
}

func (e Edge) IsEpsilon() bool { return e.Label == Epsilon }

// NFA is a Thompson automaton: one start state, one accept state and an
// ordered transition list for every state.
type NFA struct {
	Start    State
	Accept   State
	Alphabet []rune // sorted, without duplicates

	trans [][]Transition
}

// NumStates returns the number of allocated states.
func (n *NFA) NumStates() int { return len(n.trans) }

// States returns every state in id order.
func (n *NFA) States() []State {
	out := make([]State, len(n.trans))
	for i := range out {
		out[i] = State(i)
	}
	return out
}

// HasState reports whether s belongs to the automaton.
func (n *NFA) HasState(s State) bool { return s >= 0 && int(s) < len(n.trans) }

// Transitions returns the outgoing transitions of s in insertion order.
// The returned slice must not be modified.
func (n *NFA) Transitions(s State) []Transition {
	if !n.HasState(s) {
		return nil
	}
	return n.trans[s]
}

// Edges flattens the transition relation, ordered by source state and then
// by insertion order.
func (n *NFA) Edges() []Edge {
	var out []Edge
	for from, ts := range n.trans {
		for _, t := range ts {
			out = append(out, Edge{From: State(from), Label: t.Label, To: t.To})
		}
	}
	return out
}

// InDegree counts the transitions entering s.
func (n *NFA) InDegree(s State) int {
	d := 0
	for _, ts := range n.trans {
		for _, t := range ts {
			if t.To == s {
				d++
			}
		}
	}
	return d
}

// Reachable returns the set of states reachable from Start, Start included.
// Epsilon cycles are visited once.
func (n *NFA) Reachable() map[State]bool {
	seen := map[State]bool{n.Start: true}
	stack := []State{n.Start}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.trans[s] {
			if !seen[t.To] {
				seen[t.To] = true
				stack = append(stack, t.To)
			}
		}
	}
	return seen
}

/* ----------------------- Thompson construction ----------------------- */

type fragment struct {
	start, accept State
}

// builder owns all mutable state of one construction.
type builder struct {
	postfix string
	trans   [][]Transition
	stack   []fragment
	alpha   map[rune]struct{}
}

func (b *builder) newState() State {
	b.trans = append(b.trans, nil)
	return State(len(b.trans) - 1)
}

func (b *builder) connect(from State, l Label, to State) {
	b.trans[from] = append(b.trans[from], Transition{Label: l, To: to})
}

func (b *builder) push(f fragment) { b.stack = append(b.stack, f) }

func (b *builder) pop() fragment {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return f
}

// operands checks that tok can pop n fragments.
func (b *builder) operands(tok token, n int) error {
	if len(b.stack) < n {
		return expressionError(ReasonUnderflow, tok, len(b.stack), b.postfix)
	}
	return nil
}

func (b *builder) step(tok token) error {
	switch tok.typ {
	case tChar:
		s, a := b.newState(), b.newState()
		b.connect(s, Label(tok.ch), a)
		b.alpha[tok.ch] = struct{}{}
		b.push(fragment{s, a})

	case tConcat:
		if err := b.operands(tok, 2); err != nil {
			return err
		}
		f2, f1 := b.pop(), b.pop()
		b.connect(f1.accept, Epsilon, f2.start)
		b.push(fragment{f1.start, f2.accept})

	case tUnion:
		if err := b.operands(tok, 2); err != nil {
			return err
		}
		f2, f1 := b.pop(), b.pop()
		s, a := b.newState(), b.newState()
		b.connect(s, Epsilon, f1.start)
		b.connect(s, Epsilon, f2.start)
		b.connect(f1.accept, Epsilon, a)
		b.connect(f2.accept, Epsilon, a)
		b.push(fragment{s, a})

	case tStar, tPlus, tQMark:
		if err := b.operands(tok, 1); err != nil {
			return err
		}
		f := b.pop()
		s, a := b.newState(), b.newState()
		b.connect(s, Epsilon, f.start)
		if tok.typ != tPlus {
			b.connect(s, Epsilon, a)
		}
		if tok.typ != tQMark {
			b.connect(f.accept, Epsilon, f.start)
		}
		b.connect(f.accept, Epsilon, a)
		b.push(fragment{s, a})

	default:
		return expressionError(ReasonGrouping, tok, len(b.stack), b.postfix)
	}
	return nil
}

// BuildNFA evaluates a postfix sequence with Thompson's construction.
// It fails with CodeInvalidExpression unless the sequence reduces to
// exactly one fragment.
func BuildNFA(postfix string) (*NFA, error) {
	b := &builder{
		postfix: postfix,
		alpha:   map[rune]struct{}{},
	}
	toks := tokenize(postfix)
	for _, tok := range toks {
		if err := b.step(tok); err != nil {
			return nil, err
		}
	}

	end := token{typ: tEOF, pos: len(toks)}
	switch len(b.stack) {
	case 0:
		return nil, expressionError(ReasonEmpty, end, 0, postfix)
	case 1:
	default:
		return nil, expressionError(ReasonDangling, end, len(b.stack), postfix)
	}

	alphabet := maps.Keys(b.alpha)
	slices.Sort(alphabet)

	root := b.pop()
	return &NFA{
		Start:    root.start,
		Accept:   root.accept,
		Alphabet: alphabet,
		trans:    b.trans,
	}, nil
}
