package report

import (
	"encoding/json"

	"sigs.k8s.io/yaml"

	"regexnfa/internal/regexlib"
)

// Transition is the serialized form of one edge. Epsilon edges carry no
// label.
type Transition struct {
	From    int    `json:"from"`
	Label   string `json:"label,omitempty"`
	Epsilon bool   `json:"epsilon,omitempty"`
	To      int    `json:"to"`
}

// Document is the serializable view of one compilation, successful or not.
type Document struct {
	Name        string       `json:"name,omitempty"`
	Pattern     string       `json:"pattern"`
	Desugared   string       `json:"desugared,omitempty"`
	Postfix     string       `json:"postfix,omitempty"`
	Error       string       `json:"error,omitempty"`
	States      int          `json:"states"`
	Start       int          `json:"start"`
	Accept      int          `json:"accept"`
	Alphabet    []string     `json:"alphabet,omitempty"`
	Transitions []Transition `json:"transitions,omitempty"`
}

// NewDocument describes the stages in tr. A non-nil err is recorded instead
// of the automaton.
func NewDocument(name string, tr *regexlib.Trace, err error) Document {
	doc := Document{
		Name:      name,
		Pattern:   tr.Pattern,
		Desugared: tr.Desugared,
		Postfix:   tr.Postfix,
	}
	if err != nil {
		doc.Error = err.Error()
		return doc
	}
	n := tr.NFA
	doc.States = n.NumStates()
	doc.Start = int(n.Start)
	doc.Accept = int(n.Accept)
	for _, r := range n.Alphabet {
		doc.Alphabet = append(doc.Alphabet, string(r))
	}
	for _, e := range n.Edges() {
		t := Transition{From: int(e.From), To: int(e.To)}
		if e.IsEpsilon() {
			t.Epsilon = true
		} else {
			t.Label = e.Label.String()
		}
		doc.Transitions = append(doc.Transitions, t)
	}
	return doc
}

// MarshalYAML encodes docs as a YAML sequence.
func MarshalYAML(docs []Document) ([]byte, error) {
	return yaml.Marshal(docs)
}

// MarshalJSON encodes docs as an indented JSON array.
func MarshalJSON(docs []Document) ([]byte, error) {
	out, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
