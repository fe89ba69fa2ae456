package regexlib

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportDOTLiteral(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportDOT(&buf, MustCompile("a"), ""); err != nil {
		t.Fatal(err)
	}
	want := `digraph "G" {
    rankdir=LR;
    n0 [shape=circle];
    n1 [shape=doublecircle];
    n0 -> n1 [label="a"];
    _start [shape=point]; _start -> n0;
}
`
	if buf.String() != want {
		t.Fatalf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestExportDOTEpsilonAndEscaping(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportDOT(&buf, MustCompile(`"|\`), `say "hi"`); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`digraph "say \"hi\"" {`,
		`[label="\""]`,
		`[label="\\"]`,
		`n4 -> n0 [label="ε"];`,
		`n5 [shape=doublecircle];`,
		`_start -> n4;`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %s:\n%s", want, out)
		}
	}
}
