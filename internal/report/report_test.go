package report

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"sigs.k8s.io/yaml"

	"regexnfa/internal/regexlib"
)

func TestTableUnion(t *testing.T) {
	tbl := NewTable(regexlib.MustCompile("a|b"))
	want := []regexlib.Label{regexlib.Epsilon, 'a', 'b'}
	if !reflect.DeepEqual(tbl.Labels, want) {
		t.Fatalf("labels %v want %v", tbl.Labels, want)
	}
	if len(tbl.Rows) != 6 {
		t.Fatalf("want 6 rows got %d", len(tbl.Rows))
	}
	if got := tbl.Rows[4].Next[regexlib.Epsilon]; !reflect.DeepEqual(got, []regexlib.State{0, 2}) {
		t.Fatalf("start epsilon row %v", got)
	}
	if got := tbl.Rows[0].Next['a']; !reflect.DeepEqual(got, []regexlib.State{1}) {
		t.Fatalf("row 0 on a: %v", got)
	}
	if len(tbl.Rows[5].Next) != 0 {
		t.Fatalf("accept row not empty: %v", tbl.Rows[5].Next)
	}
}

func TestTableWithoutEpsilon(t *testing.T) {
	tbl := NewTable(regexlib.MustCompile("a"))
	if !reflect.DeepEqual(tbl.Labels, []regexlib.Label{'a'}) {
		t.Fatalf("labels %v", tbl.Labels)
	}
}

func TestTableWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTable(regexlib.MustCompile("ab")).WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("want header + 4 rows, got:\n%s", buf.String())
	}
	tests := []struct {
		line   int
		fields []string
	}{
		{0, []string{"state", "ε", "a", "b"}},
		{1, []string{"->0", "-", "{1}", "-"}},
		{2, []string{"1", "{2}", "-", "-"}},
		{4, []string{"*3", "-", "-", "-"}},
	}
	for _, tt := range tests {
		if got := strings.Fields(lines[tt.line]); !reflect.DeepEqual(got, tt.fields) {
			t.Errorf("line %d: got %q want %q", tt.line, got, tt.fields)
		}
	}
}

func TestDocumentYAML(t *testing.T) {
	tr, err := regexlib.Stages("a*")
	doc := NewDocument("star", tr, err)
	out, err := MarshalYAML([]Document{doc})
	if err != nil {
		t.Fatal(err)
	}
	var back []Document
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	if len(back) != 1 || !reflect.DeepEqual(back[0], doc) {
		t.Fatalf("yaml round trip:\n%s", out)
	}
	want := []Transition{
		{From: 0, Label: "a", To: 1},
		{From: 1, Epsilon: true, To: 0},
		{From: 1, Epsilon: true, To: 3},
		{From: 2, Epsilon: true, To: 0},
		{From: 2, Epsilon: true, To: 3},
	}
	if !reflect.DeepEqual(doc.Transitions, want) {
		t.Fatalf("transitions %+v", doc.Transitions)
	}
	if doc.States != 4 || doc.Start != 2 || doc.Accept != 3 || doc.Postfix != "a*" {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestDocumentError(t *testing.T) {
	tr, err := regexlib.Stages("(a")
	doc := NewDocument("", tr, err)
	if doc.Error == "" || doc.States != 0 || doc.Transitions != nil {
		t.Fatalf("unexpected document %+v", doc)
	}
	out, err := MarshalJSON([]Document{doc})
	if err != nil {
		t.Fatal(err)
	}
	var back []map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if _, ok := back[0]["transitions"]; ok {
		t.Fatalf("transitions emitted for failed pattern: %s", out)
	}
	if back[0]["error"] != doc.Error {
		t.Fatalf("error field %v", back[0]["error"])
	}
}
