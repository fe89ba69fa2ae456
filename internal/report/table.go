// Package report turns compiled automata into transition tables and
// serializable documents.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"golang.org/x/exp/maps"

	"regexnfa/internal/regexlib"
)

// Row holds the destinations of one source state, grouped by label.
type Row struct {
	State regexlib.State
	Next  map[regexlib.Label][]regexlib.State
}

// Table is a transition summary: one row per state, one column per label.
// The epsilon column, when present, comes first; symbol columns follow in
// alphabet order.
type Table struct {
	Labels []regexlib.Label
	Rows   []Row
	Start  regexlib.State
	Accept regexlib.State
}

// NewTable groups the transitions of n by source state and label.
func NewTable(n *regexlib.NFA) *Table {
	t := &Table{Start: n.Start, Accept: n.Accept}
	used := map[regexlib.Label]struct{}{}
	for _, s := range n.States() {
		row := Row{State: s, Next: map[regexlib.Label][]regexlib.State{}}
		for _, tr := range n.Transitions(s) {
			row.Next[tr.Label] = append(row.Next[tr.Label], tr.To)
			used[tr.Label] = struct{}{}
		}
		for _, dst := range row.Next {
			slices.Sort(dst)
		}
		t.Rows = append(t.Rows, row)
	}
	// Epsilon is negative, so it sorts ahead of every symbol.
	t.Labels = maps.Keys(used)
	slices.Sort(t.Labels)
	return t
}

// WriteText renders the table as aligned columns. The start state is marked
// with "->" and the accept state with "*".
func (t *Table) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	hdr := []string{"state"}
	for _, l := range t.Labels {
		hdr = append(hdr, l.String())
	}
	fmt.Fprintln(tw, strings.Join(hdr, "\t"))

	for _, row := range t.Rows {
		cells := []string{t.stateName(row.State)}
		for _, l := range t.Labels {
			cells = append(cells, stateSet(row.Next[l]))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func (t *Table) stateName(s regexlib.State) string {
	var prefix string
	if s == t.Start {
		prefix = "->"
	}
	if s == t.Accept {
		prefix += "*"
	}
	return fmt.Sprintf("%s%d", prefix, s)
}

func stateSet(states []regexlib.State) string {
	if len(states) == 0 {
		return "-"
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = fmt.Sprint(int(s))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
