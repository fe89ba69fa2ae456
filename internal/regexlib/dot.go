package regexlib

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ExportDOT writes a Graphviz representation of n to w.
// The accept state is drawn as a double circle and the start state is fed
// by an arrow from an invisible point node.
func ExportDOT(w io.Writer, n *NFA, name string) error {
	if name == "" {
		name = "G"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", dotID(name))
	fmt.Fprintln(bw, "    rankdir=LR;")

	for _, s := range n.States() {
		shape := "circle"
		if s == n.Accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    n%d [shape=%s];\n", s, shape)
	}
	for _, e := range n.Edges() {
		fmt.Fprintf(bw, "    n%d -> n%d [label=\"%s\"];\n", e.From, e.To, dotEscape(e.Label.String()))
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> n%d;\n", n.Start)

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func dotID(name string) string {
	return `"` + dotEscape(name) + `"`
}
