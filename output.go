package ctl

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// WriteDot writes the structure in Graphviz DOT format. The initial state
// is drawn with a thick border and the states in highlight, if any, are
// filled. Output is deterministic: states and edges are sorted.
//
// Parameters:
//   - w: Writer to output the DOT graph to
//   - highlight: States to fill, typically a formula's marking; may be nil
//
// Example:
//
//	file, err := os.Create("model.dot")
//	if err != nil {
//	    return err
//	}
//	defer file.Close()
//	st.WriteDot(file, checker.Marking(ctl.EF(ctl.Atomic("error"))))
func (st *Structure[S]) WriteDot(w io.Writer, highlight Marking[S]) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	_, _ = fmt.Fprintln(w, "digraph {")
	for _, s := range st.states() {
		_, _ = fmt.Fprintf(w, "  %s [ label=\"%s\" ];\n", dotQuote(s), dotLabel(s, st.labels[s]))
		if s == st.initial {
			_, _ = fmt.Fprintf(w, "  %s [ penwidth=5 ];\n", dotQuote(s))
		}
		if highlight.Contains(s) {
			_, _ = fmt.Fprintf(w, "  %s [ style=filled, fillcolor=lightblue ];\n", dotQuote(s))
		}
	}
	for _, from := range st.states() {
		tos := slices.Clone(st.successors[from])
		slices.Sort(tos)
		for _, to := range tos {
			_, _ = fmt.Fprintf(w, "  %s -> %s;\n", dotQuote(from), dotQuote(to))
		}
	}
	_, _ = fmt.Fprintln(w, "}")
}

// dotEscaper escapes text placed inside a double-quoted DOT string.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func dotQuote(v any) string {
	return `"` + dotEscaper.Replace(fmt.Sprint(v)) + `"`
}

func dotLabel[S any](s S, l Label) string {
	props := l.Propositions()
	strs := make([]string, len(props))
	for i, p := range props {
		strs[i] = dotEscaper.Replace(string(p))
	}
	return fmt.Sprintf("%s\\n{%s}", dotEscaper.Replace(fmt.Sprint(s)), strings.Join(strs, ","))
}
