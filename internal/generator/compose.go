package generator

import (
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/config"
)

// writer accumulates snippet text with a single indent unit.
type writer struct {
	buf    strings.Builder
	indent string
}

// line writes text at depth. Empty text produces an empty line with no
// trailing whitespace.
func (w *writer) line(depth int, text string) {
	if text != "" {
		w.buf.WriteString(strings.Repeat(w.indent, depth))
		w.buf.WriteString(text)
	}
	w.buf.WriteByte('\n')
}

func (w *writer) blank() {
	w.buf.WriteByte('\n')
}

func (w *writer) fragment(f Fragment) {
	for _, l := range f.Lines {
		if l.Raw {
			w.buf.WriteString(l.Text)
			w.buf.WriteByte('\n')
			continue
		}
		w.line(f.IndentLevel+l.Depth, l.Text)
	}
}

// fragments writes frags separated by exactly one blank line. It reports
// whether anything was written.
func (w *writer) fragments(frags []Fragment) bool {
	wrote := false
	for _, f := range frags {
		if f.empty() {
			continue
		}
		if wrote {
			w.blank()
		}
		w.fragment(f)
		wrote = true
	}
	return wrote
}

func (w *writer) String() string {
	return w.buf.String()
}

// composed is one dialect's snippet and the clauses it was built from.
type composed struct {
	text    string
	clauses []ClauseID
}

// compose renders every clause of plan for dialect d and lays the fragments
// out according to the dialect. It never fails.
func compose(d Dialect, plan *Plan, cfg *config.Sandbox, indent string) composed {
	def := dialects[d]
	if indent == "" {
		indent = def.indent
	}

	rc := &renderContext{cfg: cfg, plan: plan}
	imports := importSet{}
	frags := make([]Fragment, 0, len(plan.Clauses))
	clauses := make([]ClauseID, 0, len(plan.Clauses))

	for _, id := range plan.Clauses {
		clause := catalogIndex[id]
		f := def.renderers[id](rc)
		f.Clause = id
		f.IndentLevel = def.depth(clause.Section)
		imports.add(f.Imports...)
		frags = append(frags, f)
		clauses = append(clauses, id)
	}

	w := &writer{indent: indent}
	def.layout(w, def.header(imports.names()), frags)
	return composed{text: w.String(), clauses: clauses}
}

// bySection returns the fragments belonging to any of the given sections,
// in their original order.
func bySection(frags []Fragment, sections ...Section) []Fragment {
	var out []Fragment
	for _, f := range frags {
		s := catalogIndex[f.Clause].Section
		for _, want := range sections {
			if s == want {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
