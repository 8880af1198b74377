package generator

import (
	"fmt"
	"slices"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/config"
)

// Options control the composed text. The zero value uses each dialect's
// default indentation.
type Options struct {
	// Indent overrides the indent unit for both dialects.
	Indent string
}

// Output is the pair of snippets for one configuration.
type Output struct {
	Python     string
	TypeScript string
	// Clauses lists the clause IDs both snippets were built from.
	Clauses []ClauseID
}

// Snippet returns the text for dialect d.
func (o Output) Snippet(d Dialect) string {
	switch d {
	case Python:
		return o.Python
	case TypeScript:
		return o.TypeScript
	default:
		return ""
	}
}

// Render builds both snippets from one shared plan. It panics if the
// dialects disagree on the clauses they rendered, which can only happen
// through a bug in a renderer registration.
func Render(cfg *config.Sandbox, opts Options) Output {
	if cfg == nil {
		cfg = &config.Sandbox{}
	}
	plan := Activate(cfg)

	py := compose(Python, plan, cfg, opts.Indent)
	ts := compose(TypeScript, plan, cfg, opts.Indent)
	if !slices.Equal(py.clauses, ts.clauses) {
		panic(fmt.Sprintf("generator: dialect clause mismatch: python %v, typescript %v", py.clauses, ts.clauses))
	}

	return Output{
		Python:     py.text,
		TypeScript: ts.text,
		Clauses:    slices.Clone(plan.Clauses),
	}
}

// RenderDialect builds the snippet for a single dialect.
func RenderDialect(cfg *config.Sandbox, d Dialect, opts Options) (string, error) {
	if _, ok := dialects[d]; !ok {
		return "", fmt.Errorf("unknown dialect %q", d)
	}
	if cfg == nil {
		cfg = &config.Sandbox{}
	}
	return compose(d, Activate(cfg), cfg, opts.Indent).text, nil
}
