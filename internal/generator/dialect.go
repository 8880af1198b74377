package generator

import (
	"fmt"
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/config"
)

// Dialect is an output syntax for the SDK snippet.
type Dialect string

const (
	// Python is the indentation-based dialect (Python SDK).
	Python Dialect = "python"
	// TypeScript is the brace-delimited dialect (TypeScript SDK).
	TypeScript Dialect = "typescript"
)

// Dialects returns the supported dialects in display order.
func Dialects() []Dialect {
	return []Dialect{Python, TypeScript}
}

// ParseDialect maps a user-supplied name to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "python", "py":
		return Python, nil
	case "typescript", "ts":
		return TypeScript, nil
	default:
		return "", fmt.Errorf("unknown dialect %q (want python or typescript)", s)
	}
}

// Label is the display name of the dialect.
func (d Dialect) Label() string {
	switch d {
	case Python:
		return "Python"
	case TypeScript:
		return "TypeScript"
	default:
		return string(d)
	}
}

// Extension is the source file extension, with the dot.
func (d Dialect) Extension() string {
	switch d {
	case Python:
		return ".py"
	case TypeScript:
		return ".ts"
	default:
		return ""
	}
}

// renderContext is what a clause renderer sees: the read-only model and the
// shared plan.
type renderContext struct {
	cfg  *config.Sandbox
	plan *Plan
}

type renderFunc func(rc *renderContext) Fragment

// dialectDef is everything the composer needs to know about one dialect.
type dialectDef struct {
	indent    string
	header    func(names []string) string
	depth     func(Section) int
	layout    func(w *writer, header string, frags []Fragment)
	renderers map[ClauseID]renderFunc
}

var dialects = map[Dialect]*dialectDef{}

func registerDialect(d Dialect, def *dialectDef) {
	for _, c := range catalog {
		if _, ok := def.renderers[c.ID]; !ok {
			panic(fmt.Sprintf("generator: dialect %s has no renderer for clause %s", d, c.ID))
		}
	}
	dialects[d] = def
}
