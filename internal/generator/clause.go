package generator

import "fmt"

// ClauseID identifies one independently toggleable part of a snippet.
type ClauseID string

const (
	ClauseImports      ClauseID = "imports"
	ClauseConfig       ClauseID = "config"
	ClauseClientInit   ClauseID = "client-init"
	ClauseResources    ClauseID = "resources"
	ClauseCreateParams ClauseID = "create-params"
	ClauseCreateCall   ClauseID = "create-call"
	ClauseCodeRun      ClauseID = "code-run"
	ClauseShellRun     ClauseID = "shell-run"
	ClauseGitClone     ClauseID = "git-clone"
	ClauseGitStatus    ClauseID = "git-status"
	ClauseGitBranches  ClauseID = "git-branches"
)

// Section is where a clause lands in the composed snippet.
type Section int

const (
	// SectionHeader clauses only contribute imports.
	SectionHeader Section = iota
	// SectionPreamble clauses sit at the top level in every dialect.
	SectionPreamble
	// SectionClient holds client initialization.
	SectionClient
	// SectionUsage clauses operate on the created sandbox.
	SectionUsage
)

func (s Section) String() string {
	switch s {
	case SectionHeader:
		return "header"
	case SectionPreamble:
		return "preamble"
	case SectionClient:
		return "client"
	case SectionUsage:
		return "usage"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

// Clause is one catalog entry. Activation is decided from Facts only and is
// therefore the same for every dialect.
type Clause struct {
	ID          ClauseID
	Section     Section
	Description string

	active func(Facts) bool
}

// Active reports whether the clause is part of a snippet with the given facts.
func (c Clause) Active(f Facts) bool {
	return c.active(f)
}

func always(Facts) bool { return true }

// catalog is the ordered clause list. Order here is render order.
var catalog = []Clause{
	{
		ID:          ClauseImports,
		Section:     SectionHeader,
		Description: "SDK import header",
		active:      always,
	},
	{
		ID:          ClauseConfig,
		Section:     SectionPreamble,
		Description: "client configuration object",
		active:      func(f Facts) bool { return f.UsesClient },
	},
	{
		ID:          ClauseClientInit,
		Section:     SectionClient,
		Description: "client initialization",
		active:      always,
	},
	{
		ID:          ClauseResources,
		Section:     SectionUsage,
		Description: "custom cpu/memory/disk resources",
		active:      func(f Facts) bool { return f.UsesResources },
	},
	{
		ID:          ClauseCreateParams,
		Section:     SectionUsage,
		Description: "sandbox creation parameters",
		active:      func(f Facts) bool { return f.UsesCreateParams },
	},
	{
		ID:          ClauseCreateCall,
		Section:     SectionUsage,
		Description: "sandbox creation call",
		active:      always,
	},
	{
		ID:          ClauseCodeRun,
		Section:     SectionUsage,
		Description: "run code with the sandbox language",
		active:      func(f Facts) bool { return f.UsesCodeRun },
	},
	{
		ID:          ClauseShellRun,
		Section:     SectionUsage,
		Description: "execute a shell command",
		active:      func(f Facts) bool { return f.UsesShellRun },
	},
	{
		ID:          ClauseGitClone,
		Section:     SectionUsage,
		Description: "clone a git repository",
		active:      func(f Facts) bool { return f.UsesGitClone },
	},
	{
		ID:          ClauseGitStatus,
		Section:     SectionUsage,
		Description: "git repository status",
		active:      func(f Facts) bool { return f.UsesGitStatus },
	},
	{
		ID:          ClauseGitBranches,
		Section:     SectionUsage,
		Description: "list git branches",
		active:      func(f Facts) bool { return f.UsesGitBranches },
	},
}

var catalogIndex = func() map[ClauseID]Clause {
	idx := make(map[ClauseID]Clause, len(catalog))
	for _, c := range catalog {
		idx[c.ID] = c
	}
	return idx
}()

// Catalog returns the clause catalog in render order.
func Catalog() []Clause {
	out := make([]Clause, len(catalog))
	copy(out, catalog)
	return out
}

// LookupClause returns the catalog entry for id.
func LookupClause(id ClauseID) (Clause, bool) {
	c, ok := catalogIndex[id]
	return c, ok
}
