package generator

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/config"
)

// Facts are the activation inputs derived from a sandbox config.
// They are evaluated once per render and shared by all dialects.
type Facts struct {
	UsesClient       bool
	UsesLanguage     bool
	UsesResources    bool
	UsesLifecycle    bool
	UsesCreateParams bool // language, resources or lifecycle
	UsesCodeRun      bool // language and code
	UsesShellRun     bool
	UsesGitClone     bool // url and path
	UsesGitStatus    bool
	UsesGitBranches  bool
}

// Plan is the activated clause list for one render pass.
type Plan struct {
	Facts   Facts
	Clauses []ClauseID
}

// Has reports whether id is active in the plan.
func (p *Plan) Has(id ClauseID) bool {
	for _, c := range p.Clauses {
		if c == id {
			return true
		}
	}
	return false
}

// Activate evaluates the catalog against cfg. A nil cfg is treated as an
// empty model.
func Activate(cfg *config.Sandbox) *Plan {
	if cfg == nil {
		cfg = &config.Sandbox{}
	}

	plan := &Plan{Facts: evaluate(cfg)}
	for _, c := range catalog {
		if c.active(plan.Facts) {
			plan.Clauses = append(plan.Clauses, c.ID)
		}
	}
	return plan
}

func evaluate(cfg *config.Sandbox) Facts {
	f := Facts{
		UsesClient:      usesClient(cfg.Client),
		UsesLanguage:    config.IsSet(string(cfg.RuntimeLanguage)),
		UsesResources:   usesResources(cfg.Resources),
		UsesLifecycle:   usesLifecycle(cfg.Lifecycle),
		UsesShellRun:    config.IsSet(cfg.ShellCommand),
		UsesGitClone:    usesGitClone(cfg.GitClone),
		UsesGitStatus:   config.IsSet(cfg.GitStatusPath),
		UsesGitBranches: config.IsSet(cfg.GitBranchesPath),
	}
	f.UsesCreateParams = f.UsesLanguage || f.UsesResources || f.UsesLifecycle
	f.UsesCodeRun = f.UsesLanguage && config.IsSet(cfg.CodeToRun)
	return f
}

func usesClient(c *config.Client) bool {
	return c != nil && (config.IsSet(c.APIURL) || config.IsSet(c.Target))
}

func usesResources(r *config.Resources) bool {
	return r != nil && (r.CPU != nil || r.Memory != nil || r.Disk != nil)
}

func usesLifecycle(l *config.Lifecycle) bool {
	return l != nil && (l.AutoStop != nil || l.AutoArchive != nil || l.AutoDelete != nil)
}

func usesGitClone(g *config.GitClone) bool {
	return g != nil && config.IsSet(g.URL) && config.IsSet(g.Path)
}
