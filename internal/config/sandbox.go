package config

import "strings"

// Language is the runtime language of the sandbox.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageTypeScript Language = "typescript"
	LanguageJavaScript Language = "javascript"
)

// Languages lists the runtime languages a sandbox can be created with.
func Languages() []Language {
	return []Language{LanguagePython, LanguageTypeScript, LanguageJavaScript}
}

// Valid reports whether l is one of the supported runtime languages.
func (l Language) Valid() bool {
	for _, known := range Languages() {
		if l == known {
			return true
		}
	}
	return false
}

// Sandbox describes the desired state of a remote sandbox as edited by the
// user. Every field is optional: numbers are pointers and strings are unset
// when empty.
type Sandbox struct {
	RuntimeLanguage Language   `json:"runtimeLanguage,omitempty" toml:"runtimeLanguage,omitempty" yaml:"runtimeLanguage,omitempty"`
	Resources       *Resources `json:"resources,omitempty" toml:"resources,omitempty" yaml:"resources,omitempty"`
	Lifecycle       *Lifecycle `json:"lifecycle,omitempty" toml:"lifecycle,omitempty" yaml:"lifecycle,omitempty"`
	CodeToRun       string     `json:"codeToRun,omitempty" toml:"codeToRun,omitempty" yaml:"codeToRun,omitempty"`
	ShellCommand    string     `json:"shellCommand,omitempty" toml:"shellCommand,omitempty" yaml:"shellCommand,omitempty"`
	GitClone        *GitClone  `json:"gitClone,omitempty" toml:"gitClone,omitempty" yaml:"gitClone,omitempty"`
	GitStatusPath   string     `json:"gitStatusPath,omitempty" toml:"gitStatusPath,omitempty" yaml:"gitStatusPath,omitempty"`
	GitBranchesPath string     `json:"gitBranchesPath,omitempty" toml:"gitBranchesPath,omitempty" yaml:"gitBranchesPath,omitempty"`
	Client          *Client    `json:"client,omitempty" toml:"client,omitempty" yaml:"client,omitempty"`
}

// Resources are the compute resources requested for the sandbox.
// Memory and Disk are in GiB.
type Resources struct {
	CPU    *int `json:"cpu,omitempty" toml:"cpu,omitempty" yaml:"cpu,omitempty"`
	Memory *int `json:"memory,omitempty" toml:"memory,omitempty" yaml:"memory,omitempty"`
	Disk   *int `json:"disk,omitempty" toml:"disk,omitempty" yaml:"disk,omitempty"`
}

// Lifecycle holds the automatic stop/archive/delete intervals, in minutes.
type Lifecycle struct {
	AutoStop    *int `json:"autoStop,omitempty" toml:"autoStop,omitempty" yaml:"autoStop,omitempty"`
	AutoArchive *int `json:"autoArchive,omitempty" toml:"autoArchive,omitempty" yaml:"autoArchive,omitempty"`
	AutoDelete  *int `json:"autoDelete,omitempty" toml:"autoDelete,omitempty" yaml:"autoDelete,omitempty"`
}

// GitClone describes a repository to clone into the sandbox.
// URL and Path are required for the clone to take place; the rest are optional.
type GitClone struct {
	URL      string `json:"url,omitempty" toml:"url,omitempty" yaml:"url,omitempty"`
	Path     string `json:"path,omitempty" toml:"path,omitempty" yaml:"path,omitempty"`
	Branch   string `json:"branch,omitempty" toml:"branch,omitempty" yaml:"branch,omitempty"`
	CommitID string `json:"commitId,omitempty" toml:"commitId,omitempty" yaml:"commitId,omitempty"`
	Username string `json:"username,omitempty" toml:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" toml:"password,omitempty" yaml:"password,omitempty"`
}

// Client holds the client configuration passed to the SDK constructor.
type Client struct {
	APIURL string `json:"apiUrl,omitempty" toml:"apiUrl,omitempty" yaml:"apiUrl,omitempty"`
	Target string `json:"target,omitempty" toml:"target,omitempty" yaml:"target,omitempty"`
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// IsSet reports whether a string field counts as set: non-empty once
// surrounding whitespace is removed.
func IsSet(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Clone returns a deep copy of s.
func (s *Sandbox) Clone() *Sandbox {
	if s == nil {
		return nil
	}
	out := *s
	if s.Resources != nil {
		r := Resources{
			CPU:    cloneInt(s.Resources.CPU),
			Memory: cloneInt(s.Resources.Memory),
			Disk:   cloneInt(s.Resources.Disk),
		}
		out.Resources = &r
	}
	if s.Lifecycle != nil {
		l := Lifecycle{
			AutoStop:    cloneInt(s.Lifecycle.AutoStop),
			AutoArchive: cloneInt(s.Lifecycle.AutoArchive),
			AutoDelete:  cloneInt(s.Lifecycle.AutoDelete),
		}
		out.Lifecycle = &l
	}
	if s.GitClone != nil {
		g := *s.GitClone
		out.GitClone = &g
	}
	if s.Client != nil {
		c := *s.Client
		out.Client = &c
	}
	return &out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	return Int(*p)
}

// Overlay returns a copy of s in which every field set in top replaces the
// corresponding field of s. Resources, lifecycle, git clone and client
// settings are overlaid member by member. Neither input is modified.
func (s *Sandbox) Overlay(top *Sandbox) *Sandbox {
	out := s.Clone()
	if out == nil {
		out = &Sandbox{}
	}
	if top == nil {
		return out
	}

	overlayString((*string)(&out.RuntimeLanguage), string(top.RuntimeLanguage))
	overlayString(&out.CodeToRun, top.CodeToRun)
	overlayString(&out.ShellCommand, top.ShellCommand)
	overlayString(&out.GitStatusPath, top.GitStatusPath)
	overlayString(&out.GitBranchesPath, top.GitBranchesPath)

	if r := top.Resources; r != nil {
		if out.Resources == nil {
			out.Resources = &Resources{}
		}
		overlayInt(&out.Resources.CPU, r.CPU)
		overlayInt(&out.Resources.Memory, r.Memory)
		overlayInt(&out.Resources.Disk, r.Disk)
	}
	if l := top.Lifecycle; l != nil {
		if out.Lifecycle == nil {
			out.Lifecycle = &Lifecycle{}
		}
		overlayInt(&out.Lifecycle.AutoStop, l.AutoStop)
		overlayInt(&out.Lifecycle.AutoArchive, l.AutoArchive)
		overlayInt(&out.Lifecycle.AutoDelete, l.AutoDelete)
	}
	if g := top.GitClone; g != nil {
		if out.GitClone == nil {
			out.GitClone = &GitClone{}
		}
		overlayString(&out.GitClone.URL, g.URL)
		overlayString(&out.GitClone.Path, g.Path)
		overlayString(&out.GitClone.Branch, g.Branch)
		overlayString(&out.GitClone.CommitID, g.CommitID)
		overlayString(&out.GitClone.Username, g.Username)
		overlayString(&out.GitClone.Password, g.Password)
	}
	if c := top.Client; c != nil {
		if out.Client == nil {
			out.Client = &Client{}
		}
		overlayString(&out.Client.APIURL, c.APIURL)
		overlayString(&out.Client.Target, c.Target)
	}
	return out
}

func overlayString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func overlayInt(dst **int, v *int) {
	if v != nil {
		*dst = Int(*v)
	}
}
