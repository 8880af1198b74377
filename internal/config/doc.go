// Package config provides the sandbox configuration model and its loading.
//
// # Sandbox Model
//
// Sandbox is the partially filled description of a remote sandbox that
// drives snippet generation. Every field is optional:
//
//	type Sandbox struct {
//	    RuntimeLanguage Language   // "python", "typescript" or "javascript"
//	    Resources       *Resources // cpu, memory (GiB), disk (GiB)
//	    Lifecycle       *Lifecycle // autoStop, autoArchive, autoDelete (minutes)
//	    CodeToRun       string     // program run with the runtime language
//	    ShellCommand    string     // command run through the process API
//	    GitClone        *GitClone  // url and path required, rest optional
//	    GitStatusPath   string
//	    GitBranchesPath string
//	    Client          *Client    // apiUrl, target for the SDK constructor
//	}
//
// Optional numbers are pointers so that an explicit 0 (for example
// autoStop = 0, which disables auto-stop) is distinct from "unset".
//
// # Loading
//
// Load reads TOML, YAML or JSON, picked by file extension. The document is
// first validated against an embedded JSON schema, so unknown keys and
// wrongly typed values are reported together before decoding:
//
//	sb, err := config.Load("sandbox.toml")
//
// DiscoverConfigFile resolves the path from an explicit argument, the
// FORAGE_SNIPPETS_CONFIG environment variable, or ./sandbox.toml.
//
// # Defaults
//
// Defaults returns the playground starting point (2 CPU, 4 GiB memory,
// 8 GiB disk, stop after 15 minutes, archive after 7, never delete).
package config
