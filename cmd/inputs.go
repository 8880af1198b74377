package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/generator"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/logging"
)

// sandboxInputs holds the flags that describe a sandbox configuration.
// Commands that render a configuration each own one.
type sandboxInputs struct {
	configPath  string
	useDefaults bool

	runtimeLanguage string
	cpu             int
	memory          int
	disk            int
	autoStop        int
	autoArchive     int
	autoDelete      int
	code            string
	codeFile        string
	sampleCode      bool

	gitURL      string
	gitPath     string
	gitBranch   string
	gitCommit   string
	gitUsername string
	gitPassword string
	gitStatus   string
	gitBranches string

	apiURL string
	target string
}

func addSandboxFlags(cmd *cobra.Command, in *sandboxInputs) {
	f := cmd.Flags()
	f.StringVarP(&in.configPath, "config", "c", "", "Sandbox config file (.toml, .yaml, .yml or .json)")
	f.BoolVar(&in.useDefaults, "defaults", false, "Start from the playground defaults (2 CPU, 4 GiB, 8 GiB, 15/7/-1 minutes)")

	f.StringVar(&in.runtimeLanguage, "runtime-language", "", "Sandbox runtime language (python, typescript, javascript)")
	f.IntVar(&in.cpu, "cpu", 0, "CPU cores")
	f.IntVar(&in.memory, "memory", 0, "Memory in GiB")
	f.IntVar(&in.disk, "disk", 0, "Disk in GiB")
	f.IntVar(&in.autoStop, "auto-stop", 0, "Auto-stop interval in minutes (0 disables auto-stop)")
	f.IntVar(&in.autoArchive, "auto-archive", 0, "Auto-archive interval in minutes (0 means the 30 day maximum)")
	f.IntVar(&in.autoDelete, "auto-delete", 0, "Auto-delete interval in minutes (0 deletes on stop, -1 disables)")
	f.StringVar(&in.code, "code", "", "Code to run with the runtime language")
	f.StringVar(&in.codeFile, "code-file", "", "Read the code to run from a file (- for stdin)")
	f.BoolVar(&in.sampleCode, "sample-code", false, "Run the sample program for the runtime language")

	f.StringVar(&in.gitURL, "git-url", "", "Repository URL to clone")
	f.StringVar(&in.gitPath, "git-path", "", "Path to clone the repository into")
	f.StringVar(&in.gitBranch, "git-branch", "", "Branch to clone")
	f.StringVar(&in.gitCommit, "git-commit", "", "Commit to check out after cloning")
	f.StringVar(&in.gitUsername, "git-username", "", "Username for the clone")
	f.StringVar(&in.gitPassword, "git-password", "", "Password or token for the clone")
	f.StringVar(&in.gitStatus, "git-status", "", "Repository path to report git status for")
	f.StringVar(&in.gitBranches, "git-branches", "", "Repository path to list branches for")

	f.StringVar(&in.apiURL, "api-url", "", "Daytona API URL for the client configuration")
	f.StringVar(&in.target, "target", "", "Daytona target region for the client configuration")

	cmd.MarkFlagsMutuallyExclusive("code", "code-file", "sample-code")
}

// build assembles the sandbox model. Layers, lowest first: playground
// defaults (with --defaults), the discovered config file, flags, and the
// shell command after "--".
func (in *sandboxInputs) build(cmd *cobra.Command, args []string) (*config.Sandbox, error) {
	sb := &config.Sandbox{}
	if in.useDefaults {
		sb = config.Defaults()
	}

	if path := config.DiscoverConfigFile(in.configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, errors.ConfigError("failed to load sandbox config", err)
		}
		logging.Debug("loaded sandbox config", "path", path)
		sb = sb.Overlay(loaded)
	}

	overrides, err := in.flagOverrides(cmd)
	if err != nil {
		return nil, err
	}
	sb = sb.Overlay(overrides)

	if dash := cmd.ArgsLenAtDash(); dash >= 0 && len(args) > dash {
		sb.ShellCommand = shellquote.Join(args[dash:]...)
	}

	if in.sampleCode {
		if !config.IsSet(string(sb.RuntimeLanguage)) {
			return nil, errors.ValidationError("--sample-code needs a runtime language")
		}
		sb.CodeToRun = config.SampleCode(sb.RuntimeLanguage)
	}

	warnInactive(sb)
	return sb, nil
}

// flagOverrides returns a model holding only the values given on the
// command line.
func (in *sandboxInputs) flagOverrides(cmd *cobra.Command) (*config.Sandbox, error) {
	f := cmd.Flags()
	sb := &config.Sandbox{
		CodeToRun:       in.code,
		GitStatusPath:   in.gitStatus,
		GitBranchesPath: in.gitBranches,
	}

	if f.Changed("runtime-language") {
		lang, err := parseLanguage("runtime-language", in.runtimeLanguage)
		if err != nil {
			return nil, err
		}
		sb.RuntimeLanguage = lang
	}

	var resources config.Resources
	var lifecycle config.Lifecycle
	numbers := []struct {
		flag  string
		value int
		min   int
		dst   **int
	}{
		{"cpu", in.cpu, 1, &resources.CPU},
		{"memory", in.memory, 1, &resources.Memory},
		{"disk", in.disk, 1, &resources.Disk},
		{"auto-stop", in.autoStop, 0, &lifecycle.AutoStop},
		{"auto-archive", in.autoArchive, 0, &lifecycle.AutoArchive},
		{"auto-delete", in.autoDelete, -1, &lifecycle.AutoDelete},
	}
	for _, n := range numbers {
		if !f.Changed(n.flag) {
			continue
		}
		if n.value < n.min {
			return nil, errors.InvalidFlag(n.flag, strconv.Itoa(n.value), fmt.Sprintf("must be at least %d", n.min))
		}
		*n.dst = config.Int(n.value)
	}
	if resources != (config.Resources{}) {
		sb.Resources = &resources
	}
	if lifecycle != (config.Lifecycle{}) {
		sb.Lifecycle = &lifecycle
	}

	if f.Changed("code-file") {
		code, err := readCode(cmd, in.codeFile)
		if err != nil {
			return nil, err
		}
		sb.CodeToRun = code
	}

	clone := config.GitClone{
		URL:      in.gitURL,
		Path:     in.gitPath,
		Branch:   in.gitBranch,
		CommitID: in.gitCommit,
		Username: in.gitUsername,
		Password: in.gitPassword,
	}
	if clone != (config.GitClone{}) {
		sb.GitClone = &clone
	}

	client := config.Client{APIURL: in.apiURL, Target: in.target}
	if client != (config.Client{}) {
		sb.Client = &client
	}

	return sb, nil
}

// readCode reads a program from path, or from stdin when path is "-".
// Trailing newlines are dropped.
func readCode(cmd *cobra.Command, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrap(errors.ExitValidationError, "failed to read --code-file", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// warnInactive points out settings that will not appear in the snippets
// because a setting they depend on is missing.
func warnInactive(sb *config.Sandbox) {
	plan := generator.Activate(sb)

	if config.IsSet(sb.CodeToRun) && !plan.Facts.UsesCodeRun {
		logWarning("Code to run is ignored without a runtime language")
	}
	if g := sb.GitClone; g != nil && *g != (config.GitClone{}) && !plan.Facts.UsesGitClone {
		logWarning("Git clone needs both a URL and a path; skipping it")
	}
}
