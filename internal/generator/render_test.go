package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/config"
)

func TestRenderMinimalBaseline(t *testing.T) {
	out := Render(&config.Sandbox{}, Options{})

	wantPython := `from daytona import Daytona

# Initialize the Daytona client
daytona = Daytona()

# Create the Sandbox instance
sandbox = daytona.create()
print(f"Sandbox created: {sandbox.id}")
`
	wantTypeScript := "import { Daytona } from \"@daytonaio/sdk\"\n" +
		"\n" +
		"async function main() {\n" +
		"\t// Initialize the Daytona client\n" +
		"\tconst daytona = new Daytona()\n" +
		"\n" +
		"\ttry {\n" +
		"\t\t// Create the Sandbox instance\n" +
		"\t\tconst sandbox = await daytona.create()\n" +
		"\t\tconsole.log(`Sandbox created: ${sandbox.id}`)\n" +
		"\t} catch (error) {\n" +
		"\t\tconsole.error(\"Sandbox flow error:\", error)\n" +
		"\t}\n" +
		"}\n" +
		"\n" +
		"main().catch(console.error)\n"

	assert.Equal(t, wantPython, out.Python)
	assert.Equal(t, wantTypeScript, out.TypeScript)
	assert.Equal(t, []ClauseID{ClauseImports, ClauseClientInit, ClauseCreateCall}, out.Clauses)
}

func TestRenderNilConfig(t *testing.T) {
	assert.Equal(t, Render(&config.Sandbox{}, Options{}), Render(nil, Options{}))
}

func TestRenderFullPython(t *testing.T) {
	out := Render(fullConfig(), Options{})

	want := `from daytona import Daytona, DaytonaConfig, CreateSandboxFromImageParams, Resources, Image

# Define the configuration
config = DaytonaConfig(api_url="https://app.daytona.io/api", target="us")

# Initialize the Daytona client
daytona = Daytona(config)

# Create a Sandbox with custom resources
resources = Resources(
    cpu=2,  # 2 CPU cores
    memory=4,  # 4GiB RAM
    disk=8,  # 8GiB disk space
)

# Configure the Sandbox
params = CreateSandboxFromImageParams(
    image=Image.debian_slim("3.12"),
    resources=resources,
    language="python",
    auto_stop_interval=15,  # Sandbox will be stopped after 15 minutes
    auto_archive_interval=7,  # Auto-archive after a Sandbox has been stopped for 7 minutes
    auto_delete_interval=-1,  # Auto-delete functionality disabled
)

# Create the Sandbox instance
sandbox = daytona.create(params)
print(f"Sandbox created: {sandbox.id}")

# Run code securely inside the Sandbox
code_response = sandbox.process.code_run("""def greet(name):
    return f"Hello, {name}!"

print(greet("Daytona"))""")
if code_response.exit_code != 0:
    print(f"Error: {code_response.exit_code} {code_response.result}")
else:
    print(code_response.result)

# Execute shell commands
exec_response = sandbox.process.exec("ls -la")
print(exec_response.result)

# Clone a Git repository into the Sandbox
sandbox.git.clone(
    url="https://github.com/daytonaio/sdk.git",
    path="workspace/repo",
    branch="main",
    commit_id="abc123",
    username="octo",
    password="s3cret",
)

# Get the Git repository status
status = sandbox.git.status("workspace/repo")
print(f"Current branch: {status.current_branch}")

# List the repository branches
branches = sandbox.git.branches("workspace/repo")
print(branches.branches)
`
	assert.Equal(t, want, out.Python)
}

func TestRenderFullTypeScript(t *testing.T) {
	cfg := fullConfig()
	cfg.RuntimeLanguage = config.LanguageTypeScript
	cfg.CodeToRun = "const x: number = 1\nconsole.log(`x is ${x}`)"

	out := Render(cfg, Options{Indent: "  "})

	want := "import { Daytona, DaytonaConfig, CreateSandboxFromImageParams, Resources, Image } from \"@daytonaio/sdk\"\n" +
		"\n" +
		"// Define the configuration\n" +
		"const config: DaytonaConfig = {\n" +
		"  apiUrl: \"https://app.daytona.io/api\",\n" +
		"  target: \"us\",\n" +
		"}\n" +
		"\n" +
		"async function main() {\n" +
		"  // Initialize the Daytona client\n" +
		"  const daytona = new Daytona(config)\n" +
		"\n" +
		"  try {\n" +
		"    // Create a Sandbox with custom resources\n" +
		"    const resources: Resources = {\n" +
		"      cpu: 2, // 2 CPU cores\n" +
		"      memory: 4, // 4GiB RAM\n" +
		"      disk: 8, // 8GiB disk space\n" +
		"    }\n" +
		"\n" +
		"    // Configure the Sandbox\n" +
		"    const params: CreateSandboxFromImageParams = {\n" +
		"      image: Image.debianSlim(\"3.12\"),\n" +
		"      resources,\n" +
		"      language: \"typescript\",\n" +
		"      autoStopInterval: 15, // Sandbox will be stopped after 15 minutes\n" +
		"      autoArchiveInterval: 7, // Auto-archive after a Sandbox has been stopped for 7 minutes\n" +
		"      autoDeleteInterval: -1, // Auto-delete functionality disabled\n" +
		"    }\n" +
		"\n" +
		"    // Create the Sandbox instance\n" +
		"    const sandbox = await daytona.create(params)\n" +
		"    console.log(`Sandbox created: ${sandbox.id}`)\n" +
		"\n" +
		"    // Run code securely inside the Sandbox\n" +
		"    const codeResponse = await sandbox.process.codeRun(`const x: number = 1\n" +
		"console.log(\\`x is \\${x}\\`)`)\n" +
		"    if (codeResponse.exitCode !== 0) {\n" +
		"      console.error(\"Error running code:\", codeResponse.exitCode, codeResponse.result)\n" +
		"    } else {\n" +
		"      console.log(codeResponse.result)\n" +
		"    }\n" +
		"\n" +
		"    // Execute shell commands\n" +
		"    const execResponse = await sandbox.process.executeCommand(\"ls -la\")\n" +
		"    console.log(execResponse.result)\n" +
		"\n" +
		"    // Clone a Git repository into the Sandbox\n" +
		"    await sandbox.git.clone(\n" +
		"      \"https://github.com/daytonaio/sdk.git\",\n" +
		"      \"workspace/repo\",\n" +
		"      \"main\",\n" +
		"      \"abc123\",\n" +
		"      \"octo\",\n" +
		"      \"s3cret\",\n" +
		"    )\n" +
		"\n" +
		"    // Get the Git repository status\n" +
		"    const status = await sandbox.git.status(\"workspace/repo\")\n" +
		"    console.log(`Current branch: ${status.currentBranch}`)\n" +
		"\n" +
		"    // List the repository branches\n" +
		"    const branches = await sandbox.git.branches(\"workspace/repo\")\n" +
		"    console.log(branches.branches)\n" +
		"  } catch (error) {\n" +
		"    console.error(\"Sandbox flow error:\", error)\n" +
		"  }\n" +
		"}\n" +
		"\n" +
		"main().catch(console.error)\n"

	assert.Equal(t, want, out.TypeScript)
}

func TestRenderParity(t *testing.T) {
	configs := map[string]*config.Sandbox{
		"empty":     {},
		"full":      fullConfig(),
		"defaults":  config.Defaults(),
		"code only": {CodeToRun: "print stuff"},
		"clone":     {GitClone: &config.GitClone{URL: "u", Path: "p"}},
		"client":    {Client: &config.Client{APIURL: "http://localhost:3000/api"}},
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			plan := Activate(cfg)
			py := compose(Python, plan, cfg, "")
			ts := compose(TypeScript, plan, cfg, "")

			assert.Equal(t, py.clauses, ts.clauses)
			assert.Equal(t, plan.Clauses, py.clauses)
			assert.Equal(t, plan.Clauses, Render(cfg, Options{}).Clauses)
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	cfg := fullConfig()

	first := Render(cfg, Options{})
	second := Render(cfg, Options{})

	assert.Equal(t, first, second)
}

// TestRenderMonotonicToggling flips one field at a time on a baseline where
// sandbox creation parameters are already in play, and checks that exactly
// one clause appears in both snippets.
func TestRenderMonotonicToggling(t *testing.T) {
	baseline := func() *config.Sandbox {
		return &config.Sandbox{
			RuntimeLanguage: config.LanguagePython,
			GitClone:        &config.GitClone{URL: "https://example.com/repo.git"},
		}
	}

	tests := []struct {
		name    string
		toggle  func(*config.Sandbox)
		clause  ClauseID
		python  string
		typescr string
	}{
		{
			name:    "client",
			toggle:  func(c *config.Sandbox) { c.Client = &config.Client{Target: "eu"} },
			clause:  ClauseConfig,
			python:  `config = DaytonaConfig(target="eu")`,
			typescr: `target: "eu",`,
		},
		{
			name:    "resources",
			toggle:  func(c *config.Sandbox) { c.Resources = &config.Resources{CPU: config.Int(1)} },
			clause:  ClauseResources,
			python:  "cpu=1,  # 1 CPU core",
			typescr: "cpu: 1, // 1 CPU core",
		},
		{
			name:    "code",
			toggle:  func(c *config.Sandbox) { c.CodeToRun = "print(1)" },
			clause:  ClauseCodeRun,
			python:  `code_run("""print(1)""")`,
			typescr: "codeRun(`print(1)`)",
		},
		{
			name:    "shell",
			toggle:  func(c *config.Sandbox) { c.ShellCommand = "pwd" },
			clause:  ClauseShellRun,
			python:  `exec("pwd")`,
			typescr: `executeCommand("pwd")`,
		},
		{
			name:    "clone path",
			toggle:  func(c *config.Sandbox) { c.GitClone.Path = "repo" },
			clause:  ClauseGitClone,
			python:  `path="repo",`,
			typescr: `path: "repo",`,
		},
		{
			name:    "git status",
			toggle:  func(c *config.Sandbox) { c.GitStatusPath = "repo" },
			clause:  ClauseGitStatus,
			python:  `git.status("repo")`,
			typescr: `git.status("repo")`,
		},
		{
			name:    "git branches",
			toggle:  func(c *config.Sandbox) { c.GitBranchesPath = "repo" },
			clause:  ClauseGitBranches,
			python:  `git.branches("repo")`,
			typescr: `git.branches("repo")`,
		},
	}

	before := Render(baseline(), Options{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseline()
			tt.toggle(cfg)
			after := Render(cfg, Options{})

			require.Len(t, after.Clauses, len(before.Clauses)+1)
			assert.Subset(t, after.Clauses, before.Clauses)
			assert.Contains(t, after.Clauses, tt.clause)
			assert.NotContains(t, before.Clauses, tt.clause)

			assert.NotContains(t, before.Python, tt.python)
			assert.Contains(t, after.Python, tt.python)
			assert.NotContains(t, before.TypeScript, tt.typescr)
			assert.Contains(t, after.TypeScript, tt.typescr)
		})
	}
}

func TestRenderResourcesWithoutDisk(t *testing.T) {
	cfg := &config.Sandbox{Resources: &config.Resources{CPU: config.Int(2), Memory: config.Int(4)}}

	plan := Activate(cfg)
	require.True(t, plan.Facts.UsesResources)

	rc := &renderContext{cfg: cfg, plan: plan}
	for _, f := range []Fragment{pyResources(rc), tsResources(rc)} {
		// comment, opening line, two entries, closing line
		assert.Len(t, f.Lines, 5)
	}

	out := Render(cfg, Options{})
	assert.Contains(t, out.Python, "cpu=2,  # 2 CPU cores")
	assert.Contains(t, out.Python, "memory=4,  # 4GiB RAM")
	assert.NotContains(t, out.Python, "disk=")
	assert.Contains(t, out.TypeScript, "cpu: 2, // 2 CPU cores")
	assert.Contains(t, out.TypeScript, "memory: 4, // 4GiB RAM")
	assert.NotContains(t, out.TypeScript, "disk:")
	assert.Contains(t, out.Python, "sandbox = daytona.create(params)")
	assert.Contains(t, out.TypeScript, "const sandbox = await daytona.create(params)")
}

func TestRenderCodeWithoutLanguage(t *testing.T) {
	out := Render(&config.Sandbox{CodeToRun: "print stuff"}, Options{})

	assert.NotContains(t, out.Clauses, ClauseCodeRun)
	assert.NotContains(t, out.Python, "code_run")
	assert.NotContains(t, out.Python, "print stuff")
	assert.NotContains(t, out.TypeScript, "codeRun")
	assert.NotContains(t, out.TypeScript, "print stuff")
}

func TestRenderGitCloneRequiredOnly(t *testing.T) {
	cfg := &config.Sandbox{GitClone: &config.GitClone{URL: "u", Path: "p"}}
	rc := &renderContext{cfg: cfg, plan: Activate(cfg)}

	py := pyGitClone(rc)
	ts := tsGitClone(rc)

	// comment, opening line, url, path, closing line
	require.Len(t, py.Lines, 5)
	require.Len(t, ts.Lines, 5)
	assert.Equal(t, `url="u",`, py.Lines[2].Text)
	assert.Equal(t, `path="p",`, py.Lines[3].Text)
	assert.Equal(t, "await sandbox.git.clone(", ts.Lines[1].Text)
	assert.Equal(t, `"u",`, ts.Lines[2].Text)
	assert.Equal(t, `"p",`, ts.Lines[3].Text)

	out := Render(cfg, Options{})
	assert.Contains(t, out.Python, "sandbox.git.clone(\n    url=\"u\",\n    path=\"p\",\n)\n")
	assert.Contains(t, out.TypeScript, "\t\tawait sandbox.git.clone(\n\t\t\t\"u\",\n\t\t\t\"p\",\n\t\t)\n")
	for _, absent := range []string{"branch", "commit", "username", "password", "undefined", "None"} {
		assert.NotContains(t, out.Python, absent)
		assert.NotContains(t, out.TypeScript, absent)
	}
}

func TestRenderGitCloneSparseOptions(t *testing.T) {
	cfg := &config.Sandbox{GitClone: &config.GitClone{URL: "u", Path: "p", Password: "pw"}}
	out := Render(cfg, Options{})

	assert.Contains(t, out.Python, "    path=\"p\",\n    password=\"pw\",\n)")
	assert.Contains(t, out.TypeScript, "clone(\n\t\t\t\"u\",\n\t\t\t\"p\",\n\t\t\tundefined,\n\t\t\tundefined,\n\t\t\tundefined,\n\t\t\t\"pw\",\n\t\t)")
}

func TestGitClonePositional(t *testing.T) {
	tests := []struct {
		name  string
		clone config.GitClone
		want  []string
	}{
		{"required only", config.GitClone{URL: "u", Path: "p"}, []string{`"u"`, `"p"`}},
		{"branch", config.GitClone{URL: "u", Path: "p", Branch: "main"}, []string{`"u"`, `"p"`, `"main"`}},
		{"commit after gap", config.GitClone{URL: "u", Path: "p", CommitID: "abc"}, []string{`"u"`, `"p"`, "undefined", `"abc"`}},
		{"all", config.GitClone{URL: "u", Path: "p", Branch: "b", CommitID: "c", Username: "n", Password: "w"},
			[]string{`"u"`, `"p"`, `"b"`, `"c"`, `"n"`, `"w"`}},
		{"blank trailing option", config.GitClone{URL: "u", Path: "p", Branch: "b", Password: "  "}, []string{`"u"`, `"p"`, `"b"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gitClonePositional(&tt.clone))
		})
	}
}

func TestRenderLifecycleComments(t *testing.T) {
	cfg := &config.Sandbox{Lifecycle: &config.Lifecycle{
		AutoStop:    config.Int(0),
		AutoArchive: config.Int(0),
		AutoDelete:  config.Int(0),
	}}
	out := Render(cfg, Options{})

	assert.Contains(t, out.Python, "auto_stop_interval=0,  # Disables the auto-stop feature")
	assert.Contains(t, out.Python, "auto_archive_interval=0,  # Auto-archive after a Sandbox has been stopped for 30 days")
	assert.Contains(t, out.Python, "auto_delete_interval=0,  # Sandbox will be deleted immediately after stopping")
	assert.Contains(t, out.TypeScript, "autoStopInterval: 0, // Disables the auto-stop feature")
	assert.NotContains(t, out.Python, "resources=")
	assert.NotContains(t, out.Python, "language=")
}

func TestRenderEmbedsCodeVerbatim(t *testing.T) {
	code := "def f():\n    return 1\n\nprint(f())"

	cfg := &config.Sandbox{RuntimeLanguage: config.LanguagePython, CodeToRun: code}
	out := Render(cfg, Options{})

	assert.Contains(t, out.Python, `code_run("""`+code+`""")`)
	assert.Contains(t, out.TypeScript, "\t\tconst codeResponse = await sandbox.process.codeRun(`def f():\n    return 1\n\nprint(f())`)\n")
}

func TestRenderFencesHostileCode(t *testing.T) {
	cfg := &config.Sandbox{
		RuntimeLanguage: config.LanguagePython,
		CodeToRun:       "a = \"\"\"x\"\"\"\nb = '''y'''\nc = `z ${a}`",
	}
	out := Render(cfg, Options{})

	assert.Contains(t, out.Python, `code_run("a = \"\"\"x\"\"\"\nb = '''y'''\nc = `+"`z ${a}`"+`")`)
	assert.Contains(t, out.TypeScript, "codeRun(`a = \"\"\"x\"\"\"\nb = '''y'''\nc = \\`z \\${a}\\``)")
	assertBalanced(t, out.TypeScript)
}

func TestRenderNoTrailingWhitespace(t *testing.T) {
	out := Render(fullConfig(), Options{})

	for _, text := range []string{out.Python, out.TypeScript} {
		assert.True(t, strings.HasSuffix(text, "\n"))
		assert.False(t, strings.HasSuffix(text, "\n\n"))
		assert.NotContains(t, text, "\n\n\n")
		for _, line := range strings.Split(text, "\n") {
			assert.Equal(t, strings.TrimRight(line, " \t"), line)
		}
	}
}

func TestRenderIndentOverride(t *testing.T) {
	cfg := &config.Sandbox{Resources: &config.Resources{CPU: config.Int(4)}}

	out := Render(cfg, Options{Indent: "  "})
	assert.Contains(t, out.Python, "\n  cpu=4,")
	assert.Contains(t, out.TypeScript, "\n  const daytona = new Daytona()\n")
	assert.Contains(t, out.TypeScript, "\n      cpu: 4,")
	assert.NotContains(t, out.TypeScript, "\t")

	def := Render(cfg, Options{})
	assert.Contains(t, def.Python, "\n    cpu=4,")
	assert.Contains(t, def.TypeScript, "\n\t\t\tcpu: 4,")
}

func TestRenderTypeScriptBalanced(t *testing.T) {
	assertBalanced(t, Render(fullConfig(), Options{}).TypeScript)
	assertBalanced(t, Render(config.Defaults(), Options{}).TypeScript)
}

func TestRenderDialect(t *testing.T) {
	cfg := fullConfig()
	out := Render(cfg, Options{})

	for _, d := range Dialects() {
		got, err := RenderDialect(cfg, d, Options{})
		require.NoError(t, err)
		assert.Equal(t, out.Snippet(d), got)
	}

	_, err := RenderDialect(cfg, "cobol", Options{})
	assert.Error(t, err)
}

func TestRegisterDialectRequiresEveryClause(t *testing.T) {
	assert.Panics(t, func() {
		registerDialect("partial", &dialectDef{renderers: map[ClauseID]renderFunc{
			ClauseImports: headerOnly,
		}})
	})
	_, ok := dialects["partial"]
	assert.False(t, ok)
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"python", Python, false},
		{"PY", Python, false},
		{" typescript ", TypeScript, false},
		{"ts", TypeScript, false},
		{"javascript", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDialect(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// assertBalanced checks bracket balance outside string and template literals.
func assertBalanced(t *testing.T, src string) {
	t.Helper()

	var stack []rune
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}
	var quote rune
	escaped := false

	for _, r := range src {
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue
		}
		switch r {
		case '"', '\'', '`':
			quote = r
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
				t.Fatalf("unbalanced %q in:\n%s", r, src)
			}
			stack = stack[:len(stack)-1]
		}
	}
	assert.Zero(t, quote, "unterminated literal")
	assert.Empty(t, stack, "unclosed brackets")
}
