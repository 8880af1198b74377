package generator

import (
	"fmt"
	"strings"
)

// BaseImageVersion is the Python version of the Debian slim image the
// generated snippets create sandboxes from.
const BaseImageVersion = "3.12"

func init() {
	registerDialect(Python, &dialectDef{
		indent: "    ",
		header: func(names []string) string {
			return "from daytona import " + strings.Join(names, ", ")
		},
		depth:  func(Section) int { return 0 },
		layout: pythonLayout,
		renderers: map[ClauseID]renderFunc{
			ClauseImports:      headerOnly,
			ClauseConfig:       pyConfig,
			ClauseClientInit:   pyClientInit,
			ClauseResources:    pyResources,
			ClauseCreateParams: pyCreateParams,
			ClauseCreateCall:   pyCreateCall,
			ClauseCodeRun:      pyCodeRun,
			ClauseShellRun:     pyShellRun,
			ClauseGitClone:     pyGitClone,
			ClauseGitStatus:    pyGitStatus,
			ClauseGitBranches:  pyGitBranches,
		},
	})
}

// pythonLayout writes flat module-level statements.
func pythonLayout(w *writer, header string, frags []Fragment) {
	w.line(0, header)
	w.blank()
	w.fragments(frags)
}

// headerOnly renders the import clause, whose text is the aggregated header.
func headerOnly(*renderContext) Fragment {
	return Fragment{}
}

// pyKwarg formats one keyword argument line with an optional trailing comment.
func pyKwarg(name, value, comment string) string {
	line := name + "=" + value + ","
	if comment != "" {
		line += "  # " + comment
	}
	return line
}

func pyConfig(rc *renderContext) Fragment {
	var f Fragment
	f.need(SymbolDaytonaConfig)

	var args []string
	for _, arg := range clientArgs(rc.cfg.Client) {
		args = append(args, arg.python+"="+stringLiteral(arg.value))
	}
	f.add(0, "# Define the configuration")
	f.add(0, "config = DaytonaConfig("+strings.Join(args, ", ")+")")
	return f
}

func pyClientInit(rc *renderContext) Fragment {
	var f Fragment
	f.need(SymbolDaytona)

	arg := ""
	if rc.plan.Facts.UsesClient {
		arg = "config"
	}
	f.add(0, "# Initialize the Daytona client")
	f.add(0, "daytona = Daytona("+arg+")")
	return f
}

func pyResources(rc *renderContext) Fragment {
	var f Fragment
	f.need(SymbolResources)

	r := rc.cfg.Resources
	f.add(0, "# Create a Sandbox with custom resources")
	f.add(0, "resources = Resources(")
	if r.CPU != nil {
		f.add(1, pyKwarg("cpu", fmt.Sprint(*r.CPU), cpuComment(*r.CPU)))
	}
	if r.Memory != nil {
		f.add(1, pyKwarg("memory", fmt.Sprint(*r.Memory), memoryComment(*r.Memory)))
	}
	if r.Disk != nil {
		f.add(1, pyKwarg("disk", fmt.Sprint(*r.Disk), diskComment(*r.Disk)))
	}
	f.add(0, ")")
	return f
}

func pyCreateParams(rc *renderContext) Fragment {
	var f Fragment
	f.need(SymbolCreateSandboxFromImageParams, SymbolImage)

	f.add(0, "# Configure the Sandbox")
	f.add(0, "params = CreateSandboxFromImageParams(")
	f.add(1, pyKwarg("image", "Image.debian_slim("+stringLiteral(BaseImageVersion)+")", ""))
	if rc.plan.Facts.UsesResources {
		f.add(1, pyKwarg("resources", "resources", ""))
	}
	if rc.plan.Facts.UsesLanguage {
		f.add(1, pyKwarg("language", stringLiteral(string(rc.cfg.RuntimeLanguage)), ""))
	}
	if l := rc.cfg.Lifecycle; l != nil {
		if l.AutoStop != nil {
			f.add(1, pyKwarg("auto_stop_interval", fmt.Sprint(*l.AutoStop), autoStopComment(*l.AutoStop)))
		}
		if l.AutoArchive != nil {
			f.add(1, pyKwarg("auto_archive_interval", fmt.Sprint(*l.AutoArchive), autoArchiveComment(*l.AutoArchive)))
		}
		if l.AutoDelete != nil {
			f.add(1, pyKwarg("auto_delete_interval", fmt.Sprint(*l.AutoDelete), autoDeleteComment(*l.AutoDelete)))
		}
	}
	f.add(0, ")")
	return f
}

func pyCreateCall(rc *renderContext) Fragment {
	var f Fragment

	arg := ""
	if rc.plan.Has(ClauseCreateParams) {
		arg = "params"
	}
	f.add(0, "# Create the Sandbox instance")
	f.add(0, "sandbox = daytona.create("+arg+")")
	f.add(0, `print(f"Sandbox created: {sandbox.id}")`)
	return f
}

func pyCodeRun(rc *renderContext) Fragment {
	var f Fragment

	f.add(0, "# Run code securely inside the Sandbox")
	f.embed(0, "code_response = sandbox.process.code_run(", pythonCodeLiteral(rc.cfg.CodeToRun), ")")
	f.add(0, "if code_response.exit_code != 0:")
	f.add(1, `print(f"Error: {code_response.exit_code} {code_response.result}")`)
	f.add(0, "else:")
	f.add(1, "print(code_response.result)")
	return f
}

func pyShellRun(rc *renderContext) Fragment {
	var f Fragment

	f.add(0, "# Execute shell commands")
	f.add(0, "exec_response = sandbox.process.exec("+stringLiteral(rc.cfg.ShellCommand)+")")
	f.add(0, "print(exec_response.result)")
	return f
}

func pyGitClone(rc *renderContext) Fragment {
	var f Fragment

	g := rc.cfg.GitClone
	f.add(0, "# Clone a Git repository into the Sandbox")
	f.add(0, "sandbox.git.clone(")
	for _, arg := range gitCloneArgs(g) {
		f.add(1, pyKwarg(arg.python, stringLiteral(arg.value), ""))
	}
	f.add(0, ")")
	return f
}

func pyGitStatus(rc *renderContext) Fragment {
	var f Fragment

	f.add(0, "# Get the Git repository status")
	f.add(0, "status = sandbox.git.status("+stringLiteral(rc.cfg.GitStatusPath)+")")
	f.add(0, `print(f"Current branch: {status.current_branch}")`)
	return f
}

func pyGitBranches(rc *renderContext) Fragment {
	var f Fragment

	f.add(0, "# List the repository branches")
	f.add(0, "branches = sandbox.git.branches("+stringLiteral(rc.cfg.GitBranchesPath)+")")
	f.add(0, "print(branches.branches)")
	return f
}
