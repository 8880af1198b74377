package generator

import (
	"fmt"
	"strings"
)

func init() {
	registerDialect(TypeScript, &dialectDef{
		indent: "\t",
		header: func(names []string) string {
			return "import { " + strings.Join(names, ", ") + ` } from "@daytonaio/sdk"`
		},
		depth:  typeScriptDepth,
		layout: typeScriptLayout,
		renderers: map[ClauseID]renderFunc{
			ClauseImports:      headerOnly,
			ClauseConfig:       tsConfig,
			ClauseClientInit:   tsClientInit,
			ClauseResources:    tsResources,
			ClauseCreateParams: tsCreateParams,
			ClauseCreateCall:   tsCreateCall,
			ClauseCodeRun:      tsCodeRun,
			ClauseShellRun:     tsShellRun,
			ClauseGitClone:     tsGitClone,
			ClauseGitStatus:    tsGitStatus,
			ClauseGitBranches:  tsGitBranches,
		},
	})
}

// typeScriptDepth nests client setup in main and usage in main's try block.
func typeScriptDepth(s Section) int {
	switch s {
	case SectionClient:
		return 1
	case SectionUsage:
		return 2
	default:
		return 0
	}
}

// typeScriptLayout wraps the snippet in an async entry point with a single
// guarded block around everything that touches the sandbox.
func typeScriptLayout(w *writer, header string, frags []Fragment) {
	w.line(0, header)
	w.blank()
	if w.fragments(bySection(frags, SectionPreamble)) {
		w.blank()
	}
	w.line(0, "async function main() {")
	w.fragments(bySection(frags, SectionClient))
	w.blank()
	w.line(1, "try {")
	w.fragments(bySection(frags, SectionUsage))
	w.line(1, "} catch (error) {")
	w.line(2, `console.error("Sandbox flow error:", error)`)
	w.line(1, "}")
	w.line(0, "}")
	w.blank()
	w.line(0, "main().catch(console.error)")
}

// tsProp formats one object literal property with an optional trailing comment.
func tsProp(name, value, comment string) string {
	line := name + ": " + value + ","
	if comment != "" {
		line += " // " + comment
	}
	return line
}

func tsConfig(rc *renderContext) Fragment {
	var f Fragment
	f.need(SymbolDaytonaConfig)

	f.add(0, "// Define the configuration")
	f.add(0, "const config: DaytonaConfig = {")
	for _, arg := range clientArgs(rc.cfg.Client) {
		f.add(1, tsProp(arg.typescript, stringLiteral(arg.value), ""))
	}
	f.add(0, "}")
	return f
}

func tsClientInit(rc *renderContext) Fragment {
	var f Fragment
	f.need(SymbolDaytona)

	arg := ""
	if rc.plan.Facts.UsesClient {
		arg = "config"
	}
	f.add(0, "// Initialize the Daytona client")
	f.add(0, "const daytona = new Daytona("+arg+")")
	return f
}

func tsResources(rc *renderContext) Fragment {
	var f Fragment
	f.need(SymbolResources)

	r := rc.cfg.Resources
	f.add(0, "// Create a Sandbox with custom resources")
	f.add(0, "const resources: Resources = {")
	if r.CPU != nil {
		f.add(1, tsProp("cpu", fmt.Sprint(*r.CPU), cpuComment(*r.CPU)))
	}
	if r.Memory != nil {
		f.add(1, tsProp("memory", fmt.Sprint(*r.Memory), memoryComment(*r.Memory)))
	}
	if r.Disk != nil {
		f.add(1, tsProp("disk", fmt.Sprint(*r.Disk), diskComment(*r.Disk)))
	}
	f.add(0, "}")
	return f
}

func tsCreateParams(rc *renderContext) Fragment {
	var f Fragment
	f.need(SymbolCreateSandboxFromImageParams, SymbolImage)

	f.add(0, "// Configure the Sandbox")
	f.add(0, "const params: CreateSandboxFromImageParams = {")
	f.add(1, tsProp("image", "Image.debianSlim("+stringLiteral(BaseImageVersion)+")", ""))
	if rc.plan.Facts.UsesResources {
		f.add(1, "resources,")
	}
	if rc.plan.Facts.UsesLanguage {
		f.add(1, tsProp("language", stringLiteral(string(rc.cfg.RuntimeLanguage)), ""))
	}
	if l := rc.cfg.Lifecycle; l != nil {
		if l.AutoStop != nil {
			f.add(1, tsProp("autoStopInterval", fmt.Sprint(*l.AutoStop), autoStopComment(*l.AutoStop)))
		}
		if l.AutoArchive != nil {
			f.add(1, tsProp("autoArchiveInterval", fmt.Sprint(*l.AutoArchive), autoArchiveComment(*l.AutoArchive)))
		}
		if l.AutoDelete != nil {
			f.add(1, tsProp("autoDeleteInterval", fmt.Sprint(*l.AutoDelete), autoDeleteComment(*l.AutoDelete)))
		}
	}
	f.add(0, "}")
	return f
}

func tsCreateCall(rc *renderContext) Fragment {
	var f Fragment

	arg := ""
	if rc.plan.Has(ClauseCreateParams) {
		arg = "params"
	}
	f.add(0, "// Create the Sandbox instance")
	f.add(0, "const sandbox = await daytona.create("+arg+")")
	f.add(0, "console.log(`Sandbox created: ${sandbox.id}`)")
	return f
}

func tsCodeRun(rc *renderContext) Fragment {
	var f Fragment

	f.add(0, "// Run code securely inside the Sandbox")
	f.embed(0, "const codeResponse = await sandbox.process.codeRun(", templateCodeLiteral(rc.cfg.CodeToRun), ")")
	f.add(0, "if (codeResponse.exitCode !== 0) {")
	f.add(1, `console.error("Error running code:", codeResponse.exitCode, codeResponse.result)`)
	f.add(0, "} else {")
	f.add(1, "console.log(codeResponse.result)")
	f.add(0, "}")
	return f
}

func tsShellRun(rc *renderContext) Fragment {
	var f Fragment

	f.add(0, "// Execute shell commands")
	f.add(0, "const execResponse = await sandbox.process.executeCommand("+stringLiteral(rc.cfg.ShellCommand)+")")
	f.add(0, "console.log(execResponse.result)")
	return f
}

// tsGitClone passes the clone options positionally, stopping after the
// last one that is set.
func tsGitClone(rc *renderContext) Fragment {
	var f Fragment

	f.add(0, "// Clone a Git repository into the Sandbox")
	f.add(0, "await sandbox.git.clone(")
	for _, arg := range gitClonePositional(rc.cfg.GitClone) {
		f.add(1, arg+",")
	}
	f.add(0, ")")
	return f
}

func tsGitStatus(rc *renderContext) Fragment {
	var f Fragment

	f.add(0, "// Get the Git repository status")
	f.add(0, "const status = await sandbox.git.status("+stringLiteral(rc.cfg.GitStatusPath)+")")
	f.add(0, "console.log(`Current branch: ${status.currentBranch}`)")
	return f
}

func tsGitBranches(rc *renderContext) Fragment {
	var f Fragment

	f.add(0, "// List the repository branches")
	f.add(0, "const branches = await sandbox.git.branches("+stringLiteral(rc.cfg.GitBranchesPath)+")")
	f.add(0, "console.log(branches.branches)")
	return f
}
