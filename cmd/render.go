package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/export"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/generator"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/monitor"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] [-- shell command...]",
	Short: "Render the SDK snippets",
	Long: `Render the Python and TypeScript SDK snippets for a sandbox configuration.

Arguments after -- become the shell command the snippet executes.

With --watch the snippets are rendered again each time the config file
changes, until interrupted.`,
	Example: `  forage-snippets render --defaults --runtime-language python --sample-code
  forage-snippets render -c sandbox.yaml --lang ts -- ls -la /home/daytona
  forage-snippets render --git-url https://github.com/daytonaio/sdk --git-path sdk -o snippets
  forage-snippets render -c sandbox.toml -o snippets --watch`,
	Args: shellArgs,
	RunE: runRender,
}

var (
	renderInputs   sandboxInputs
	renderOutput   outputOptions
	renderOutDir   string
	renderBaseName string
	renderWatch    bool
)

func init() {
	addSandboxFlags(renderCmd, &renderInputs)
	addOutputFlags(renderCmd, &renderOutput)
	renderCmd.Flags().StringVarP(&renderOutDir, "out-dir", "o", "", "Write snippet files into this directory instead of stdout")
	renderCmd.Flags().StringVar(&renderBaseName, "name", export.DefaultBaseName, "File name stem used with --out-dir")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Render again whenever the config file changes")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderWatch {
		return watchRender(cmd, args)
	}
	return renderOnce(cmd, args)
}

func renderOnce(cmd *cobra.Command, args []string) error {
	sb, err := renderInputs.build(cmd, args)
	if err != nil {
		return err
	}

	dialects, opts, err := renderOutput.resolve()
	if err != nil {
		return err
	}

	out := generator.Render(sb, opts)
	logging.Debug("rendered snippets", "clauses", out.Clauses, "dialects", dialects)

	if renderOutDir == "" {
		printSnippets(cmd.OutOrStdout(), out, dialects)
		return nil
	}

	paths, err := export.Write(renderOutDir, renderBaseName, out, dialects)
	if err != nil {
		return errors.OutputError("write", err)
	}
	for _, p := range paths {
		logSuccess("Wrote %s", p)
	}
	return nil
}

// outputOptions holds the flags that shape the rendered text.
type outputOptions struct {
	lang   string
	indent string
}

func addOutputFlags(cmd *cobra.Command, o *outputOptions) {
	cmd.Flags().StringVar(&o.lang, "lang", "all", "Dialect to render (python, typescript, all)")
	cmd.Flags().StringVar(&o.indent, "indent", "", "Indent unit: tab or a number of spaces (default: 4 spaces for Python, tab for TypeScript)")
}

func (o *outputOptions) resolve() ([]generator.Dialect, generator.Options, error) {
	dialects, err := parseDialects(o.lang)
	if err != nil {
		return nil, generator.Options{}, err
	}
	indent, err := parseIndent(o.indent)
	if err != nil {
		return nil, generator.Options{}, err
	}
	return dialects, generator.Options{Indent: indent}, nil
}

// watchRender renders once, then again after every change to the config
// file. Failed renders are reported and the watch goes on.
func watchRender(cmd *cobra.Command, args []string) error {
	path := config.DiscoverConfigFile(renderInputs.configPath)
	if path == "" {
		return errors.ValidationError("--watch needs a config file (--config, " + config.EnvConfigPath + " or ./sandbox.toml)")
	}
	if renderInputs.codeFile == "-" {
		return errors.ValidationError("--watch cannot read --code-file from stdin")
	}

	mon, err := monitor.New(path)
	if err != nil {
		return errors.ConfigError("failed to watch config file", err)
	}
	defer mon.Close()

	if err := renderOnce(cmd, args); err != nil {
		return err
	}
	logInfo("Watching %s for changes (Ctrl+C to stop)", mon.Path())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = mon.Run(ctx, func() {
		logging.Debug("config file changed", "path", mon.Path())
		if err := renderOnce(cmd, args); err != nil {
			logError("Render failed: %v", err)
		}
	})
	if err == context.Canceled {
		logInfo("Stopped watching")
		return nil
	}
	return err
}
