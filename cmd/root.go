package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "forage-snippets",
	Short: "Daytona SDK snippet generator for sandbox configurations",
	Long: `forage-snippets turns a sandbox configuration into copy-pasteable
Daytona SDK snippets, one in Python and one in TypeScript.

Both snippets are built from the same clauses:
  - Client configuration and initialization
  - Sandbox resources, lifecycle and creation
  - Code and shell command execution
  - Git clone, status and branch listing

The configuration comes from a TOML, YAML or JSON file (--config,
$FORAGE_SNIPPETS_CONFIG or ./sandbox.toml) and command-line flags.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
