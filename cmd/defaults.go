package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/errors"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the playground default sandbox config as TOML",
	Long: `Print the playground default sandbox config as TOML.

The output is a valid config file: save it as sandbox.toml and edit it.`,
	Args: cobra.NoArgs,
	RunE: runDefaults,
}

var defaultsLanguage string

func init() {
	defaultsCmd.Flags().StringVar(&defaultsLanguage, "runtime-language", "", "Also set a runtime language and its sample program")
	rootCmd.AddCommand(defaultsCmd)
}

func runDefaults(cmd *cobra.Command, args []string) error {
	sb := config.Defaults()

	if defaultsLanguage != "" {
		lang, err := parseLanguage("runtime-language", defaultsLanguage)
		if err != nil {
			return err
		}
		sb.RuntimeLanguage = lang
		sb.CodeToRun = config.SampleCode(lang)
	}

	if err := sb.EncodeTOML(cmd.OutOrStdout()); err != nil {
		return errors.OutputError("encode", err)
	}
	return nil
}
