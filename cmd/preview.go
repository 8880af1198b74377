package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/generator"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview [flags] [-- shell command...]",
	Short: "Browse the rendered snippets in the terminal",
	Args:  shellArgs,
	RunE:  runPreview,
}

var (
	previewInputs sandboxInputs
	previewOutput outputOptions
)

func init() {
	addSandboxFlags(previewCmd, &previewInputs)
	addOutputFlags(previewCmd, &previewOutput)
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	sb, err := previewInputs.build(cmd, args)
	if err != nil {
		return err
	}

	dialects, opts, err := previewOutput.resolve()
	if err != nil {
		return err
	}

	if err := tui.RunPreview(generator.Render(sb, opts), dialects); err != nil {
		return errors.PreviewError(err)
	}
	return nil
}
