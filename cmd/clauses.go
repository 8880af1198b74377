package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/generator"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/tui"
)

var clausesCmd = &cobra.Command{
	Use:   "clauses [flags] [-- shell command...]",
	Short: "Show which snippet clauses a config activates",
	Args:  shellArgs,
	RunE:  runClauses,
}

var clausesInputs sandboxInputs

func init() {
	addSandboxFlags(clausesCmd, &clausesInputs)
	rootCmd.AddCommand(clausesCmd)
}

func runClauses(cmd *cobra.Command, args []string) error {
	sb, err := clausesInputs.build(cmd, args)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.PlanSummary(generator.Activate(sb)))
	return nil
}
