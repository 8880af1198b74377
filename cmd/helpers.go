package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/generator"
	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/logging"
)

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)

var snippetTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("39"))

// shellArgs accepts positional arguments only after "--", where they form
// the shell command.
func shellArgs(cmd *cobra.Command, args []string) error {
	if dash := cmd.ArgsLenAtDash(); dash != 0 && len(args) > 0 {
		return errors.ValidationError(fmt.Sprintf("unexpected argument %q: put the shell command after --", args[0]))
	}
	return nil
}

// parseLanguage validates a runtime language flag value.
func parseLanguage(flag, value string) (config.Language, error) {
	lang := config.Language(strings.ToLower(strings.TrimSpace(value)))
	if !lang.Valid() {
		return "", errors.InvalidFlag(flag, value, "want python, typescript or javascript")
	}
	return lang, nil
}

// parseDialects maps --lang to the dialects to produce.
func parseDialects(value string) ([]generator.Dialect, error) {
	if value == "" || strings.EqualFold(value, "all") {
		return generator.Dialects(), nil
	}
	d, err := generator.ParseDialect(value)
	if err != nil {
		return nil, errors.InvalidFlag("lang", value, "want python, typescript or all")
	}
	return []generator.Dialect{d}, nil
}

// parseIndent maps --indent to an indent unit. Empty keeps each dialect's
// own convention.
func parseIndent(value string) (string, error) {
	value = strings.TrimSpace(value)
	switch value {
	case "":
		return "", nil
	case "tab", `\t`:
		return "\t", nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > 8 {
		return "", errors.InvalidFlag("indent", value, "want tab or 1-8 spaces")
	}
	return strings.Repeat(" ", n), nil
}

// printSnippets writes the snippets for dialects to w, each under a title
// line when there is more than one.
func printSnippets(w io.Writer, out generator.Output, dialects []generator.Dialect) {
	for i, d := range dialects {
		if len(dialects) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, snippetTitleStyle.Render("── "+d.Label()+" ──"))
		}
		fmt.Fprint(w, out.Snippet(d))
	}
}
