package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/generator"
)

var (
	activeClauseStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	inactiveClauseStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// PlanSummary lists every catalog clause in render order, marking the ones
// active in plan.
func PlanSummary(plan *generator.Plan) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Snippet Clauses"))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n")

	for _, c := range generator.Catalog() {
		marker, style := "·", inactiveClauseStyle
		if plan.Has(c.ID) {
			marker, style = "✓", activeClauseStyle
		}
		line := fmt.Sprintf("%s %-14s %-9s %s", marker, c.ID, c.Section, c.Description)
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}

	return sb.String()
}
