// Package tui provides terminal user interface components for forage-snippets.
//
// This package uses the Bubble Tea framework to display rendered snippets.
//
// # Snippet Preview
//
// The preview shows one tab per dialect with a scrollable viewport:
//
//	out := generator.Render(cfg, generator.Options{})
//	if err := tui.RunPreview(out, generator.Dialects()); err != nil {
//	    // handle error
//	}
//
// # Preview Features
//
//   - One tab per dialect, switched with tab/shift+tab, arrows or h/l
//   - Scrolling with the viewport keys (j/k, arrows, pgup/pgdown)
//   - The active clause list shown above the snippet
//   - q, esc or ctrl+c to quit
//
// # Plan Summary
//
// PlanSummary renders the clause catalog with the active clauses marked,
// for non-interactive output.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
