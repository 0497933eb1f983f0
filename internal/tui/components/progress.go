package components

import (
	"fmt"

	"incomebook/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForStatus maps a forecast status to its theme color.
func ColorForStatus(status string) lipgloss.Color {
	t := theme.Active
	switch status {
	case "danger":
		return t.Red
	case "warning":
		return t.Orange
	default:
		return t.Green
	}
}

// BudgetBar renders the predicted-vs-budget utilization as a colored bar
// with a percentage.
func BudgetBar(predicted, budget float64, width int) string {
	t := theme.Active
	if budget <= 0 || width < 4 {
		return ""
	}

	pct := predicted / budget
	shown := pct
	if shown > 1 {
		shown = 1
	}
	if shown < 0 {
		shown = 0
	}

	color := t.Green
	switch {
	case predicted > budget:
		color = t.Red
	case predicted > budget*0.9:
		color = t.Orange
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return bar.ViewAs(shown) + " " + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}
