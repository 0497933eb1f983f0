package tui

import (
	"fmt"
	"strings"

	"incomebook/internal/cli"
	"incomebook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderRecordsTab(cw int) string {
	t := theme.Active

	if len(a.records) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).
			Render("  No records yet. Press [a] to add one.")
	}

	// Keep the cursor visible inside the page window.
	offset := a.recState.offset
	if a.recState.cursor < offset {
		offset = a.recState.cursor
	}
	if a.recState.cursor >= offset+recordsPageSize {
		offset = a.recState.cursor - recordsPageSize + 1
	}

	end := offset + recordsPageSize
	if end > len(a.records) {
		end = len(a.records)
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	descW := cw - 46
	if descW < 10 {
		descW = 10
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-6s %-12s %-12s %12s  %s",
		"ID", "Date", "Category", "Amount", "Description")))
	b.WriteString("\n")

	for i := offset; i < end; i++ {
		r := a.records[i]
		id := ""
		if r.ID != nil {
			id = fmt.Sprintf("%d", *r.ID)
		}
		desc := r.Description
		if len(desc) > descW {
			desc = desc[:descW-1] + "…"
		}
		line := fmt.Sprintf("  %-6s %-12s %-12s %12s  %s",
			id,
			r.Date.Format("2006-01-02"),
			r.Category,
			cli.FormatCurrency(r.Amount, a.symbol),
			desc)

		if i == a.recState.cursor {
			b.WriteString(selStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d-%d of %d  [j/k] move  [x] delete",
		offset+1, end, len(a.records))))

	return b.String()
}
