package tui

import (
	"fmt"
	"sort"
	"strings"

	"incomebook/internal/cli"
	"incomebook/internal/tui/components"
	"incomebook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	s := a.summary
	var b strings.Builder

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Hint string }{
		{"Total", cli.FormatCurrency(s.TotalIncome, a.symbol),
			fmt.Sprintf("%s records", cli.FormatNumber(int64(s.RecordCount)))},
		{"This Year", cli.FormatCurrency(s.YearlyIncome, a.symbol), ""},
		{"Last 30 Days", cli.FormatCurrency(s.MonthlyIncome, a.symbol), ""},
		{"Daily Average", cli.FormatCurrency(s.DailyAverage, a.symbol), ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Daily income chart
	if len(a.trendVals) > 0 {
		labels := make([]string, len(a.trendDates))
		for i, d := range a.trendDates {
			if len(d) >= 10 {
				labels[i] = d[5:] // MM-DD
			} else {
				labels[i] = d
			}
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Daily Income (%dd)", a.days),
			components.BarChart(a.trendVals, labels, t.Blue, components.CardInnerWidth(cw), 8),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Category split + forecast
	halves := components.LayoutRow(cw, 2)

	b.WriteString(components.CardRow([]string{
		components.ContentCard("Categories", a.renderCategorySplit(components.CardInnerWidth(halves[0])), halves[0]),
		components.ContentCard("Forecast", a.renderForecastBody(components.CardInnerWidth(halves[1])), halves[1]),
	}))

	return b.String()
}

func (a App) renderCategorySplit(innerW int) string {
	t := theme.Active

	if len(a.categories) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("no records yet")
	}

	type entry struct {
		name  string
		total float64
	}
	entries := make([]entry, 0, len(a.categories))
	maxTotal := 0.0
	for name, total := range a.categories {
		entries = append(entries, entry{name, total})
		if total > maxTotal {
			maxTotal = total
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].total > entries[j].total })

	nameW := innerW / 3
	if nameW < 8 {
		nameW = 8
	}
	barMax := innerW - nameW - 12
	if barMax < 1 {
		barMax = 1
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for _, e := range entries {
		barLen := 0
		if maxTotal > 0 {
			barLen = int(e.total / maxTotal * float64(barMax))
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, e.name)),
			barStyle.Render(strings.Repeat("█", barLen)),
			amtStyle.Render(cli.FormatAmount(e.total)))
	}
	return b.String()
}

func (a App) renderForecastBody(innerW int) string {
	t := theme.Active
	f := a.summary.Forecast

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	statusStyle := lipgloss.NewStyle().Foreground(components.ColorForStatus(string(f.Status))).Bold(true)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("Month to date "),
		valueStyle.Render(cli.FormatCurrency(f.CurrentMonthSpending, a.symbol)))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("Predicted     "),
		valueStyle.Render(cli.FormatCurrency(f.PredictedTotal, a.symbol)))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("Days left     "),
		valueStyle.Render(cli.FormatNumber(int64(f.RemainingDays))))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("Status        "),
		statusStyle.Render(string(f.Status)))

	if a.budget > 0 {
		barW := innerW - 6
		if barW > 40 {
			barW = 40
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s\n",
			labelStyle.Render("Budget        "),
			valueStyle.Render(cli.FormatCurrency(a.budget, a.symbol)))
		b.WriteString(components.BudgetBar(f.PredictedTotal, a.budget, barW))
	} else {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("no budget set"))
	}
	return b.String()
}
