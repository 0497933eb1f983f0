package components

import (
	"fmt"
	"math"
	"strings"

	"incomebook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders a vertical bar chart. Values that do not fit the width are
// resampled; the y axis carries two tick labels.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	yLabelW := len(chartLabel(maxVal)) + 1
	if yLabelW < 5 {
		yLabelW = 5
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	// One column per value plus a gap; resample when too wide.
	n := len(values)
	if 2*n-1 > chartW {
		maxN := (chartW + 1) / 2
		if maxN < 2 {
			maxN = 2
		}
		sampled := make([]float64, maxN)
		var sampledLabels []string
		if len(labels) == n {
			sampledLabels = make([]string, maxN)
		}
		for i := range sampled {
			srcIdx := i * (n - 1) / (maxN - 1)
			sampled[i] = values[srcIdx]
			if sampledLabels != nil {
				sampledLabels[i] = labels[srcIdx]
			}
		}
		values = sampled
		labels = sampledLabels
		n = maxN
	}
	axisLen := 2*n - 1

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	barStyle := lipgloss.NewStyle().Foreground(color)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := maxVal * float64(row) / float64(height)
		rowBottom := maxVal * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = chartLabel(maxVal)
		} else if row == (height+1)/2 {
			label = chartLabel(maxVal / 2)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 {
				b.WriteString(" ")
			}
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render("█"))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(barStyle.Render(string(blocks[idx])))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	// X axis with first and last labels
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	if len(labels) == n && n > 1 {
		first, last := labels[0], labels[n-1]
		gap := axisLen - len(first) - len(last)
		if gap >= 1 {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", yLabelW+1))
			b.WriteString(axisStyle.Render(first + strings.Repeat(" ", gap) + last))
		}
	}

	return b.String()
}

// chartLabel formats a y-axis tick compactly.
func chartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
