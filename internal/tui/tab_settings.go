package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"incomebook/internal/cli"
	"incomebook/internal/store"
	"incomebook/internal/tui/components"
	"incomebook/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const settingsFieldCount = 3 // budget, theme, backup

type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	status  string
}

// updateSettingsNav handles keys on the settings tab outside edit mode.
// Returns handled=false for keys the caller should treat as global.
func (a App) updateSettingsNav(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return true, a, nil
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return true, a, nil
	case "enter":
		switch a.settings.cursor {
		case 0: // budget
			ti := textinput.New()
			ti.Placeholder = "0"
			if a.budget > 0 {
				ti.SetValue(strconv.FormatFloat(a.budget, 'f', -1, 64))
			}
			ti.Focus()
			ti.CharLimit = 12
			a.settings.input = ti
			a.settings.editing = true
			return true, a, textinput.Blink
		case 1: // theme
			a.cycleTheme()
			return true, a, nil
		case 2: // backup
			return true, a, backupCmd(a.dbPath)
		}
		return true, a, nil
	}
	return false, a, nil
}

// updateSettingsInput handles keys while the budget text input is focused.
func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.settings.editing = false
		return a, nil
	case "enter":
		raw := strings.TrimSpace(a.settings.input.Value())
		a.settings.editing = false
		if raw == "" {
			return a, nil
		}
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount < 0 {
			a.settings.status = fmt.Sprintf("invalid budget %q", raw)
			return a, nil
		}
		return a, saveBudgetCmd(a.dbPath, amount)
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) cycleTheme() {
	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			next := theme.All[(i+1)%len(theme.All)]
			theme.SetActive(next.Name)
			saveConfigTheme(next.Name)
			return
		}
	}
	theme.SetActive(theme.All[0].Name)
}

func saveBudgetCmd(dbPath string, amount float64) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(dbPath)
		if err != nil {
			return budgetSavedMsg{err: err}
		}
		defer s.Close()
		if _, err := s.SetMonthlyBudget(amount); err != nil {
			return budgetSavedMsg{err: err}
		}
		return budgetSavedMsg{budget: amount}
	}
}

func backupCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(dbPath)
		if err != nil {
			return backupDoneMsg{err: err}
		}
		defer s.Close()

		now := time.Now()
		out := filepath.Join(filepath.Dir(dbPath),
			fmt.Sprintf("incomebook_backup_%s.db", now.Format("20060102_150405")))
		if err := s.Backup(out); err != nil {
			return backupDoneMsg{err: err}
		}
		if _, err := s.SetSetting("last_backup_time", now.Format(time.RFC3339)); err != nil {
			return backupDoneMsg{err: err}
		}
		return backupDoneMsg{path: out}
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	marker := func(idx int) string {
		if idx == a.settings.cursor {
			return selStyle.Render("> ")
		}
		return "  "
	}

	budgetVal := "not set"
	if a.budget > 0 {
		budgetVal = cli.FormatCurrency(a.budget, a.symbol)
	}
	if a.settings.editing {
		budgetVal = a.settings.input.View()
	}

	var b strings.Builder
	b.WriteString(marker(0))
	b.WriteString(labelStyle.Render("Monthly budget  "))
	b.WriteString(valueStyle.Render(budgetVal))
	b.WriteString("\n\n")

	b.WriteString(marker(1))
	b.WriteString(labelStyle.Render("Theme           "))
	b.WriteString(valueStyle.Render(theme.Active.Name))
	b.WriteString(dimStyle.Render("  (enter cycles)"))
	b.WriteString("\n\n")

	b.WriteString(marker(2))
	b.WriteString(labelStyle.Render("Backup          "))
	b.WriteString(valueStyle.Render("press enter to back up the database"))
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render("  [j/k] move  [enter] edit/activate  [esc] cancel edit"))

	return components.ContentCard("Settings", b.String(), cw)
}
