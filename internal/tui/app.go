// Package tui provides the interactive Bubble Tea dashboard for incomebook.
package tui

import (
	"fmt"
	"strings"
	"time"

	"incomebook/internal/config"
	"incomebook/internal/model"
	"incomebook/internal/stats"
	"incomebook/internal/store"
	"incomebook/internal/tui/components"
	"incomebook/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dataMsg carries a full ledger snapshot from a background load.
type dataMsg struct {
	summary    model.Statistics
	trendDates []string
	trendVals  []float64
	categories map[string]float64
	records    []model.Record
	budget     float64
	err        error
}

// recordSavedMsg reports the outcome of an add-record form submit.
type recordSavedMsg struct{ err error }

// recordDeletedMsg reports the outcome of a delete.
type recordDeletedMsg struct{ err error }

// backupDoneMsg reports the outcome of a settings-tab backup.
type backupDoneMsg struct {
	path string
	err  error
}

// budgetSavedMsg reports the outcome of a budget edit.
type budgetSavedMsg struct {
	budget float64
	err    error
}

type recordsState struct {
	cursor int
	offset int
}

// App is the root Bubble Tea model.
type App struct {
	dbPath string
	days   int
	symbol string

	loaded  bool
	loadErr error

	summary    model.Statistics
	trendDates []string
	trendVals  []float64
	categories map[string]float64
	records    []model.Record
	budget     float64

	width     int
	height    int
	activeTab int
	showHelp  bool

	recState recordsState
	settings settingsState

	addForm *huh.Form
	addVals addValues

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160

	recordsPageSize = 15
)

// NewApp creates a new TUI app model.
func NewApp(dbPath string, days int, symbol string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		dbPath:  dbPath,
		days:    days,
		symbol:  symbol,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.dbPath, a.days),
		a.spinner.Tick,
	)
}

// loadDataCmd reads everything the dashboard shows in one background pass.
func loadDataCmd(dbPath string, days int) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(dbPath)
		if err != nil {
			return dataMsg{err: err}
		}
		defer s.Close()

		now := time.Now()

		budget, err := s.MonthlyBudget()
		if err != nil {
			return dataMsg{err: err}
		}

		engine := stats.New(s)
		summary, err := engine.Statistics(now, budget)
		if err != nil {
			return dataMsg{err: err}
		}
		dates, vals, err := engine.DailyTrend(now, days)
		if err != nil {
			return dataMsg{err: err}
		}
		categories, err := engine.CategoryDistribution(nil, nil)
		if err != nil {
			return dataMsg{err: err}
		}
		records, err := s.Query(store.Filter{Limit: 500})
		if err != nil {
			return dataMsg{err: err}
		}

		return dataMsg{
			summary:    summary,
			trendDates: dates,
			trendVals:  vals,
			categories: categories,
			records:    records,
			budget:     budget,
		}
	}
}

func deleteRecordCmd(dbPath string, id int64) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(dbPath)
		if err != nil {
			return recordDeletedMsg{err: err}
		}
		defer s.Close()
		_, err = s.Delete(id)
		return recordDeletedMsg{err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			if key == "q" {
				return a, tea.Quit
			}
			return a, nil
		}

		// Add-record form intercepts all keys while open
		if a.addForm != nil {
			return a.updateAddForm(msg)
		}

		// Settings budget edit has its own keybindings (text input)
		if a.activeTab == 2 && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Manual refresh
		if key == "R" {
			return a, loadDataCmd(a.dbPath, a.days)
		}

		// New record form
		if key == "a" {
			a.addVals = newAddValues()
			a.addForm = newAddForm(&a.addVals)
			if a.width > 0 {
				a.addForm = a.addForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.addForm.Init()
		}

		// Records tab keybindings
		if a.activeTab == 1 {
			switch key {
			case "j", "down":
				if a.recState.cursor < len(a.records)-1 {
					a.recState.cursor++
				}
				return a, nil
			case "k", "up":
				if a.recState.cursor > 0 {
					a.recState.cursor--
				}
				return a, nil
			case "g":
				a.recState.cursor = 0
				return a, nil
			case "G":
				if len(a.records) > 0 {
					a.recState.cursor = len(a.records) - 1
				}
				return a, nil
			case "x", "delete":
				if a.recState.cursor < len(a.records) {
					r := a.records[a.recState.cursor]
					if r.ID != nil {
						return a, deleteRecordCmd(a.dbPath, *r.ID)
					}
				}
				return a, nil
			}
		}

		// Settings tab keybindings
		if a.activeTab == 2 {
			if handled, next, cmd := a.updateSettingsNav(key); handled {
				return next, cmd
			}
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil

	case dataMsg:
		if msg.err != nil {
			a.loadErr = msg.err
			a.loaded = true
			return a, nil
		}
		a.loadErr = nil
		a.loaded = true
		a.summary = msg.summary
		a.trendDates = msg.trendDates
		a.trendVals = msg.trendVals
		a.categories = msg.categories
		a.records = msg.records
		a.budget = msg.budget
		if a.recState.cursor >= len(a.records) {
			a.recState.cursor = len(a.records) - 1
		}
		if a.recState.cursor < 0 {
			a.recState.cursor = 0
		}
		return a, nil

	case recordSavedMsg:
		if msg.err != nil {
			a.settings.status = fmt.Sprintf("save failed: %v", msg.err)
			return a, nil
		}
		return a, loadDataCmd(a.dbPath, a.days)

	case recordDeletedMsg:
		if msg.err != nil {
			a.settings.status = fmt.Sprintf("delete failed: %v", msg.err)
			return a, nil
		}
		return a, loadDataCmd(a.dbPath, a.days)

	case budgetSavedMsg:
		if msg.err != nil {
			a.settings.status = fmt.Sprintf("budget not saved: %v", msg.err)
			return a, nil
		}
		a.budget = msg.budget
		a.settings.status = "budget saved"
		return a, loadDataCmd(a.dbPath, a.days)

	case backupDoneMsg:
		if msg.err != nil {
			a.settings.status = fmt.Sprintf("backup failed: %v", msg.err)
		} else {
			a.settings.status = "backup written to " + msg.path
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to whichever input is active (cursor
	// blinks, etc.)
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  incomebook needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.addForm != nil {
		return a.addForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ incomebook"))
	b.WriteString(subtitleStyle.Render(" · Personal Income Ledger"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading ledger..."))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	bindings := []struct{ key, desc string }{
		{"d r s", "Jump to tab"},
		{"← → tab", "Previous / next tab"},
		{"a", "Add income record"},
		{"j k", "Move cursor (records, settings)"},
		{"x", "Delete selected record"},
		{"enter", "Edit / activate selected setting"},
		{"R", "Reload data"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString(keyStyle.Render(fmt.Sprintf("  %-10s", bind.key)))
		b.WriteString(descStyle.Render(bind.desc))
		b.WriteString("\n")
	}

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	var b strings.Builder

	b.WriteString(components.RenderTabBar(a.activeTab, a.contentWidth()))
	b.WriteString("\n\n")

	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.Active.Red)
		b.WriteString(errStyle.Render(fmt.Sprintf("  Load failed: %v", a.loadErr)))
		b.WriteString("\n")
	} else {
		switch a.activeTab {
		case 0:
			b.WriteString(a.renderDashboardTab(a.contentWidth()))
		case 1:
			b.WriteString(a.renderRecordsTab(a.contentWidth()))
		case 2:
			b.WriteString(a.renderSettingsTab(a.contentWidth()))
		}
	}

	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(a.contentWidth(), a.settings.status))

	return b.String()
}

// saveConfigTheme persists a theme switch (best-effort, ignore errors).
func saveConfigTheme(name string) {
	cfg, err := config.Load()
	if err != nil {
		return
	}
	cfg.Appearance.Theme = name
	_ = config.Save(cfg)
}
