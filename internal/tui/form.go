package tui

import (
	"fmt"
	"strconv"
	"time"

	"incomebook/internal/categorize"
	"incomebook/internal/model"
	"incomebook/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// addValues backs the add-record form fields.
type addValues struct {
	Amount      string
	Category    string
	Date        string
	Description string
}

func newAddValues() addValues {
	return addValues{
		Category: "Other",
		Date:     time.Now().Format("2006-01-02"),
	}
}

// newAddForm builds the huh form for entering a new income record.
func newAddForm(vals *addValues) *huh.Form {
	options := make([]huh.Option[string], 0, len(model.Categories))
	for _, c := range model.Categories {
		options = append(options, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Value(&vals.Amount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("not a number")
					}
					if v < 0 {
						return fmt.Errorf("must not be negative")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&vals.Category),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&vals.Date).
				Validate(func(s string) error {
					_, err := time.ParseInLocation("2006-01-02", s, time.Local)
					if err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&vals.Description),
		),
	)
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	if a.addForm.State == huh.StateCompleted {
		vals := a.addVals
		a.addForm = nil
		return a, saveRecordCmd(a.dbPath, vals)
	}

	if a.addForm.State == huh.StateAborted {
		a.addForm = nil
		return a, nil
	}

	return a, cmd
}

func saveRecordCmd(dbPath string, vals addValues) tea.Cmd {
	return func() tea.Msg {
		amount, err := strconv.ParseFloat(vals.Amount, 64)
		if err != nil {
			return recordSavedMsg{err: fmt.Errorf("invalid amount %q: %w", vals.Amount, err)}
		}
		date, err := time.ParseInLocation("2006-01-02", vals.Date, time.Local)
		if err != nil {
			return recordSavedMsg{err: fmt.Errorf("invalid date %q: %w", vals.Date, err)}
		}

		category := vals.Category
		if category == "" {
			category = categorize.Suggest(vals.Description)
		}
		if category == "" {
			category = "Other"
		}

		r, err := model.NewRecord(amount, category, vals.Description, date, time.Now())
		if err != nil {
			return recordSavedMsg{err: err}
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return recordSavedMsg{err: err}
		}
		defer s.Close()

		_, err = s.Insert(r)
		return recordSavedMsg{err: err}
	}
}
