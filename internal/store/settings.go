package store

import (
	"database/sql"
	"fmt"
	"strconv"
)

// GetSetting returns the stored value for key, or def when the key is absent.
func (s *Store) GetSetting(key, def string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM app_settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting stores a key/value pair, replacing any existing value.
func (s *Store) SetSetting(key, value string) (bool, error) {
	res, err := s.db.Exec(`INSERT OR REPLACE INTO app_settings (key, value)
		VALUES (?, ?)`, key, value)
	if err != nil {
		return false, fmt.Errorf("writing setting %q: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("writing setting %q: %w", key, err)
	}
	return n > 0, nil
}

const budgetKey = "monthly_budget"

// MonthlyBudget returns the configured monthly budget. A missing or
// unparseable value means no budget is set and yields 0, never an error.
func (s *Store) MonthlyBudget() (float64, error) {
	raw, err := s.GetSetting(budgetKey, "0")
	if err != nil {
		return 0, err
	}
	budget, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, nil
	}
	return budget, nil
}

// SetMonthlyBudget stores the monthly budget.
func (s *Store) SetMonthlyBudget(amount float64) (bool, error) {
	return s.SetSetting(budgetKey, strconv.FormatFloat(amount, 'f', -1, 64))
}
