// Package model defines domain types for incomebook records and statistics.
package model

import (
	"fmt"
	"time"
)

// ValidationError reports a record that failed construction checks.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record: %s %s", e.Field, e.Reason)
}

// Record is a single income ledger entry.
// ID is nil until the store assigns one on insert. CreatedAt is set once at
// creation and never changes afterwards; Date is the business date the income
// is attributed to.
type Record struct {
	ID          *int64
	Amount      float64
	Category    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// NewRecord builds an unsaved record. A negative amount fails with a
// *ValidationError; it is never silently corrected.
func NewRecord(amount float64, category, description string, date, createdAt time.Time) (Record, error) {
	if amount < 0 {
		return Record{}, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	return Record{
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		CreatedAt:   createdAt,
	}, nil
}

// Categories is the predefined income category list offered by the UI.
// The store accepts free-text categories as well.
var Categories = []string{
	"Salary",
	"Bonus",
	"Investment",
	"Rental",
	"Side Job",
	"Sales",
	"Other",
}
