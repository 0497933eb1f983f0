// Package stats aggregates ledger records into totals, trends, and the
// month-end forecast.
package stats

import (
	"time"

	"incomebook/internal/model"
)

// Store is the record-store surface the engine reads from. *store.Store
// satisfies it; tests substitute fakes.
type Store interface {
	SumAll() (float64, error)
	SumRange(start, end time.Time) (float64, error)
	CategoryTotals(start, end *time.Time) (map[string]float64, error)
	DailyTotals(start, end time.Time) (map[string]float64, error)
	DistinctDays() (int, error)
	Count() (int, error)
}

// Engine computes aggregates over a record store. It is stateless: every call
// recomputes from the store's current contents, so overlapping callers are
// safe.
type Engine struct {
	store Store
}

// New returns an engine reading from the given store.
func New(store Store) *Engine {
	return &Engine{store: store}
}

// Total returns the sum of all record amounts.
func (e *Engine) Total() (float64, error) {
	return e.store.SumAll()
}

// WindowedTotal sums amounts with start <= date <= end, inclusive both ends.
// An inverted range yields 0 rather than an error.
func (e *Engine) WindowedTotal(start, end time.Time) (float64, error) {
	if start.After(end) {
		return 0, nil
	}
	return e.store.SumRange(start, end)
}

// YearlyTotal sums the given calendar year, Jan 1 00:00:00 through
// Dec 31 23:59:59.
func (e *Engine) YearlyTotal(year int) (float64, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.Local)
	return e.store.SumRange(start, end)
}

// TrailingTotal sums the window [now - days, now].
func (e *Engine) TrailingTotal(now time.Time, days int) (float64, error) {
	return e.store.SumRange(now.AddDate(0, 0, -days), now)
}

// CategoryDistribution returns per-category sums within an optional window.
// Categories with no matching records are absent, not zero-valued.
func (e *Engine) CategoryDistribution(start, end *time.Time) (map[string]float64, error) {
	return e.store.CategoryTotals(start, end)
}

// DailyTrend returns one entry per calendar day in [now - days, now],
// including days with no records, which carry 0.0. Dates ascend by one day
// and correspond positionally to the values slice. The grouped store query
// only returns days with data, so the result is reindexed against a complete
// day calendar here.
func (e *Engine) DailyTrend(now time.Time, days int) ([]string, []float64, error) {
	start := now.AddDate(0, 0, -days)

	totals, err := e.store.DailyTotals(start, now)
	if err != nil {
		return nil, nil, err
	}

	dates := make([]string, 0, days+1)
	values := make([]float64, 0, days+1)

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for !day.After(last) {
		key := day.Format("2006-01-02")
		dates = append(dates, key)
		values = append(values, totals[key])
		day = day.AddDate(0, 0, 1)
	}

	return dates, values, nil
}

// DailyAverage returns total income divided by the number of distinct
// calendar days holding at least one record. Zero such days yields 0.
func (e *Engine) DailyAverage() (float64, error) {
	days, err := e.store.DistinctDays()
	if err != nil {
		return 0, err
	}
	if days == 0 {
		return 0, nil
	}

	total, err := e.store.SumAll()
	if err != nil {
		return 0, err
	}
	return total / float64(days), nil
}

// Statistics assembles the dashboard payload for the given instant.
func (e *Engine) Statistics(now time.Time, budget float64) (model.Statistics, error) {
	var stats model.Statistics
	var err error

	if stats.TotalIncome, err = e.Total(); err != nil {
		return model.Statistics{}, err
	}
	if stats.YearlyIncome, err = e.YearlyTotal(now.Year()); err != nil {
		return model.Statistics{}, err
	}
	if stats.MonthlyIncome, err = e.TrailingTotal(now, 30); err != nil {
		return model.Statistics{}, err
	}
	if stats.DailyAverage, err = e.DailyAverage(); err != nil {
		return model.Statistics{}, err
	}
	if stats.RecordCount, err = e.store.Count(); err != nil {
		return model.Statistics{}, err
	}
	if stats.Forecast, err = e.Forecast(now, budget); err != nil {
		return model.Statistics{}, err
	}
	return stats, nil
}
