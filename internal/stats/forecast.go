package stats

import (
	"math"
	"time"

	"incomebook/internal/model"
)

// Forecast blends the month-to-date daily rate with the historical daily
// average and extrapolates to month end. It is a pure function of the injected
// now, the store snapshot, and the budget; the wall clock is never read here.
func (e *Engine) Forecast(now time.Time, budget float64) (model.Forecast, error) {
	historicalAvg, err := e.DailyAverage()
	if err != nil {
		return model.Forecast{}, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthSpending, err := e.store.SumRange(monthStart, now)
	if err != nil {
		return model.Forecast{}, err
	}

	return project(now, monthSpending, historicalAvg, budget), nil
}

// project implements the forecast heuristic. The 0.8 weight cap, the /15
// ramp, and the 0.9 warning threshold are contractual constants, not tunables.
func project(now time.Time, monthSpending, historicalAvg, budget float64) model.Forecast {
	totalDays := daysInMonth(now)
	passedDays := now.Day()
	remainingDays := totalDays - passedDays

	// On day 1 the current month carries no weight: a single partial day is
	// too thin to extrapolate from.
	dailyAvg := historicalAvg
	if passedDays > 1 {
		currentAvg := monthSpending / float64(passedDays)
		weight := math.Min(0.8, float64(passedDays)/15.0)
		dailyAvg = currentAvg*weight + historicalAvg*(1-weight)
	}

	predicted := monthSpending + dailyAvg*float64(remainingDays)

	status := model.StatusSafe
	if budget > 0 {
		switch {
		case predicted > budget:
			status = model.StatusDanger
		case predicted > budget*0.9:
			status = model.StatusWarning
		}
	}

	return model.Forecast{
		PredictedTotal:       predicted,
		RemainingDays:        remainingDays,
		DailyAverage:         dailyAvg,
		Status:               status,
		CurrentMonthSpending: monthSpending,
	}
}

// daysInMonth handles year rollover for December via AddDate.
func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}
