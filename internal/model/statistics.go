package model

// ForecastStatus classifies the projected month-end total against the budget.
type ForecastStatus string

// Forecast status levels.
const (
	StatusSafe    ForecastStatus = "safe"
	StatusWarning ForecastStatus = "warning"
	StatusDanger  ForecastStatus = "danger"
)

// Forecast is the month-end projection produced by the stats engine.
type Forecast struct {
	PredictedTotal       float64
	RemainingDays        int
	DailyAverage         float64 // blended daily rate used for extrapolation
	Status               ForecastStatus
	CurrentMonthSpending float64
}

// Statistics is the aggregate payload consumed by the dashboard and the
// summary command.
type Statistics struct {
	TotalIncome   float64
	YearlyIncome  float64
	MonthlyIncome float64 // trailing 30 days
	DailyAverage  float64
	RecordCount   int
	Forecast      Forecast
}
