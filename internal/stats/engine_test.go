package stats

import (
	"errors"
	"math"
	"testing"
	"time"

	"incomebook/internal/model"
)

// fakeStore lets each test pin exactly the store behavior it needs.
type fakeStore struct {
	sumAll       float64
	sumRangeFn   func(start, end time.Time) (float64, error)
	catTotals    map[string]float64
	dailyTotals  map[string]float64
	distinctDays int
	count        int
	err          error
}

func (f *fakeStore) SumAll() (float64, error) { return f.sumAll, f.err }

func (f *fakeStore) SumRange(start, end time.Time) (float64, error) {
	if f.sumRangeFn != nil {
		return f.sumRangeFn(start, end)
	}
	return 0, f.err
}

func (f *fakeStore) CategoryTotals(_, _ *time.Time) (map[string]float64, error) {
	return f.catTotals, f.err
}

func (f *fakeStore) DailyTotals(_, _ time.Time) (map[string]float64, error) {
	return f.dailyTotals, f.err
}

func (f *fakeStore) DistinctDays() (int, error) { return f.distinctDays, f.err }
func (f *fakeStore) Count() (int, error)        { return f.count, f.err }

func TestWindowedTotalInvertedRange(t *testing.T) {
	called := false
	e := New(&fakeStore{sumRangeFn: func(_, _ time.Time) (float64, error) {
		called = true
		return 99, nil
	}})

	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	total, err := e.WindowedTotal(start, start.AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("WindowedTotal: %v", err)
	}
	if total != 0 {
		t.Fatalf("inverted range total = %v, want 0", total)
	}
	if called {
		t.Fatal("inverted range hit the store")
	}
}

func TestYearlyTotalWindow(t *testing.T) {
	var gotStart, gotEnd time.Time
	e := New(&fakeStore{sumRangeFn: func(start, end time.Time) (float64, error) {
		gotStart, gotEnd = start, end
		return 1000, nil
	}})

	total, err := e.YearlyTotal(2024)
	if err != nil {
		t.Fatalf("YearlyTotal: %v", err)
	}
	if total != 1000 {
		t.Fatalf("YearlyTotal = %v, want 1000", total)
	}

	wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local)
	if !gotStart.Equal(wantStart) || !gotEnd.Equal(wantEnd) {
		t.Fatalf("window = [%v, %v], want [%v, %v]", gotStart, gotEnd, wantStart, wantEnd)
	}
}

func TestDailyTrendGapFill(t *testing.T) {
	// Records on day 1 and day 3 of a 3-day window: the middle day must be
	// present with 0.0.
	e := New(&fakeStore{dailyTotals: map[string]float64{
		"2024-06-13": 42.5,
		"2024-06-15": 10,
	}})

	now := time.Date(2024, 6, 15, 18, 30, 0, 0, time.Local)
	dates, values, err := e.DailyTrend(now, 2)
	if err != nil {
		t.Fatalf("DailyTrend: %v", err)
	}

	wantDates := []string{"2024-06-13", "2024-06-14", "2024-06-15"}
	wantValues := []float64{42.5, 0, 10}

	if len(dates) != len(wantDates) || len(values) != len(wantValues) {
		t.Fatalf("lengths = (%d, %d), want (3, 3)", len(dates), len(values))
	}
	for i := range wantDates {
		if dates[i] != wantDates[i] {
			t.Fatalf("dates[%d] = %q, want %q", i, dates[i], wantDates[i])
		}
		if values[i] != wantValues[i] {
			t.Fatalf("values[%d] = %v, want %v", i, values[i], wantValues[i])
		}
	}
}

func TestDailyTrendLengthAndOrdering(t *testing.T) {
	e := New(&fakeStore{dailyTotals: map[string]float64{}})

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local) // window crosses Feb 29
	dates, values, err := e.DailyTrend(now, 30)
	if err != nil {
		t.Fatalf("DailyTrend: %v", err)
	}
	if len(dates) != 31 || len(values) != 31 {
		t.Fatalf("lengths = (%d, %d), want (31, 31)", len(dates), len(values))
	}
	for i := 1; i < len(dates); i++ {
		prev, _ := time.ParseInLocation("2006-01-02", dates[i-1], time.Local)
		cur, _ := time.ParseInLocation("2006-01-02", dates[i], time.Local)
		if !cur.Equal(prev.AddDate(0, 0, 1)) {
			t.Fatalf("dates[%d]=%q does not follow dates[%d]=%q by one day", i, dates[i], i-1, dates[i-1])
		}
	}
}

func TestDailyAverage(t *testing.T) {
	e := New(&fakeStore{distinctDays: 0, sumAll: 500})
	avg, err := e.DailyAverage()
	if err != nil {
		t.Fatalf("DailyAverage: %v", err)
	}
	if avg != 0 {
		t.Fatalf("average with zero record days = %v, want 0", avg)
	}

	// Two distinct days, regardless of how many records fall on them.
	e = New(&fakeStore{distinctDays: 2, sumAll: 500})
	avg, err = e.DailyAverage()
	if err != nil {
		t.Fatalf("DailyAverage: %v", err)
	}
	if avg != 250 {
		t.Fatalf("average = %v, want 250", avg)
	}
}

func TestStoreErrorsPropagate(t *testing.T) {
	storeErr := errors.New("db locked")
	e := New(&fakeStore{err: storeErr})

	if _, err := e.Total(); !errors.Is(err, storeErr) {
		t.Fatalf("Total error = %v, want wrapped store error", err)
	}
	if _, err := e.DailyAverage(); !errors.Is(err, storeErr) {
		t.Fatalf("DailyAverage error = %v, want wrapped store error", err)
	}
	if _, _, err := e.DailyTrend(time.Now(), 7); !errors.Is(err, storeErr) {
		t.Fatalf("DailyTrend error = %v, want wrapped store error", err)
	}
	if _, err := e.Statistics(time.Now(), 0); !errors.Is(err, storeErr) {
		t.Fatalf("Statistics error = %v, want wrapped store error", err)
	}
}

func TestStatisticsPayload(t *testing.T) {
	e := New(&fakeStore{
		sumAll:       9000,
		sumRangeFn:   func(_, _ time.Time) (float64, error) { return 1200, nil },
		distinctDays: 30,
		count:        45,
	})

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)
	stats, err := e.Statistics(now, 0)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}

	if stats.TotalIncome != 9000 {
		t.Fatalf("TotalIncome = %v, want 9000", stats.TotalIncome)
	}
	if stats.YearlyIncome != 1200 || stats.MonthlyIncome != 1200 {
		t.Fatalf("windowed incomes = (%v, %v), want 1200 each", stats.YearlyIncome, stats.MonthlyIncome)
	}
	if stats.DailyAverage != 300 {
		t.Fatalf("DailyAverage = %v, want 300", stats.DailyAverage)
	}
	if stats.RecordCount != 45 {
		t.Fatalf("RecordCount = %d, want 45", stats.RecordCount)
	}
	if stats.Forecast.Status != model.StatusSafe {
		t.Fatalf("Status = %q, want safe with no budget", stats.Forecast.Status)
	}
}

func TestRanges(t *testing.T) {
	now := time.Date(2024, 6, 12, 15, 4, 5, 0, time.Local) // a Wednesday

	start, end := WeekRange(now)
	if start.Weekday() != time.Monday {
		t.Fatalf("week start weekday = %v, want Monday", start.Weekday())
	}
	if end.Sub(start) != 6*24*time.Hour+23*time.Hour+59*time.Minute+59*time.Second {
		t.Fatalf("week span = %v", end.Sub(start))
	}

	start, end = MonthRange(now)
	if start.Day() != 1 || start.Month() != time.June {
		t.Fatalf("month start = %v", start)
	}
	if end.Month() != time.June || end.Day() != 30 {
		t.Fatalf("month end = %v", end)
	}

	start, end = YearRange(now)
	if start.Month() != time.January || end.Month() != time.December || end.Day() != 31 {
		t.Fatalf("year range = [%v, %v]", start, end)
	}

	start, end = TrailingRange(now, 7)
	if !end.Equal(now) {
		t.Fatalf("trailing end = %v, want now", end)
	}
	if start.Hour() != 0 || math.Abs(end.Sub(start).Hours()-7*24) > 24 {
		t.Fatalf("trailing start = %v", start)
	}
}
