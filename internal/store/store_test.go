package store

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"incomebook/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustInsert(t *testing.T, s *Store, amount float64, category string, date time.Time) int64 {
	t.Helper()
	r, err := model.NewRecord(amount, category, "", date, date)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	id, err := s.Insert(r)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	return id
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestInsertGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	date := day(2024, 6, 1)
	created := time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local)
	r, err := model.NewRecord(1000, "Salary", "june payroll", date, created)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}

	id, err := s.Insert(r)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id <= 0 {
		t.Fatalf("Insert returned id %d, want > 0", id)
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for existing record")
	}
	if got.Amount != 1000 || got.Category != "Salary" || got.Description != "june payroll" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if !got.Date.Equal(date) {
		t.Fatalf("Date = %v, want %v", got.Date, date)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
}

func TestUpdatePreservesIDAndCreatedAt(t *testing.T) {
	s := openTestStore(t)

	id := mustInsert(t, s, 50, "Other", day(2024, 3, 10))
	before, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	updated := *before
	updated.Amount = 75.5
	updated.Category = "Bonus"
	updated.Description = "corrected"
	updated.Date = day(2024, 3, 11)

	ok, err := s.Update(updated)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !ok {
		t.Fatal("Update returned false for existing record")
	}

	after, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if after.Amount != 75.5 || after.Category != "Bonus" || after.Description != "corrected" {
		t.Fatalf("mutable fields not updated: %+v", after)
	}
	if !after.Date.Equal(day(2024, 3, 11)) {
		t.Fatalf("Date = %v, want %v", after.Date, day(2024, 3, 11))
	}
	if *after.ID != id {
		t.Fatalf("ID changed from %d to %d", id, *after.ID)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("CreatedAt changed from %v to %v", before.CreatedAt, after.CreatedAt)
	}
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	s := openTestStore(t)

	ok, err := s.Update(model.Record{})
	if err != nil || ok {
		t.Fatalf("Update without id = (%v, %v), want (false, nil)", ok, err)
	}

	missing := int64(9999)
	r := model.Record{ID: &missing, Category: "Other", Date: day(2024, 1, 1), CreatedAt: day(2024, 1, 1)}
	ok, err = s.Update(r)
	if err != nil || ok {
		t.Fatalf("Update of missing id = (%v, %v), want (false, nil)", ok, err)
	}

	ok, err = s.Delete(missing)
	if err != nil || ok {
		t.Fatalf("Delete of missing id = (%v, %v), want (false, nil)", ok, err)
	}

	got, err := s.Get(missing)
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if got != nil {
		t.Fatalf("Get missing returned %+v, want nil", got)
	}
}

func TestQueryOrderingAndFilters(t *testing.T) {
	s := openTestStore(t)

	mustInsert(t, s, 10, "Salary", day(2024, 5, 1))
	mustInsert(t, s, 20, "Bonus", day(2024, 5, 3))
	mustInsert(t, s, 30, "Salary", day(2024, 5, 2))

	records, err := s.Query(Filter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Query returned %d records, want 3", len(records))
	}
	// Date descending.
	if records[0].Amount != 20 || records[1].Amount != 30 || records[2].Amount != 10 {
		t.Fatalf("unexpected order: %v %v %v", records[0].Amount, records[1].Amount, records[2].Amount)
	}

	start := day(2024, 5, 2)
	records, err = s.Query(Filter{Start: &start, Category: "Salary"})
	if err != nil {
		t.Fatalf("Query filtered: %v", err)
	}
	if len(records) != 1 || records[0].Amount != 30 {
		t.Fatalf("filtered query = %+v, want the single 30 Salary record", records)
	}

	records, err = s.Query(Filter{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("Query paginated: %v", err)
	}
	if len(records) != 1 || records[0].Amount != 30 {
		t.Fatalf("paginated query = %+v, want the middle record", records)
	}
}

func TestAggregates(t *testing.T) {
	s := openTestStore(t)

	mustInsert(t, s, 1000, "Salary", day(2024, 6, 1))
	mustInsert(t, s, 200, "Bonus", day(2024, 6, 1))
	mustInsert(t, s, 300, "Salary", day(2024, 7, 15))

	total, err := s.SumAll()
	if err != nil {
		t.Fatalf("SumAll: %v", err)
	}
	if total != 1500 {
		t.Fatalf("SumAll = %v, want 1500", total)
	}

	june, err := s.SumRange(day(2024, 6, 1).Add(-12*time.Hour), day(2024, 6, 30))
	if err != nil {
		t.Fatalf("SumRange: %v", err)
	}
	if june != 1200 {
		t.Fatalf("June sum = %v, want 1200", june)
	}

	// Inverted range matches nothing.
	empty, err := s.SumRange(day(2024, 7, 1), day(2024, 6, 1))
	if err != nil {
		t.Fatalf("SumRange inverted: %v", err)
	}
	if empty != 0 {
		t.Fatalf("inverted range sum = %v, want 0", empty)
	}

	cats, err := s.CategoryTotals(nil, nil)
	if err != nil {
		t.Fatalf("CategoryTotals: %v", err)
	}
	if len(cats) != 2 || cats["Salary"] != 1300 || cats["Bonus"] != 200 {
		t.Fatalf("CategoryTotals = %v", cats)
	}
	if _, ok := cats["Investment"]; ok {
		t.Fatal("CategoryTotals contains a zero-record category")
	}

	days, err := s.DistinctDays()
	if err != nil {
		t.Fatalf("DistinctDays: %v", err)
	}
	if days != 2 {
		t.Fatalf("DistinctDays = %d, want 2 (two records share a day)", days)
	}

	daily, err := s.DailyTotals(day(2024, 6, 1).Add(-12*time.Hour), day(2024, 7, 31))
	if err != nil {
		t.Fatalf("DailyTotals: %v", err)
	}
	if math.Abs(daily["2024-06-01"]-1200) > 1e-9 || math.Abs(daily["2024-07-15"]-300) > 1e-9 {
		t.Fatalf("DailyTotals = %v", daily)
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 3 {
		t.Fatalf("Count = %d, want 3", count)
	}
}

func TestBackupRoundTrip(t *testing.T) {
	s := openTestStore(t)

	mustInsert(t, s, 500, "Salary", day(2024, 4, 1))
	mustInsert(t, s, 250, "Bonus", day(2024, 4, 2))

	if err := s.CheckpointWAL(); err != nil {
		t.Fatalf("CheckpointWAL: %v", err)
	}

	target := filepath.Join(t.TempDir(), "nested", "backup.db")
	if err := s.Backup(target); err != nil {
		t.Fatalf("Backup: %v", err)
	}

	snap, err := Open(target)
	if err != nil {
		t.Fatalf("Open backup: %v", err)
	}
	defer snap.Close()

	count, err := snap.Count()
	if err != nil {
		t.Fatalf("Count on backup: %v", err)
	}
	if count != 2 {
		t.Fatalf("backup holds %d records, want 2", count)
	}

	if err := s.Vacuum(); err != nil {
		t.Fatalf("Vacuum: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	v, err := s.GetSetting("theme", "flexoki-dark")
	if err != nil {
		t.Fatalf("GetSetting: %v", err)
	}
	if v != "flexoki-dark" {
		t.Fatalf("missing key default = %q, want fallback", v)
	}

	ok, err := s.SetSetting("theme", "terminal")
	if err != nil || !ok {
		t.Fatalf("SetSetting = (%v, %v)", ok, err)
	}
	v, err = s.GetSetting("theme", "flexoki-dark")
	if err != nil {
		t.Fatalf("GetSetting: %v", err)
	}
	if v != "terminal" {
		t.Fatalf("GetSetting = %q, want \"terminal\"", v)
	}
}

func TestMonthlyBudgetParseFallback(t *testing.T) {
	s := openTestStore(t)

	budget, err := s.MonthlyBudget()
	if err != nil {
		t.Fatalf("MonthlyBudget: %v", err)
	}
	if budget != 0 {
		t.Fatalf("unset budget = %v, want 0", budget)
	}

	if _, err := s.SetMonthlyBudget(8000.5); err != nil {
		t.Fatalf("SetMonthlyBudget: %v", err)
	}
	budget, err = s.MonthlyBudget()
	if err != nil {
		t.Fatalf("MonthlyBudget: %v", err)
	}
	if budget != 8000.5 {
		t.Fatalf("budget = %v, want 8000.5", budget)
	}

	// Garbage in the settings table degrades to "no budget", not an error.
	if _, err := s.SetSetting("monthly_budget", "not-a-number"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	budget, err = s.MonthlyBudget()
	if err != nil {
		t.Fatalf("MonthlyBudget with garbage value: %v", err)
	}
	if budget != 0 {
		t.Fatalf("garbage budget = %v, want 0", budget)
	}
}
