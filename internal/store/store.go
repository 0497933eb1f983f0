// Package store provides the SQLite-backed record and settings stores.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"incomebook/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the ledger database. It is safe for overlapping readers; writes
// are serialized by SQLite itself.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the ledger database at the given path and applies the
// schema.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Timestamps are stored as RFC3339 in UTC so string comparison matches
// chronological order. The day column holds the local calendar day the record
// belongs to, which backs distinct-day counting and daily grouping.
func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Local(), nil
}

func dayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// Insert stores a new record and returns the assigned id.
func (s *Store) Insert(r model.Record) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO income_records
		(amount, category, description, date, day, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.Amount, r.Category, r.Description,
		encodeTime(r.Date), dayKey(r.Date), encodeTime(r.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new record id: %w", err)
	}
	return id, nil
}

// Update rewrites all mutable fields of an existing record. The id and
// created_at columns never change. Returns false when the record does not
// exist or has no id yet.
func (s *Store) Update(r model.Record) (bool, error) {
	if r.ID == nil {
		return false, nil
	}

	res, err := s.db.Exec(`UPDATE income_records
		SET amount = ?, category = ?, description = ?, date = ?, day = ?
		WHERE id = ?`,
		r.Amount, r.Category, r.Description,
		encodeTime(r.Date), dayKey(r.Date), *r.ID,
	)
	if err != nil {
		return false, fmt.Errorf("updating record %d: %w", *r.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating record %d: %w", *r.ID, err)
	}
	return n > 0, nil
}

// Delete removes a record by id, returning false when no such record exists.
func (s *Store) Delete(id int64) (bool, error) {
	res, err := s.db.Exec("DELETE FROM income_records WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting record %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting record %d: %w", id, err)
	}
	return n > 0, nil
}

// Get fetches a record by id. Returns (nil, nil) when not found.
func (s *Store) Get(id int64) (*model.Record, error) {
	row := s.db.QueryRow(`SELECT id, amount, category, description, date, created_at
		FROM income_records WHERE id = ?`, id)

	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching record %d: %w", id, err)
	}
	return r, nil
}

// Filter narrows a Query call. Nil time bounds and an empty category are
// ignored; Limit defaults to 1000.
type Filter struct {
	Start    *time.Time
	End      *time.Time
	Category string
	Limit    int
	Offset   int
}

// Query returns records matching the filter, ordered by date descending then
// created_at descending.
func (s *Store) Query(f Filter) ([]model.Record, error) {
	query := `SELECT id, amount, category, description, date, created_at
		FROM income_records WHERE 1=1`
	var args []any

	if f.Start != nil {
		query += " AND date >= ?"
		args = append(args, encodeTime(*f.Start))
	}
	if f.End != nil {
		query += " AND date <= ?"
		args = append(args, encodeTime(*f.End))
	}
	if f.Category != "" {
		query += " AND category = ?"
		args = append(args, f.Category)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 1000
	}
	query += " ORDER BY date DESC, created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, f.Offset)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("querying records: %w", err)
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

// Count returns the total number of records.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM income_records").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

// SumAll returns the sum of all record amounts.
func (s *Store) SumAll() (float64, error) {
	var total float64
	err := s.db.QueryRow("SELECT COALESCE(SUM(amount), 0) FROM income_records").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing records: %w", err)
	}
	return total, nil
}

// SumRange returns the sum of amounts with start <= date <= end. An inverted
// range matches nothing and yields 0.
func (s *Store) SumRange(start, end time.Time) (float64, error) {
	var total float64
	err := s.db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM income_records
		WHERE date >= ? AND date <= ?`,
		encodeTime(start), encodeTime(end)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing range: %w", err)
	}
	return total, nil
}

// CategoryTotals returns the summed amount per category within an optional
// date window. Categories with no matching records are absent from the map.
func (s *Store) CategoryTotals(start, end *time.Time) (map[string]float64, error) {
	query := "SELECT category, SUM(amount) FROM income_records WHERE 1=1"
	var args []any

	if start != nil {
		query += " AND date >= ?"
		args = append(args, encodeTime(*start))
	}
	if end != nil {
		query += " AND date <= ?"
		args = append(args, encodeTime(*end))
	}
	query += " GROUP BY category"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("grouping by category: %w", err)
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[string]float64)
	for rows.Next() {
		var category string
		var amount float64
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("grouping by category: %w", err)
		}
		totals[category] = amount
	}
	return totals, rows.Err()
}

// DailyTotals returns per-calendar-day sums keyed by "2006-01-02" for records
// with start <= date <= end. Days with no records are absent; the stats
// engine reindexes against a full calendar.
func (s *Store) DailyTotals(start, end time.Time) (map[string]float64, error) {
	rows, err := s.db.Query(`SELECT day, SUM(amount) FROM income_records
		WHERE date >= ? AND date <= ?
		GROUP BY day`,
		encodeTime(start), encodeTime(end))
	if err != nil {
		return nil, fmt.Errorf("grouping by day: %w", err)
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[string]float64)
	for rows.Next() {
		var day string
		var amount float64
		if err := rows.Scan(&day, &amount); err != nil {
			return nil, fmt.Errorf("grouping by day: %w", err)
		}
		totals[day] = amount
	}
	return totals, rows.Err()
}

// DistinctDays counts calendar days that have at least one record.
func (s *Store) DistinctDays() (int, error) {
	var days int
	err := s.db.QueryRow("SELECT COUNT(DISTINCT day) FROM income_records").Scan(&days)
	if err != nil {
		return 0, fmt.Errorf("counting distinct days: %w", err)
	}
	return days, nil
}

// Backup writes a compacted copy of the database to target.
func (s *Store) Backup(target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("creating backup dir: %w", err)
	}
	if _, err := s.db.Exec("VACUUM INTO ?", target); err != nil {
		return fmt.Errorf("backing up to %s: %w", target, err)
	}
	return nil
}

// Vacuum compacts the database file.
func (s *Store) Vacuum() error {
	if _, err := s.db.Exec("VACUUM"); err != nil {
		return fmt.Errorf("vacuuming: %w", err)
	}
	return nil
}

// CheckpointWAL truncates the write-ahead log.
func (s *Store) CheckpointWAL() error {
	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("checkpointing wal: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*model.Record, error) {
	var (
		id                 int64
		r                  model.Record
		dateStr, createdAt string
	)
	if err := row.Scan(&id, &r.Amount, &r.Category, &r.Description, &dateStr, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if r.Date, err = decodeTime(dateStr); err != nil {
		return nil, fmt.Errorf("record %d has bad date %q: %w", id, dateStr, err)
	}
	if r.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, fmt.Errorf("record %d has bad created_at %q: %w", id, createdAt, err)
	}

	r.ID = &id
	return &r, nil
}
