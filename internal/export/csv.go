// Package export writes ledger records to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"incomebook/internal/model"
)

var header = []string{"id", "amount", "category", "description", "date", "created_at"}

// WriteCSV streams records as CSV with a header row. Amounts keep two decimal
// places; timestamps use RFC3339 in local time.
func WriteCSV(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		id := ""
		if r.ID != nil {
			id = strconv.FormatInt(*r.ID, 10)
		}
		row := []string{
			id,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			r.Category,
			r.Description,
			r.Date.Format("2006-01-02 15:04:05"),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes records to path, creating or truncating the file.
func ExportCSV(path string, records []model.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
