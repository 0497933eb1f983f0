package export

import (
	"strings"
	"testing"
	"time"

	"incomebook/internal/model"
)

func TestWriteCSV(t *testing.T) {
	id := int64(7)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	created := time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local)

	records := []model.Record{
		{ID: &id, Amount: 1234.5, Category: "Salary", Description: "june, payroll", Date: date, CreatedAt: created},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}
	if lines[0] != "id,amount,category,description,date,created_at" {
		t.Fatalf("header = %q", lines[0])
	}
	// The comma in the description forces quoting.
	if !strings.Contains(lines[1], `"june, payroll"`) {
		t.Fatalf("row missing quoted description: %q", lines[1])
	}
	if !strings.HasPrefix(lines[1], "7,1234.50,Salary,") {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestWriteCSVEmptyStillWritesHeader(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if strings.TrimSpace(sb.String()) != "id,amount,category,description,date,created_at" {
		t.Fatalf("output = %q", sb.String())
	}
}
