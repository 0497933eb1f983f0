package model

import (
	"errors"
	"testing"
	"time"
)

func TestNewRecordRejectsNegativeAmount(t *testing.T) {
	now := time.Now()

	_, err := NewRecord(-0.01, "Salary", "", now, now)
	if err == nil {
		t.Fatal("NewRecord accepted a negative amount")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if verr.Field != "amount" {
		t.Fatalf("ValidationError.Field = %q, want \"amount\"", verr.Field)
	}
}

func TestNewRecordAcceptsZeroAndPositive(t *testing.T) {
	now := time.Now()

	for _, amount := range []float64{0, 0.01, 1000, 99999.99} {
		r, err := NewRecord(amount, "Bonus", "year end", now, now)
		if err != nil {
			t.Fatalf("NewRecord(%v) returned error: %v", amount, err)
		}
		if r.ID != nil {
			t.Fatalf("new record has ID %d before insert, want nil", *r.ID)
		}
		if r.Amount != amount {
			t.Fatalf("Amount = %v, want %v", r.Amount, amount)
		}
	}
}
