package categorize

import "testing"

func TestSuggest(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"June payroll", "Salary"},
		{"SALARY for may", "Salary"},
		{"quarterly bonus", "Bonus"},
		{"stock dividend payout", "Investment"},
		{"apartment rent for July", "Rental"},
		{"freelance logo design", "Side Job"},
		{"sold old laptop", "Sales"},
		{"tax refund", "Other"},
		{"", ""},
		{"mystery income", ""},
	}

	for _, tc := range cases {
		if got := Suggest(tc.text); got != tc.want {
			t.Errorf("Suggest(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestSuggestFirstMatchWins(t *testing.T) {
	// "salary bonus" contains two keywords; rule order decides.
	if got := Suggest("salary bonus"); got != "Salary" {
		t.Fatalf("Suggest = %q, want %q", got, "Salary")
	}
}
