// Package categorize maps free-text descriptions to income categories with a
// small keyword rule table.
package categorize

import "strings"

type rule struct {
	keyword  string
	category string
}

// Rules are checked in order; the first keyword contained in the text wins.
// A slice keeps the matching deterministic.
var rules = []rule{
	{"salary", "Salary"},
	{"payroll", "Salary"},
	{"wage", "Salary"},
	{"bonus", "Bonus"},
	{"overtime", "Bonus"},
	{"stock", "Investment"},
	{"dividend", "Investment"},
	{"fund", "Investment"},
	{"interest", "Investment"},
	{"rent", "Rental"},
	{"lease", "Rental"},
	{"freelance", "Side Job"},
	{"gig", "Side Job"},
	{"part-time", "Side Job"},
	{"side", "Side Job"},
	{"sale", "Sales"},
	{"sold", "Sales"},
	{"refund", "Other"},
	{"reimburse", "Other"},
	{"tax", "Other"},
}

// Suggest returns the category for the first matching keyword, or "" when
// nothing matches. Matching is case-insensitive substring containment.
func Suggest(text string) string {
	text = strings.ToLower(text)
	for _, r := range rules {
		if strings.Contains(text, r.keyword) {
			return r.category
		}
	}
	return ""
}
