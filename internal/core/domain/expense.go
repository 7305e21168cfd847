package domain

import (
	"fmt"
	"time"
)

// Expense is a single spending entry referencing exactly one user. The user
// reference is validated when the expense is created or reassigned, not
// continuously: deleting the user later leaves the expense orphaned on purpose.
type Expense struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"userId"`
	SpentAt  string  `json:"spentAt"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     *string `json:"note"`
}

// spentAtLayouts are the accepted date forms, tried in order.
var spentAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a spentAt value or a from/to range bound for comparison.
// SpentAt itself is stored verbatim; parsing only happens when a date
// predicate needs to compare it.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range spentAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
