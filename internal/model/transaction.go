package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the textual form of a calendar date everywhere in tally.
const DateFormat = "2006-01-02"

// Date returns the calendar date y-m-d as a UTC midnight time.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ToDate drops the time-of-day and location from t, keeping its calendar date.
func ToDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return Date(t.Date())
}

// Transaction is one posted double entry. Immutable once posted.
type Transaction struct {
	Seq           int    // posting order, 1-based
	Ref           string // journal entry reference, "YYYY-MM-NNN"
	Date          time.Time
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
}

// Touches reports whether the transaction posts to the named account.
func (t Transaction) Touches(name string) bool {
	return t.DebitAccount == name || t.CreditAccount == name
}

// DateString formats the transaction date as YYYY-MM-DD.
func (t Transaction) DateString() string {
	return t.Date.Format(DateFormat)
}
