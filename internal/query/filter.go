// Package query matches transactions against a free-text search.
package query

import (
	"strings"

	"github.com/cleared-dev/tally/internal/model"
)

// Normalize trims and lowercases a raw search string.
func Normalize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Matches reports whether q, already normalized, is empty or a substring of
// the transaction's date, description, debit account or credit account.
func Matches(tx model.Transaction, q string) bool {
	if q == "" {
		return true
	}
	fields := []string{tx.DateString(), tx.Description, tx.DebitAccount, tx.CreditAccount}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Filter returns the transactions matching a raw search string, in the
// order given.
func Filter(txns []model.Transaction, raw string) []model.Transaction {
	q := Normalize(raw)
	out := []model.Transaction{}
	for _, tx := range txns {
		if Matches(tx, q) {
			out = append(out, tx)
		}
	}
	return out
}
