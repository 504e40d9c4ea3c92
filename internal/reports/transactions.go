package reports

import (
	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/query"
)

// Transactions lists every transaction newest first.
func Transactions(s ledger.Snapshot) []model.Transaction {
	return s.Newest()
}

// FilterTransactions lists the transactions matching a search string,
// newest first. An empty search returns everything.
func FilterTransactions(s ledger.Snapshot, search string) []model.Transaction {
	return query.Filter(s.Newest(), search)
}

// AccountBalances lists accounts in chart order, optionally restricted to
// the given types.
func AccountBalances(s ledger.Snapshot, types ...model.AccountType) []model.Account {
	if len(types) == 0 {
		return append([]model.Account{}, s.Accounts...)
	}
	out := []model.Account{}
	for _, a := range s.Accounts {
		for _, t := range types {
			if a.Type == t {
				out = append(out, a)
				break
			}
		}
	}
	return out
}
