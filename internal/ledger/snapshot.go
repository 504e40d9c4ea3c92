package ledger

import (
	"fmt"

	"github.com/cleared-dev/tally/internal/model"
)

// Snapshot is a consistent copy of engine state: every account and the
// transaction log in ascending date order, taken under one read lock.
type Snapshot struct {
	Accounts     []model.Account
	Transactions []model.Transaction
}

// Account looks up an account by exact name.
func (s Snapshot) Account(name string) (model.Account, error) {
	for _, a := range s.Accounts {
		if a.Name == name {
			return a, nil
		}
	}
	return model.Account{}, fmt.Errorf("%w: %q", model.ErrMissingAccount, name)
}

// Newest returns the transactions newest first. Equal dates come out in
// reverse posting order.
func (s Snapshot) Newest() []model.Transaction {
	out := make([]model.Transaction, len(s.Transactions))
	for i, tx := range s.Transactions {
		out[len(out)-1-i] = tx
	}
	return out
}
