package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
)

// PostParams holds an already-parsed posting request.
type PostParams struct {
	Date          time.Time
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
}

// AccountChecker tests whether an account name exists in the chart of accounts.
type AccountChecker interface {
	Exists(name string) bool
}

// ValidatePosting checks a posting request against the chart of accounts.
// Checks run in a fixed order and the first failure is returned: date,
// amount, account existence, then distinct accounts.
func ValidatePosting(p PostParams, accounts AccountChecker) error {
	if p.Date.IsZero() {
		return fmt.Errorf("%w: date is required", model.ErrInvalidDate)
	}

	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: got %s", model.ErrInvalidAmount, p.Amount.String())
	}

	for _, name := range []string{p.DebitAccount, p.CreditAccount} {
		if !accounts.Exists(name) {
			return fmt.Errorf("%w: %q", model.ErrMissingAccount, name)
		}
	}

	if p.DebitAccount == p.CreditAccount {
		return fmt.Errorf("%w: %q", model.ErrSameAccount, p.DebitAccount)
	}

	return nil
}
