package reports

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/model"
)

// TrialBalance totals every account's posted change by normal side.
type TrialBalance struct {
	DebitNormal  decimal.Decimal // net change of asset and expense accounts
	CreditNormal decimal.Decimal // net change of liability, equity and revenue accounts
}

// Balanced reports whether the two sides agree. Every valid posting moves
// both sides by the same amount, so an unbalanced result means state was
// changed outside the engine.
func (tb TrialBalance) Balanced() bool {
	return tb.DebitNormal.Equal(tb.CreditNormal)
}

// Trial computes the trial balance over changes since opening, so opening
// balances that do not themselves balance are ignored.
func Trial(s ledger.Snapshot) TrialBalance {
	tb := TrialBalance{DebitNormal: decimal.Zero, CreditNormal: decimal.Zero}
	for _, a := range s.Accounts {
		if a.Type.NormalSide() == model.Debit {
			tb.DebitNormal = tb.DebitNormal.Add(a.Change())
		} else {
			tb.CreditNormal = tb.CreditNormal.Add(a.Change())
		}
	}
	return tb
}
