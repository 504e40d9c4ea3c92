package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is one row of the general journal: one side of a transaction.
type JournalLine struct {
	Ref         string // leg reference, "YYYY-MM-NNNa"
	Date        time.Time
	Description string
	Account     string
	Debit       decimal.Decimal // zero on the credit line
	Credit      decimal.Decimal // zero on the debit line
}

// Side reports which side of the entry the line records.
func (l JournalLine) Side() Side {
	if l.Credit.IsZero() {
		return Debit
	}
	return Credit
}

// LedgerRow is one row of an account's general ledger.
type LedgerRow struct {
	Date           time.Time
	Description    string
	DebitAccount   string
	CreditAccount  string
	Amount         decimal.Decimal
	RunningBalance decimal.Decimal
}

// BalanceLine is an account name and its balance on the balance sheet.
type BalanceLine struct {
	Name    string
	Balance decimal.Decimal
}

// BalanceSheet lists assets against liabilities and equity.
// Revenue and expense accounts are not closed into equity and do not appear.
type BalanceSheet struct {
	Assets                    []BalanceLine
	LiabilitiesAndEquity      []BalanceLine
	TotalAssets               decimal.Decimal
	TotalLiabilitiesAndEquity decimal.Decimal
}
