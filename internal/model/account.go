package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes lists every account type in balance-sheet order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
}

// Side is one side of a double entry.
type Side int

const (
	Debit Side = iota
	Credit
)

func (s Side) String() string {
	if s == Credit {
		return "credit"
	}
	return "debit"
}

// Valid reports whether t is one of the five known types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// Label returns the display form, e.g. "Asset".
func (t AccountType) Label() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// NormalSide returns the side that increases an account of this type.
// Assets and expenses grow on the debit side; everything else on the credit side.
func (t AccountType) NormalSide() Side {
	if t == AccountTypeAsset || t == AccountTypeExpense {
		return Debit
	}
	return Credit
}

// Signed returns amount when side is the normal side of t and -amount otherwise.
func (t AccountType) Signed(side Side, amount decimal.Decimal) decimal.Decimal {
	if side == t.NormalSide() {
		return amount
	}
	return amount.Neg()
}

// ParseAccountType parses a type name case-insensitively. The legacy
// "Owner's Equity" label maps to equity.
func ParseAccountType(s string) (AccountType, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "owner's equity" || norm == "owners equity" {
		return AccountTypeEquity, nil
	}
	t := AccountType(norm)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown account type %q", ErrInvalidInput, s)
	}
	return t, nil
}

// Account is a named balance in the chart of accounts.
type Account struct {
	Name           string
	Type           AccountType
	Description    string
	OpeningBalance decimal.Decimal
	Balance        decimal.Decimal
}

// Change returns the net movement posted to the account since it was opened.
func (a Account) Change() decimal.Decimal {
	return a.Balance.Sub(a.OpeningBalance)
}
