package accounts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
)

// Registry owns the chart of accounts: unique names, insertion order and
// current balances. It is not safe for concurrent use; ledger.Engine
// serializes access to it.
type Registry struct {
	accounts []*model.Account
	byName   map[string]*model.Account
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*model.Account)}
}

// NewRegistryFrom builds a registry from a chart, in order. Each account's
// Balance is reset to its OpeningBalance.
func NewRegistryFrom(chart []model.Account) (*Registry, error) {
	r := NewRegistry()
	for _, a := range chart {
		acct, err := r.Add(a.Name, a.Type, a.OpeningBalance)
		if err != nil {
			return nil, err
		}
		r.byName[acct.Name].Description = a.Description
	}
	return r, nil
}

// Add registers a new account with the given opening balance.
func (r *Registry) Add(name string, accountType model.AccountType, opening decimal.Decimal) (model.Account, error) {
	if strings.TrimSpace(name) == "" {
		return model.Account{}, fmt.Errorf("%w: account name is empty", model.ErrInvalidInput)
	}
	if !accountType.Valid() {
		return model.Account{}, fmt.Errorf("%w: account %q has unknown type %q", model.ErrInvalidInput, name, accountType)
	}
	if _, ok := r.byName[name]; ok {
		return model.Account{}, fmt.Errorf("%w: %q", model.ErrDuplicateAccount, name)
	}

	acct := &model.Account{
		Name:           name,
		Type:           accountType,
		OpeningBalance: opening,
		Balance:        opening,
	}
	r.accounts = append(r.accounts, acct)
	r.byName[name] = acct
	return *acct, nil
}

// Get returns an account by exact name.
func (r *Registry) Get(name string) (model.Account, bool) {
	a, ok := r.byName[name]
	if !ok {
		return model.Account{}, false
	}
	return *a, true
}

// Exists reports whether an account name is registered.
func (r *Registry) Exists(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int {
	return len(r.accounts)
}

// All returns every account in insertion order.
func (r *Registry) All() []model.Account {
	return r.Filter(func(model.AccountType) bool { return true })
}

// Filter returns the accounts whose type satisfies pred, in insertion order.
func (r *Registry) Filter(pred func(model.AccountType) bool) []model.Account {
	result := []model.Account{}
	for _, a := range r.accounts {
		if pred(a.Type) {
			result = append(result, *a)
		}
	}
	return result
}

// ByType returns the accounts of any of the given types.
func (r *Registry) ByType(types ...model.AccountType) []model.Account {
	return r.Filter(func(t model.AccountType) bool {
		for _, want := range types {
			if t == want {
				return true
			}
		}
		return false
	})
}

// DebitEligible lists accounts whose normal side is debit. This is a
// selection-list convenience; any account may be posted on either side.
func (r *Registry) DebitEligible() []model.Account {
	return r.Filter(func(t model.AccountType) bool { return t.NormalSide() == model.Debit })
}

// CreditEligible lists accounts whose normal side is credit.
func (r *Registry) CreditEligible() []model.Account {
	return r.Filter(func(t model.AccountType) bool { return t.NormalSide() == model.Credit })
}

// Names returns account names in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.accounts))
	for i, a := range r.accounts {
		names[i] = a.Name
	}
	return names
}

// SortedNames returns account names in lexical order.
func (r *Registry) SortedNames() []string {
	names := r.Names()
	sort.Strings(names)
	return names
}

// Apply posts amount to one side of the named account using the
// normal-balance rule of its type, and returns the signed change.
func (r *Registry) Apply(name string, side model.Side, amount decimal.Decimal) (decimal.Decimal, error) {
	a, ok := r.byName[name]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", model.ErrMissingAccount, name)
	}
	delta := a.Type.Signed(side, amount)
	a.Balance = a.Balance.Add(delta)
	return delta, nil
}
