package accounts

import "github.com/cleared-dev/tally/internal/model"

// DefaultChart returns the seed chart of accounts, every balance zero.
func DefaultChart() []model.Account {
	seed := []struct {
		name string
		typ  model.AccountType
	}{
		{"Cash", model.AccountTypeAsset},
		{"Accounts Receivable", model.AccountTypeAsset},
		{"Inventory", model.AccountTypeAsset},
		{"Supplies", model.AccountTypeAsset},
		{"Prepaid Expenses", model.AccountTypeAsset},
		{"Equipment", model.AccountTypeAsset},
		{"Furniture and Fixtures", model.AccountTypeAsset},
		{"Land", model.AccountTypeAsset},
		{"Buildings", model.AccountTypeAsset},
		{"Accounts Payable", model.AccountTypeLiability},
		{"Notes Payable", model.AccountTypeLiability},
		{"Salaries Payable", model.AccountTypeLiability},
		{"Rent Payable", model.AccountTypeLiability},
		{"Interest Payable", model.AccountTypeLiability},
		{"Unearned Revenue", model.AccountTypeLiability},
		{"Owner's Capital", model.AccountTypeEquity},
		{"Owner's Drawing", model.AccountTypeEquity},
		{"Service Revenue", model.AccountTypeRevenue},
		{"Sales Revenue", model.AccountTypeRevenue},
		{"Interest Income", model.AccountTypeRevenue},
		{"Salaries Expense", model.AccountTypeExpense},
		{"Rent Expense", model.AccountTypeExpense},
		{"Utilities Expense", model.AccountTypeExpense},
		{"Supplies Expense", model.AccountTypeExpense},
		{"Depreciation Expense", model.AccountTypeExpense},
		{"Insurance Expense", model.AccountTypeExpense},
		{"Advertising Expense", model.AccountTypeExpense},
	}

	chart := make([]model.Account, len(seed))
	for i, s := range seed {
		chart[i] = model.Account{Name: s.name, Type: s.typ}
	}
	return chart
}
