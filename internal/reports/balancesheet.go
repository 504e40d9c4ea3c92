package reports

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/model"
)

// BalanceSheet lists asset balances against liability and equity balances,
// each in chart order.
//
// Revenue and expense accounts are left out. There is no closing entry that
// moves net income into equity, so the two totals only agree when revenue
// and expense accounts net to zero.
func BalanceSheet(s ledger.Snapshot) model.BalanceSheet {
	bs := model.BalanceSheet{
		Assets:                    []model.BalanceLine{},
		LiabilitiesAndEquity:      []model.BalanceLine{},
		TotalAssets:               decimal.Zero,
		TotalLiabilitiesAndEquity: decimal.Zero,
	}
	for _, a := range s.Accounts {
		line := model.BalanceLine{Name: a.Name, Balance: a.Balance}
		switch a.Type {
		case model.AccountTypeAsset:
			bs.Assets = append(bs.Assets, line)
			bs.TotalAssets = bs.TotalAssets.Add(a.Balance)
		case model.AccountTypeLiability, model.AccountTypeEquity:
			bs.LiabilitiesAndEquity = append(bs.LiabilitiesAndEquity, line)
			bs.TotalLiabilitiesAndEquity = bs.TotalLiabilitiesAndEquity.Add(a.Balance)
		}
	}
	return bs
}
