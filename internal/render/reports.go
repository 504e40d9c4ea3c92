package render

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
)

// Amount formats d with a fixed number of decimal places.
func Amount(d decimal.Decimal, precision int32) string {
	return d.StringFixed(precision)
}

// amountOrBlank leaves zero amounts empty, as the journal's unused side is.
func amountOrBlank(d decimal.Decimal, precision int32) string {
	if d.IsZero() {
		return ""
	}
	return Amount(d, precision)
}

// Accounts renders the chart of accounts with current balances.
func Accounts(accts []model.Account, precision int32) *Table {
	t := &Table{
		Title:   "Accounts",
		Headers: []string{"Account Name", "Type", "Current Balance"},
		Align:   []Align{Left, Left, Right},
	}
	for _, a := range accts {
		t.AddRow(a.Name, a.Type.Label(), Amount(a.Balance, precision))
	}
	return t
}

// Transactions renders a transaction list in the order given.
func Transactions(txns []model.Transaction, precision int32) *Table {
	t := &Table{
		Title:   "Transactions",
		Headers: []string{"Ref", "Date", "Description", "Debit Account", "Credit Account", "Amount"},
		Align:   []Align{Left, Left, Left, Left, Left, Right},
	}
	for _, tx := range txns {
		t.AddRow(tx.Ref, tx.DateString(), tx.Description, tx.DebitAccount, tx.CreditAccount, Amount(tx.Amount, precision))
	}
	return t
}

// Journal renders general journal lines with a totals footer.
func Journal(lines []model.JournalLine, precision int32) *Table {
	t := &Table{
		Title:   "General Journal",
		Headers: []string{"Ref", "Date", "Description", "Account", "Debit", "Credit"},
		Align:   []Align{Left, Left, Left, Left, Right, Right},
	}
	debits, credits := decimal.Zero, decimal.Zero
	for _, l := range lines {
		t.AddRow(l.Ref, l.Date.Format(model.DateFormat), l.Description, l.Account,
			amountOrBlank(l.Debit, precision), amountOrBlank(l.Credit, precision))
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	t.AddFooter("", "", "", "Total", Amount(debits, precision), Amount(credits, precision))
	return t
}

// Ledger renders one account's general ledger.
func Ledger(account string, rows []model.LedgerRow, precision int32) *Table {
	t := &Table{
		Title:   "General Ledger: " + account,
		Headers: []string{"Date", "Description", "Debit Account", "Credit Account", "Amount", "Running Balance"},
		Align:   []Align{Left, Left, Left, Left, Right, Right},
	}
	for _, r := range rows {
		t.AddRow(r.Date.Format(model.DateFormat), r.Description, r.DebitAccount, r.CreditAccount,
			Amount(r.Amount, precision), Amount(r.RunningBalance, precision))
	}
	return t
}

// BalanceSheet renders the two sides of the balance sheet as separate tables.
func BalanceSheet(bs model.BalanceSheet, precision int32) []*Table {
	assets := &Table{
		Title:   "Assets",
		Headers: []string{"Account", "Balance"},
		Align:   []Align{Left, Right},
	}
	for _, l := range bs.Assets {
		assets.AddRow(l.Name, Amount(l.Balance, precision))
	}
	assets.AddFooter("Total Assets", Amount(bs.TotalAssets, precision))

	liabilities := &Table{
		Title:   "Liabilities and Owner's Equity",
		Headers: []string{"Account", "Balance"},
		Align:   []Align{Left, Right},
	}
	for _, l := range bs.LiabilitiesAndEquity {
		liabilities.AddRow(l.Name, Amount(l.Balance, precision))
	}
	liabilities.AddFooter("Total Liabilities and Equity", Amount(bs.TotalLiabilitiesAndEquity, precision))

	return []*Table{assets, liabilities}
}

// BalanceSheetFlat renders the balance sheet as one table with a section
// column, for CSV export.
func BalanceSheetFlat(bs model.BalanceSheet, precision int32) *Table {
	t := &Table{Headers: []string{"section", "account", "balance"}}
	for _, l := range bs.Assets {
		t.AddRow("assets", l.Name, Amount(l.Balance, precision))
	}
	for _, l := range bs.LiabilitiesAndEquity {
		t.AddRow("liabilities_and_equity", l.Name, Amount(l.Balance, precision))
	}
	t.AddFooter("total_assets", "", Amount(bs.TotalAssets, precision))
	t.AddFooter("total_liabilities_and_equity", "", Amount(bs.TotalLiabilitiesAndEquity, precision))
	return t
}
