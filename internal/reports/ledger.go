package reports

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/model"
)

// GeneralLedger lists every transaction touching the named account in
// ascending date order with a running balance. The running balance starts
// at zero, not at the opening balance, and moves by the same normal-balance
// rule used when posting.
func GeneralLedger(s ledger.Snapshot, name string) ([]model.LedgerRow, error) {
	acct, err := s.Account(name)
	if err != nil {
		return nil, err
	}

	rows := []model.LedgerRow{}
	running := decimal.Zero
	for _, tx := range s.Transactions {
		switch name {
		case tx.DebitAccount:
			running = running.Add(acct.Type.Signed(model.Debit, tx.Amount))
		case tx.CreditAccount:
			running = running.Add(acct.Type.Signed(model.Credit, tx.Amount))
		default:
			continue
		}
		rows = append(rows, model.LedgerRow{
			Date:           tx.Date,
			Description:    tx.Description,
			DebitAccount:   tx.DebitAccount,
			CreditAccount:  tx.CreditAccount,
			Amount:         tx.Amount,
			RunningBalance: running,
		})
	}
	return rows, nil
}
