package reports

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/id"
	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/model"
)

// GeneralJournal emits two lines per transaction in ascending date order,
// the debit line before the credit line.
func GeneralJournal(s ledger.Snapshot) []model.JournalLine {
	lines := make([]model.JournalLine, 0, 2*len(s.Transactions))
	for _, tx := range s.Transactions {
		lines = append(lines,
			model.JournalLine{
				Ref:         id.FormatLegRef(tx.Ref, 0),
				Date:        tx.Date,
				Description: tx.Description,
				Account:     tx.DebitAccount,
				Debit:       tx.Amount,
				Credit:      decimal.Zero,
			},
			model.JournalLine{
				Ref:         id.FormatLegRef(tx.Ref, 1),
				Date:        tx.Date,
				Description: tx.Description,
				Account:     tx.CreditAccount,
				Debit:       decimal.Zero,
				Credit:      tx.Amount,
			},
		)
	}
	return lines
}

// JournalTotals sums the debit and credit columns of a journal.
func JournalTotals(lines []model.JournalLine) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits, credits
}

// JournalEntry keeps the lines of one entry. ref may be an entry reference
// ("2024-01-004") or either of its leg references ("2024-01-004b").
func JournalEntry(lines []model.JournalLine, ref string) ([]model.JournalLine, error) {
	if _, _, _, err := id.ParseEntryRef(ref); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	group := id.EntryGroup(ref)

	out := []model.JournalLine{}
	for _, l := range lines {
		if id.EntryGroup(l.Ref) == group {
			out = append(out, l)
		}
	}
	return out, nil
}
