package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
)

// Header is the CSV header for postings.csv.
const Header = "date,description,debit_account,credit_account,amount"

const (
	numFields = 5
	colDate   = 0
	colDesc   = 1
	colDebit  = 2
	colCredit = 3
	colAmount = 4
)

// ReadPostings reads posting requests from a postings.csv reader. Dates and
// amounts are parsed here; the engine only ever sees parsed values.
func ReadPostings(r io.Reader) ([]PostParams, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading postings CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var postings []PostParams
	for i, rec := range records[1:] {
		p, err := UnmarshalPosting(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// WritePostings writes transactions as postings.csv rows (including header),
// in the order given.
func WritePostings(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txns {
		if err := cw.Write(MarshalPosting(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalPosting converts a Transaction to a CSV row.
func MarshalPosting(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.DateString()
	row[colDesc] = tx.Description
	row[colDebit] = tx.DebitAccount
	row[colCredit] = tx.CreditAccount
	row[colAmount] = tx.Amount.String()
	return row
}

// UnmarshalPosting converts a CSV row to posting parameters.
func UnmarshalPosting(record []string) (PostParams, error) {
	if len(record) != numFields {
		return PostParams{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(model.DateFormat, strings.TrimSpace(record[colDate]))
	if err != nil {
		return PostParams{}, fmt.Errorf("%w: parsing date %q: use YYYY-MM-DD", model.ErrInvalidDate, record[colDate])
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[colAmount]))
	if err != nil {
		return PostParams{}, fmt.Errorf("%w: parsing amount %q", model.ErrInvalidAmount, record[colAmount])
	}

	return PostParams{
		Date:          date,
		Description:   strings.TrimSpace(record[colDesc]),
		DebitAccount:  strings.TrimSpace(record[colDebit]),
		CreditAccount: strings.TrimSpace(record[colCredit]),
		Amount:        amount,
	}, nil
}
