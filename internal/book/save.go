package book

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/accounts"
	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/model"
)

// Post records p and rewrites the postings file. A rejected posting
// leaves both the engine and the file untouched.
func (b *Book) Post(p ledger.PostParams) (model.Transaction, error) {
	tx, err := b.Engine.Post(p)
	if err != nil {
		return model.Transaction{}, err
	}
	if err := b.SavePostings(); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// AddAccount registers an account and rewrites the chart of accounts file.
func (b *Book) AddAccount(name string, accountType model.AccountType, opening decimal.Decimal) (model.Account, error) {
	acct, err := b.Engine.AddAccount(name, accountType, opening)
	if err != nil {
		return model.Account{}, err
	}
	if err := b.SaveChart(); err != nil {
		return model.Account{}, err
	}
	return acct, nil
}

// SavePostings writes every transaction to the postings file in posting
// order, so replaying it assigns the same entry references.
func (b *Book) SavePostings() error {
	return writeFile(b.Path(b.Config.Files.Postings), func(w io.Writer) error {
		return ledger.WritePostings(w, b.Engine.Posted())
	})
}

// SaveChart writes the chart of accounts file with opening balances.
func (b *Book) SaveChart() error {
	return writeFile(b.Path(b.Config.Files.Chart), func(w io.Writer) error {
		return accounts.WriteAccounts(w, b.Engine.Accounts())
	})
}

// writeFile replaces path through a temp file in the same directory, so a
// failed write never leaves a truncated file behind.
func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
