package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/config"
	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/model"
)

func scaffold(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, Scaffold(dir, config.Default("Test Biz")))
	return dir
}

func writePostings(t *testing.T, dir, body string) {
	t.Helper()
	path := filepath.Join(dir, "postings.csv")
	require.NoError(t, os.WriteFile(path, []byte(ledger.Header+"\n"+body), 0o644))
}

func TestScaffold(t *testing.T) {
	dir := scaffold(t)

	for _, f := range []string{"ledger.yaml", "accounts/chart-of-accounts.csv", "postings.csv"} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, "%s should exist", f)
	}

	err := Scaffold(dir, config.Default("Again"))
	assert.ErrorContains(t, err, "already exists")
}

func TestOpen_EmptyBook(t *testing.T) {
	b, err := Open(scaffold(t), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "Test Biz", b.Config.Business.Name)
	assert.Len(t, b.Engine.Accounts(), 27)
	assert.Equal(t, 0, b.Engine.Len())
}

func TestOpen_ReplaysPostings(t *testing.T) {
	dir := scaffold(t)
	writePostings(t, dir, "2024-01-01,Owner investment,Cash,Owner's Capital,1000\n2024-01-02,Rent,Rent Expense,Cash,400\n")

	b, err := Open(dir, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, b.Engine.Len())

	cash, ok := b.Engine.Account("Cash")
	require.True(t, ok)
	assert.True(t, cash.Balance.Equal(decimal.NewFromInt(600)))
}

func TestOpen_BadPostingNamesRow(t *testing.T) {
	dir := scaffold(t)
	writePostings(t, dir, "2024-01-01,ok,Cash,Owner's Capital,10\n2024-01-02,bad,Cash,Cash,10\n")

	_, err := Open(dir, zerolog.Nop())
	require.ErrorIs(t, err, model.ErrSameAccount)
	assert.Contains(t, err.Error(), "postings.csv row 3")
}

func TestOpen_MissingConfig(t *testing.T) {
	_, err := Open(t.TempDir(), zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tally init")
}

func TestOpen_ChartFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default("Inline")
	cfg.Chart = []config.ChartAccount{
		{Name: "Bank", Type: "asset", OpeningBalance: "50"},
		{Name: "Capital", Type: "equity", OpeningBalance: "50"},
	}
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	b, err := Open(dir, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, b.Engine.Accounts(), 2)

	bank, ok := b.Engine.Account("Bank")
	require.True(t, ok)
	assert.True(t, bank.OpeningBalance.Equal(decimal.NewFromInt(50)))
}

func TestOpen_SeedChartWhenNothingConfigured(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), config.Default("Bare")))

	b, err := Open(dir, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, b.Engine.Accounts(), 27)
}

func TestPath(t *testing.T) {
	b := &Book{Root: "/books/acme"}
	assert.Equal(t, filepath.Join("/books/acme", "postings.csv"), b.Path("postings.csv"))
	assert.Equal(t, "/data/p.csv", b.Path("/data/p.csv"))
}
