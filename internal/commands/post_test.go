package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/model"
)

func TestPost(t *testing.T) {
	dir := sampleBook(t)
	out, _, err := runTally(t, "post", "--book", dir,
		"--date", "2024-01-15", "--description", "Printer paper",
		"--debit", "Supplies", "--credit", "Cash", "--amount", "42.125")
	require.NoError(t, err)
	assert.Equal(t, "Posted 2024-01-007 on 2024-01-15: debit Supplies, credit Cash, 42.13\n", out)

	data, err := os.ReadFile(filepath.Join(dir, "postings.csv"))
	require.NoError(t, err)
	lines := csvLines(string(data))
	require.Len(t, lines, 8)
	assert.Equal(t, "2024-01-15,Printer paper,Supplies,Cash,42.125", lines[7])

	out, _, err = runTally(t, "ledger", "Supplies", "--book", dir, "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-15,Printer paper,Supplies,Cash,42.13,42.13")

	out, _, err = runTally(t, "journal", "--book", dir, "--format", "csv", "--ref", "2024-01-007")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-007a,2024-01-15,Printer paper,Supplies,42.13,")
}

func TestPost_DefaultsToToday(t *testing.T) {
	dir := sampleBook(t)
	out, _, err := runTally(t, "post", "--book", dir, "--debit", "Cash", "--credit", "Service Revenue", "--amount", "10")
	require.NoError(t, err)
	assert.Contains(t, out, model.ToDate(time.Now()).Format(model.DateFormat))
}

func TestPost_RejectedLeavesPostingsUnchanged(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"same account", []string{"--debit", "Cash", "--credit", "Cash", "--amount", "5"}, model.ErrSameAccount},
		{"missing account", []string{"--debit", "Meals", "--credit", "Cash", "--amount", "5"}, model.ErrMissingAccount},
		{"zero amount", []string{"--debit", "Cash", "--credit", "Service Revenue", "--amount", "0"}, model.ErrInvalidAmount},
		{"negative amount", []string{"--debit", "Cash", "--credit", "Service Revenue", "--amount", "-5"}, model.ErrInvalidAmount},
		{"bad amount", []string{"--debit", "Cash", "--credit", "Service Revenue", "--amount", "five"}, model.ErrInvalidAmount},
		{"bad date", []string{"--date", "2024-02-30", "--debit", "Cash", "--credit", "Service Revenue", "--amount", "5"}, model.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := sampleBook(t)
			path := filepath.Join(dir, "postings.csv")
			before, err := os.ReadFile(path)
			require.NoError(t, err)

			_, _, err = runTally(t, append([]string{"post", "--book", dir}, tt.args...)...)
			require.ErrorIs(t, err, tt.want)

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, string(before), string(after))
		})
	}
}

func TestPost_RequiresAccounts(t *testing.T) {
	dir := sampleBook(t)
	_, _, err := runTally(t, "post", "--book", dir, "--amount", "5")
	require.Error(t, err)
}

func TestAddAccount(t *testing.T) {
	dir := sampleBook(t)
	out, _, err := runTally(t, "add-account", "Petty Cash", "--book", dir, "--type", "asset", "--opening", "50")
	require.NoError(t, err)
	assert.Equal(t, "Added Asset account Petty Cash with opening balance 50.00\n", out)

	out, _, err = runTally(t, "accounts", "--book", dir, "--format", "csv", "--type", "asset")
	require.NoError(t, err)
	assert.Contains(t, csvLines(out), "Petty Cash,Asset,50.00")

	_, _, err = runTally(t, "post", "--book", dir, "--date", "2024-02-01",
		"--debit", "Petty Cash", "--credit", "Cash", "--amount", "20")
	require.NoError(t, err)

	out, _, err = runTally(t, "ledger", "Petty Cash", "--book", dir, "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-02-01,,Petty Cash,Cash,20.00,20.00")

	out, _, err = runTally(t, "check", "--book", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "7 transactions")
}

func TestAddAccount_Rejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"duplicate", []string{"Cash", "--type", "asset"}, model.ErrDuplicateAccount},
		{"blank name", []string{"  ", "--type", "asset"}, model.ErrInvalidInput},
		{"bad type", []string{"Vault", "--type", "cash"}, model.ErrInvalidInput},
		{"bad opening", []string{"Vault", "--type", "asset", "--opening", "lots"}, model.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := sampleBook(t)
			path := filepath.Join(dir, "accounts", "chart-of-accounts.csv")
			before, err := os.ReadFile(path)
			require.NoError(t, err)

			_, _, err = runTally(t, append([]string{"add-account", "--book", dir}, tt.args...)...)
			require.ErrorIs(t, err, tt.want)

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, string(before), string(after))
		})
	}
}
