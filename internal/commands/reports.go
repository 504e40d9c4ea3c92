package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/render"
	"github.com/cleared-dev/tally/internal/reports"
)

func newAccountsCommand(opts *globalOptions) *cobra.Command {
	var typeNames []string
	var side string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List accounts with their current balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := make([]model.AccountType, 0, len(typeNames))
			for _, n := range typeNames {
				t, err := model.ParseAccountType(n)
				if err != nil {
					return err
				}
				types = append(types, t)
			}

			b, err := openBook(cmd, opts)
			if err != nil {
				return err
			}

			var accts []model.Account
			switch side {
			case "":
				accts = reports.AccountBalances(b.Engine.Snapshot(), types...)
			case "debit":
				accts = b.Engine.DebitEligible()
			case "credit":
				accts = b.Engine.CreditEligible()
			default:
				return fmt.Errorf("%w: unknown --side %q (want debit or credit)", model.ErrInvalidInput, side)
			}
			return writeTables(cmd.OutOrStdout(), opts.format, render.Accounts(accts, b.Config.Display.Precision))
		},
	}

	cmd.Flags().StringSliceVar(&typeNames, "type", nil, "only show accounts of these types (asset, liability, equity, revenue, expense)")
	cmd.Flags().StringVar(&side, "side", "", "only show accounts whose normal side is debit or credit")
	cmd.MarkFlagsMutuallyExclusive("type", "side")
	return cmd
}

func newTransactionsCommand(opts *globalOptions) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			txns := reports.FilterTransactions(b.Engine.Snapshot(), search)
			return writeTables(cmd.OutOrStdout(), opts.format, render.Transactions(txns, b.Config.Display.Precision))
		},
	}

	cmd.Flags().StringVarP(&search, "query", "q", "", "case-insensitive search over date, description and account names")
	return cmd
}

func newJournalCommand(opts *globalOptions) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Print the general journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			lines := reports.GeneralJournal(b.Engine.Snapshot())
			if ref != "" {
				if lines, err = reports.JournalEntry(lines, ref); err != nil {
					return err
				}
			}
			return writeTables(cmd.OutOrStdout(), opts.format, render.Journal(lines, b.Config.Display.Precision))
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "only show one entry, e.g. 2024-01-004")
	return cmd
}

func newLedgerCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ledger <account>",
		Short: "Print the general ledger of one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			rows, err := reports.GeneralLedger(b.Engine.Snapshot(), args[0])
			if err != nil {
				return err
			}
			return writeTables(cmd.OutOrStdout(), opts.format, render.Ledger(args[0], rows, b.Config.Display.Precision))
		},
	}
}

func newBalanceSheetCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balance-sheet",
		Short: "Print assets against liabilities and owner's equity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			bs := reports.BalanceSheet(b.Engine.Snapshot())
			precision := b.Config.Display.Precision
			if opts.format == formatCSV {
				return writeTables(cmd.OutOrStdout(), opts.format, render.BalanceSheetFlat(bs, precision))
			}
			return writeTables(cmd.OutOrStdout(), opts.format, render.BalanceSheet(bs, precision)...)
		},
	}
}
