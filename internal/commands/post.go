package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/render"
)

func newPostCommand(opts *globalOptions) *cobra.Command {
	var date, description, debit, credit, amount string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a transaction and record it in the postings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = model.ToDate(time.Now()).Format(model.DateFormat)
			}
			p, err := ledger.UnmarshalPosting([]string{date, description, debit, credit, amount})
			if err != nil {
				return err
			}

			b, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			tx, err := b.Post(p)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Posted %s on %s: debit %s, credit %s, %s\n",
				tx.Ref, tx.DateString(), tx.DebitAccount, tx.CreditAccount,
				render.Amount(tx.Amount, b.Config.Display.Precision))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&description, "description", "", "what the transaction was for")
	cmd.Flags().StringVar(&debit, "debit", "", "account to debit (required)")
	cmd.Flags().StringVar(&credit, "credit", "", "account to credit (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "positive amount (required)")
	_ = cmd.MarkFlagRequired("debit")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newAddAccountCommand(opts *globalOptions) *cobra.Command {
	var typeName, opening string

	cmd := &cobra.Command{
		Use:   "add-account <name>",
		Short: "Add an account to the chart of accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountType, err := model.ParseAccountType(typeName)
			if err != nil {
				return err
			}
			balance := decimal.Zero
			if s := strings.TrimSpace(opening); s != "" {
				if balance, err = decimal.NewFromString(s); err != nil {
					return fmt.Errorf("%w: parsing opening balance %q", model.ErrInvalidInput, opening)
				}
			}

			b, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			acct, err := b.AddAccount(strings.TrimSpace(args[0]), accountType, balance)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s account %s with opening balance %s\n",
				acct.Type.Label(), acct.Name, render.Amount(acct.OpeningBalance, b.Config.Display.Precision))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "asset, liability, equity, revenue or expense (required)")
	cmd.Flags().StringVar(&opening, "opening", "", "opening balance (default 0)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
