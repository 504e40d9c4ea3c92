package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/render"
	"github.com/cleared-dev/tally/internal/reports"
)

// errUnbalanced is returned by check when debits and credits disagree.
var errUnbalanced = errors.New("books do not balance")

func newCheckCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Replay all postings and verify debits equal credits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(cmd, opts)
			if err != nil {
				return err
			}

			precision := b.Config.Display.Precision
			snap := b.Engine.Snapshot()
			journalDebits, journalCredits := reports.JournalTotals(reports.GeneralJournal(snap))
			trial := reports.Trial(snap)

			t := &render.Table{
				Title:   "Check",
				Headers: []string{"Measure", "Debit", "Credit"},
				Align:   []render.Align{render.Left, render.Right, render.Right},
			}
			t.AddRow("Journal totals", render.Amount(journalDebits, precision), render.Amount(journalCredits, precision))
			t.AddRow("Trial balance", render.Amount(trial.DebitNormal, precision), render.Amount(trial.CreditNormal, precision))
			if err := writeTables(cmd.OutOrStdout(), opts.format, t); err != nil {
				return err
			}

			if !journalDebits.Equal(journalCredits) || !trial.Balanced() {
				return errUnbalanced
			}
			if opts.format == formatTable {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d transactions, %s posted, books balance\n",
					b.Engine.Len(), render.Amount(b.Engine.Volume(), precision))
			}
			return nil
		},
	}
}
