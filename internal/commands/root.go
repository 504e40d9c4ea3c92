package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/buildinfo"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	bookDir  string
	format   string
	logLevel string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Double-entry bookkeeping for a small business",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case formatTable, formatCSV:
				return nil
			default:
				return fmt.Errorf("unknown --format %q (want %s or %s)", opts.format, formatTable, formatCSV)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.bookDir, "book", ".", "book directory containing ledger.yaml")
	flags.StringVar(&opts.format, "format", formatTable, "output format: table or csv")
	flags.StringVar(&opts.logLevel, "log-level", "", "override logging.level from ledger.yaml")

	rootCmd.AddCommand(
		newInitCommand(),
		newAccountsCommand(opts),
		newTransactionsCommand(opts),
		newJournalCommand(opts),
		newLedgerCommand(opts),
		newBalanceSheetCommand(opts),
		newCheckCommand(opts),
		newPostCommand(opts),
		newAddAccountCommand(opts),
	)

	return rootCmd
}
