package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/book"
	"github.com/cleared-dev/tally/internal/logging"
	"github.com/cleared-dev/tally/internal/render"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
)

// openBook loads the book named by --book, logging to the command's stderr.
func openBook(cmd *cobra.Command, opts *globalOptions) (*book.Book, error) {
	cfg, err := book.LoadConfig(opts.bookDir)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	logger, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}

	return book.OpenWithConfig(opts.bookDir, cfg, logger)
}

// writeTables prints each table in the selected format. Text tables are
// separated by a blank line.
func writeTables(w io.Writer, format string, tables ...*render.Table) error {
	for i, t := range tables {
		if format == formatCSV {
			if err := t.WriteCSV(w); err != nil {
				return err
			}
			continue
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := t.Render(w); err != nil {
			return err
		}
	}
	return nil
}
