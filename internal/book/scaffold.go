package book

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleared-dev/tally/internal/accounts"
	"github.com/cleared-dev/tally/internal/config"
	"github.com/cleared-dev/tally/internal/ledger"
)

// Scaffold lays out a new book in dir: ledger.yaml, the seed chart of
// accounts and an empty postings file. It refuses to overwrite an
// existing ledger.yaml.
func Scaffold(dir string, cfg *config.Config) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	chartPath := resolve(dir, cfg.Files.Chart)
	postingsPath := resolve(dir, cfg.Files.Postings)
	for _, d := range []string{dir, filepath.Dir(chartPath), filepath.Dir(postingsPath)} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	chart, err := os.Create(chartPath)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer chart.Close()
	if err := accounts.WriteAccounts(chart, accounts.DefaultChart()); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	postings, err := os.Create(postingsPath)
	if err != nil {
		return fmt.Errorf("creating postings file: %w", err)
	}
	defer postings.Close()
	if err := ledger.WritePostings(postings, nil); err != nil {
		return fmt.Errorf("writing postings header: %w", err)
	}
	return nil
}
