// Package book opens a book directory: ledger.yaml, the chart of accounts
// and the postings file, replayed into a ready ledger.Engine.
package book

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/tally/internal/accounts"
	"github.com/cleared-dev/tally/internal/config"
	"github.com/cleared-dev/tally/internal/ledger"
	"github.com/cleared-dev/tally/internal/model"
)

// Book holds a loaded configuration and the engine built from it.
type Book struct {
	Root   string
	Config *config.Config
	Engine *ledger.Engine
}

// Open loads config, chart and postings from root. The chart comes from the
// chart file if present, then the inline chart in ledger.yaml, then the
// seed chart. A missing postings file means an empty ledger.
func Open(root string, logger zerolog.Logger) (*Book, error) {
	cfg, err := LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return OpenWithConfig(root, cfg, logger)
}

// LoadConfig reads the ledger.yaml at the root of a book directory.
func LoadConfig(root string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no %s in %s (run `tally init` first): %w", config.FileName, root, err)
	}
	return cfg, err
}

// OpenWithConfig is Open with an already loaded config.
func OpenWithConfig(root string, cfg *config.Config, logger zerolog.Logger) (*Book, error) {
	chart, err := loadChart(root, cfg)
	if err != nil {
		return nil, err
	}

	reg, err := accounts.NewRegistryFrom(chart)
	if err != nil {
		return nil, fmt.Errorf("loading chart of accounts: %w", err)
	}

	b := &Book{
		Root:   root,
		Config: cfg,
		Engine: ledger.New(reg, ledger.WithLogger(logger)),
	}

	postings, err := b.readPostings()
	if err != nil {
		return nil, err
	}
	if err := b.Replay(postings); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", root).
		Int("accounts", reg.Len()).
		Int("transactions", b.Engine.Len()).
		Msg("book opened")
	return b, nil
}

// Replay posts each request in order and stops at the first failure.
func (b *Book) Replay(postings []ledger.PostParams) error {
	for i, p := range postings {
		if _, err := b.Engine.Post(p); err != nil {
			return fmt.Errorf("%s row %d: %w", b.Config.Files.Postings, i+2, err)
		}
	}
	return nil
}

// Path resolves a configured file path against the book root.
func (b *Book) Path(rel string) string {
	return resolve(b.Root, rel)
}

func resolve(root, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(root, rel)
}

func loadChart(root string, cfg *config.Config) ([]model.Account, error) {
	path := resolve(root, cfg.Files.Chart)
	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		chart, err := accounts.ReadAccounts(f)
		if err != nil {
			return nil, fmt.Errorf("reading chart of accounts %s: %w", path, err)
		}
		return chart, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}

	if len(cfg.Chart) > 0 {
		return cfg.ChartAccounts()
	}
	return accounts.DefaultChart(), nil
}

func (b *Book) readPostings() ([]ledger.PostParams, error) {
	path := b.Path(b.Config.Files.Postings)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening postings %s: %w", path, err)
	}
	defer f.Close()

	postings, err := ledger.ReadPostings(f)
	if err != nil {
		return nil, fmt.Errorf("reading postings %s: %w", path, err)
	}
	return postings, nil
}
