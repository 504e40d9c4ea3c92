package ledger

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/accounts"
	"github.com/cleared-dev/tally/internal/id"
	"github.com/cleared-dev/tally/internal/model"
)

// Engine owns the chart of accounts and the transaction log, and posts
// transactions against them. All methods are safe for concurrent use; a
// posting is observed by readers either completely or not at all.
type Engine struct {
	mu       sync.RWMutex
	registry *accounts.Registry
	log      []model.Transaction // ascending by date, ties in posting order
	refs     *id.Sequencer
	posted   int
	logger   zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for posting events.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New returns an Engine over reg. A nil registry starts an empty chart.
func New(reg *accounts.Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = accounts.NewRegistry()
	}
	e := &Engine{
		registry: reg,
		refs:     id.NewSequencer(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddAccount registers a new account.
func (e *Engine) AddAccount(name string, accountType model.AccountType, opening decimal.Decimal) (model.Account, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	acct, err := e.registry.Add(name, accountType, opening)
	if err != nil {
		e.logger.Info().Err(err).Str("account", name).Msg("account rejected")
		return model.Account{}, err
	}
	e.logger.Debug().Str("account", name).Str("type", string(accountType)).Msg("account added")
	return acct, nil
}

// Account returns an account by exact name.
func (e *Engine) Account(name string) (model.Account, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry.Get(name)
}

// Accounts returns every account in insertion order.
func (e *Engine) Accounts() []model.Account {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry.All()
}

// DebitEligible lists debit-normal accounts for selection lists.
func (e *Engine) DebitEligible() []model.Account {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry.DebitEligible()
}

// CreditEligible lists credit-normal accounts for selection lists.
func (e *Engine) CreditEligible() []model.Account {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry.CreditEligible()
}

// Post validates and records a transaction. On any validation error
// neither balance nor the log changes.
func (e *Engine) Post(p PostParams) (model.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ValidatePosting(p, e.registry); err != nil {
		e.logger.Info().Err(err).
			Str("debit", p.DebitAccount).
			Str("credit", p.CreditAccount).
			Msg("posting rejected")
		return model.Transaction{}, err
	}

	date := model.ToDate(p.Date)
	tx := model.Transaction{
		Seq:           e.posted + 1,
		Ref:           e.refs.Peek(date),
		Date:          date,
		Description:   p.Description,
		DebitAccount:  p.DebitAccount,
		CreditAccount: p.CreditAccount,
		Amount:        p.Amount,
	}

	// Both accounts were checked under this lock, so Apply cannot fail here.
	if _, err := e.registry.Apply(tx.DebitAccount, model.Debit, tx.Amount); err != nil {
		return model.Transaction{}, err
	}
	if _, err := e.registry.Apply(tx.CreditAccount, model.Credit, tx.Amount); err != nil {
		return model.Transaction{}, err
	}

	e.refs.Next(date)
	e.posted++
	e.insert(tx)

	e.logger.Debug().
		Str("ref", tx.Ref).
		Str("date", tx.DateString()).
		Str("debit", tx.DebitAccount).
		Str("credit", tx.CreditAccount).
		Str("amount", tx.Amount.StringFixed(2)).
		Msg("transaction posted")

	return tx, nil
}

// insert places tx after every transaction dated on or before it.
func (e *Engine) insert(tx model.Transaction) {
	i := sort.Search(len(e.log), func(i int) bool {
		return e.log[i].Date.After(tx.Date)
	})
	e.log = append(e.log, model.Transaction{})
	copy(e.log[i+1:], e.log[i:])
	e.log[i] = tx
}

// Transactions returns the log newest first, the default display order.
func (e *Engine) Transactions() []model.Transaction {
	return e.Snapshot().Newest()
}

// Log returns the log in canonical ascending date order.
func (e *Engine) Log() []model.Transaction {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]model.Transaction(nil), e.log...)
}

// Len returns the number of posted transactions.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.log)
}

// Snapshot copies accounts and log under a single read lock.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Snapshot{
		Accounts:     e.registry.All(),
		Transactions: append([]model.Transaction{}, e.log...),
	}
}

// Volume sums the amounts of every posted transaction. Each posting moves
// the same amount on both sides, so this is also the total of either
// journal column.
func (e *Engine) Volume() decimal.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()

	total := decimal.Zero
	for _, tx := range e.log {
		total = total.Add(tx.Amount)
	}
	return total
}

// Posted returns the log in posting order, the order a replay must follow
// to reproduce the same entry references.
func (e *Engine) Posted() []model.Transaction {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := append([]model.Transaction(nil), e.log...)
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}
