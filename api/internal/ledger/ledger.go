// Package ledger gates and accounts for generation usage. Every read goes
// to the store; mutations for one user are serialized through a per-user
// lock on top of the store's single-statement updates.
package ledger

import (
	"context"
	"errors"
	"sync"
)

// ErrInsufficientBalance — баланс ≤ 0, запуск генерации запрещён.
var ErrInsufficientBalance = errors.New("ledger: insufficient token balance")

// Accounts is the slice of the user store the ledger needs.
type Accounts interface {
	Balance(ctx context.Context, userID int64) (available, used int64, err error)
	ApplyUsage(ctx context.Context, userID int64, tokens int64) error
	AddTokens(ctx context.Context, userID int64, amount int64) error
}

type Ledger struct {
	accounts Accounts

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func New(accounts Accounts) *Ledger {
	return &Ledger{accounts: accounts, locks: make(map[int64]*sync.Mutex)}
}

func (l *Ledger) userLock(userID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}

// Check reads the balance fresh and rejects a non-positive one.
func (l *Ledger) Check(ctx context.Context, userID int64) error {
	available, _, err := l.accounts.Balance(ctx, userID)
	if err != nil {
		return err
	}
	if available <= 0 {
		return ErrInsufficientBalance
	}
	return nil
}

// Settle debits tokens from the balance and credits the cumulative-used
// counter, once, after a successful generation.
func (l *Ledger) Settle(ctx context.Context, userID int64, tokens int64) error {
	if tokens <= 0 {
		return nil
	}
	m := l.userLock(userID)
	m.Lock()
	defer m.Unlock()
	return l.accounts.ApplyUsage(ctx, userID, tokens)
}

// Credit tops up the balance (admin grant path).
func (l *Ledger) Credit(ctx context.Context, userID int64, amount int64) error {
	m := l.userLock(userID)
	m.Lock()
	defer m.Unlock()
	return l.accounts.AddTokens(ctx, userID, amount)
}

// Balance exposes the raw counters for /balance.
func (l *Ledger) Balance(ctx context.Context, userID int64) (available, used int64, err error) {
	return l.accounts.Balance(ctx, userID)
}
