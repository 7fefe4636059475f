package ledger

import (
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

var ErrInsufficientBalance = errors.New("insufficient_balance")
var ErrUnknownAccount = errors.New("unknown_account")

// Entry is one balance movement. The journal is append-only and lives
// only for the session.
type Entry struct {
	ID      string
	Account string
	Delta   int64
	Reason  string
	RefType string
	RefID   string
	At      time.Time
}

// Ledger keeps in-memory account balances. The game engines compute
// amounts only; every actual balance movement goes through here.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]int64
	entries  []Entry
}

func New() *Ledger {
	return &Ledger{balances: make(map[string]int64)}
}

// EnsureAccount creates the account with the given opening balance if it
// does not exist yet.
func (l *Ledger) EnsureAccount(account string, initial int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.balances[account]; ok {
		return
	}
	l.balances[account] = initial
}

func (l *Ledger) Balance(account string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	bal, ok := l.balances[account]
	if !ok {
		return 0, ErrUnknownAccount
	}
	return bal, nil
}

// Debit removes amount from the account and returns the new balance.
// The account can never go negative; a failed debit leaves no entry.
func (l *Ledger) Debit(account string, amount int64, reason, refType, refID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	bal, ok := l.balances[account]
	if !ok {
		return 0, ErrUnknownAccount
	}
	if bal < amount {
		return bal, ErrInsufficientBalance
	}
	bal -= amount
	l.balances[account] = bal
	l.record(account, -amount, reason, refType, refID)
	return bal, nil
}

// Credit adds amount to the account and returns the new balance.
func (l *Ledger) Credit(account string, amount int64, reason, refType, refID string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	bal, ok := l.balances[account]
	if !ok {
		return 0, ErrUnknownAccount
	}
	bal += amount
	l.balances[account] = bal
	l.record(account, amount, reason, refType, refID)
	return bal, nil
}

// Entries returns a copy of the journal in append order.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

func (l *Ledger) record(account string, delta int64, reason, refType, refID string) {
	e := Entry{
		ID:      ulid.Make().String(),
		Account: account,
		Delta:   delta,
		Reason:  reason,
		RefType: refType,
		RefID:   refID,
		At:      time.Now(),
	}
	l.entries = append(l.entries, e)
	log.Debug().Str("account", account).Int64("delta", delta).Str("reason", reason).Str("ref", refID).Msg("ledger entry")
}
