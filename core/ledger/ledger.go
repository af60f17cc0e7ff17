// Package ledger implements the in-memory token-balance collaborator the
// governance core depends on through governance.Ledger: account balances,
// minting, and the active electorate's voting-power sum.
package ledger

import (
	"sync"

	"github.com/civitas-social/governance/principal"
)

// ActivityOracle reports whether a principal counts toward the active
// electorate as of now. The reputation package's user store satisfies this;
// Ledger depends on the interface rather than the concrete type so the two
// packages stay decoupled.
type ActivityOracle interface {
	ActiveWithinWeeks(p principal.Principal, now uint64, weeks uint64) bool
}

// activeWithinWeeks is the window the reference implementation uses to
// decide whether a balance counts toward active_voting_power.
const activeWithinWeeks = 1

// Ledger is a process-local token ledger keyed by principal. It is safe for
// concurrent use.
type Ledger struct {
	mu       sync.RWMutex
	balances map[string]uint64
	activity ActivityOracle
}

// New constructs an empty Ledger. activity supplies the active-electorate
// predicate used by ActiveVotingPower; it may be nil, in which case every
// held balance counts (useful for tests that don't model activity).
func New(activity ActivityOracle) *Ledger {
	return &Ledger{
		balances: make(map[string]uint64),
		activity: activity,
	}
}

// BalanceOf implements governance.Ledger.
func (l *Ledger) BalanceOf(p principal.Principal) (uint64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	balance, ok := l.balances[p.String()]
	return balance, ok
}

// Mint implements governance.Ledger, crediting amount base units to p. A
// previously unseen principal gets a fresh zero-initialized entry.
func (l *Ledger) Mint(p principal.Principal, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[p.String()] += amount
	return nil
}

// SetBalance is a test/bootstrap helper that assigns an account's balance
// directly, bypassing Mint's additive semantics.
func (l *Ledger) SetBalance(p principal.Principal, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[p.String()] = amount
}

// ActiveVotingPower implements governance.Ledger: the sum of balances held
// by principals the activity oracle deems active within the last week, as
// of now.
func (l *Ledger) ActiveVotingPower(now uint64) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var total uint64
	for key, balance := range l.balances {
		if l.activity == nil {
			total += balance
			continue
		}
		p, err := principal.Parse(key)
		if err != nil {
			continue
		}
		if l.activity.ActiveWithinWeeks(p, now, activeWithinWeeks) {
			total += balance
		}
	}
	return total
}
