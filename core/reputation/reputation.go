// Package reputation implements the platform's user-record collaborator:
// karma, cycles, trust and stalwart flags, and activity tracking, satisfying
// governance.Users and governance.User.
package reputation

import (
	"sync"

	"github.com/civitas-social/governance/core/governance"
	"github.com/civitas-social/governance/principal"
)

const secondsPerWeek = 7 * 24 * 60 * 60

// Record is a single user's reputation state. Its exported methods satisfy
// governance.User; callers outside this package should treat it as opaque.
type Record struct {
	mu sync.Mutex

	id       principal.Principal
	name     string
	trusted  bool
	stalwart bool
	karma    int64
	cycles   uint64

	lastActive uint64
	log        []Entry
	pending    []string
}

// Entry is one audited karma or cycle adjustment, kept for operator tooling
// and test assertions.
type Entry struct {
	Delta  int64
	Reason string
}

// ID implements governance.User.
func (r *Record) ID() principal.Principal { return r.id }

// Trusted implements governance.User.
func (r *Record) Trusted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trusted
}

// Stalwart implements governance.User.
func (r *Record) Stalwart() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stalwart
}

// Name implements governance.User.
func (r *Record) Name() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.name
}

// Cycles implements governance.User.
func (r *Record) Cycles() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycles
}

// Karma returns the current karma scalar. Not part of governance.User; it's
// exposed for tests and the read API.
func (r *Record) Karma() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.karma
}

// ChangeKarma implements governance.User.
func (r *Record) ChangeKarma(delta int64, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.karma += delta
	r.log = append(r.log, Entry{Delta: delta, Reason: reason})
}

// ClearStalwart implements governance.User.
func (r *Record) ClearStalwart() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stalwart = false
	r.lastActive = 0
}

// ChargeCycles implements governance.User, clamping the charge to the
// current balance.
func (r *Record) ChargeCycles(amount uint64, reason string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	charged := amount
	if charged > r.cycles {
		charged = r.cycles
	}
	r.cycles -= charged
	r.log = append(r.log, Entry{Delta: -int64(charged), Reason: reason})
	return charged
}

// CreditCycles implements governance.User.
func (r *Record) CreditCycles(amount uint64, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cycles += amount
	r.log = append(r.log, Entry{Delta: int64(amount), Reason: reason})
}

// Notify implements governance.User by appending a pending notification.
// Real deployments forward this to the post/notification subsystem; for
// this core it is a recorded mailbox.
func (r *Record) Notify(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, text)
}

// Notifications returns a copy of the notifications recorded for this user.
func (r *Record) Notifications() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.pending))
	copy(out, r.pending)
	return out
}

// Store is the process-local directory of Records, satisfying
// governance.Users.
type Store struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// New constructs an empty Store.
func New() *Store {
	return &Store{records: make(map[string]*Record)}
}

// Register adds a new user record. It is a bootstrap/test helper, not part
// of the governance collaborator surface.
func (s *Store) Register(id principal.Principal, name string, trusted, stalwart bool, now uint64) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &Record{id: id, name: name, trusted: trusted, stalwart: stalwart, lastActive: now}
	s.records[id.String()] = r
	return r
}

// Lookup implements governance.Users.
func (s *Store) Lookup(p principal.Principal) (governance.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[p.String()]
	if !ok {
		return nil, false
	}
	return r, true
}

// ActiveWithinWeeks implements governance.Users and ledger.ActivityOracle.
func (s *Store) ActiveWithinWeeks(p principal.Principal, now uint64, weeks uint64) bool {
	s.mu.RLock()
	r, ok := s.records[p.String()]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if now <= r.lastActive {
		return true
	}
	return now-r.lastActive <= weeks*secondsPerWeek
}

// Touch marks p active as of now. Real deployments call this from every
// authenticated request; it is exposed here so tests and the API layer can
// drive activity directly.
func (s *Store) Touch(p principal.Principal, now uint64) {
	s.mu.RLock()
	r, ok := s.records[p.String()]
	s.mu.RUnlock()
	if !ok {
		return
	}
	r.mu.Lock()
	r.lastActive = now
	r.mu.Unlock()
}

// NotifyActive implements governance.Users: broadcasts text to every user
// active within the last week holding a positive token balance. balanceOf
// is supplied by the caller (the engine wiring passes the ledger) since the
// reputation store does not itself track balances.
func (s *Store) NotifyActive(now uint64, subject uint64, text string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		r.mu.Lock()
		active := now <= r.lastActive || now-r.lastActive <= secondsPerWeek
		if active {
			r.pending = append(r.pending, text)
		}
		r.mu.Unlock()
	}
}

// DenotifyActive implements governance.Users. The reference's withdrawal
// semantics are by post subject, which this in-memory mailbox does not
// index; deployments with a real notification bus route this through it
// instead. Kept as a no-op placeholder that documents the gap rather than
// silently dropping the call.
func (s *Store) DenotifyActive(now uint64, subject uint64) {}
