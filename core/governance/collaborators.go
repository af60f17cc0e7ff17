package governance

import "github.com/civitas-social/governance/principal"

// Ledger is the external token-ledger collaborator (§6 Ledger / accounts).
// The engine never inspects account internals; it only asks for balances and
// requests mints.
type Ledger interface {
	// BalanceOf returns the account's token balance in base units and
	// whether a ledger entry exists at all. A principal with no ledger
	// entry cannot vote ("only token holders can vote").
	BalanceOf(p principal.Principal) (balance uint64, ok bool)
	// Mint credits amount base units to p's account.
	Mint(p principal.Principal, amount uint64) error
	// ActiveVotingPower sums token balances held by currently-active users
	// as of now, supplying the undecayed denominator for §4.4 step 1.
	ActiveVotingPower(now uint64) uint64
}

// User is the subset of a platform user record the governance core reads and
// mutates (§6 User record).
type User interface {
	ID() principal.Principal
	Trusted() bool
	Stalwart() bool
	Name() string
	Cycles() uint64
	// ChangeKarma adjusts the user's reputation scalar, tagged with reason
	// for audit purposes.
	ChangeKarma(delta int64, reason string)
	// ClearStalwart revokes stalwart status and resets the active-weeks
	// counter, applied on non-controversial rejection of a proposal this
	// user authored.
	ClearStalwart()
	// ChargeCycles deducts up to amount cycles (clamped to the user's
	// current balance) tagged with reason, returning the amount charged.
	ChargeCycles(amount uint64, reason string) uint64
	// CreditCycles adds amount cycles, tagged with reason. Used to award
	// the per-ballot voting reward (§4.3).
	CreditCycles(amount uint64, reason string)
	Notify(text string)
}

// Users is the external user-directory collaborator.
type Users interface {
	// Lookup resolves a principal to its user record. ok is false if the
	// principal does not correspond to a known user.
	Lookup(p principal.Principal) (user User, ok bool)
	// ActiveWithinWeeks reports whether p has been active in the last n
	// weeks as of now.
	ActiveWithinWeeks(p principal.Principal, now uint64, weeks uint64) bool
	// NotifyActive broadcasts text to every user active within the last
	// week holding a positive token balance, per §4.2 step 5. subject
	// identifies the companion post the notification refers to.
	NotifyActive(now uint64, subject uint64, text string)
	// DenotifyActive withdraws the notification raised for subject from
	// every currently-active, positive-balance user. Supplements §4.2 by
	// mirroring the reference implementation's de-notification on
	// execution/resolution, which the distilled spec omits.
	DenotifyActive(now uint64, subject uint64)
}

// PostCreator is the external companion-post collaborator (§6 Post).
type PostCreator interface {
	// Create makes a companion post carrying description, tagged with a
	// Proposal(id) extension, and returns its post ID.
	Create(author principal.Principal, description string, proposalID uint32) (postID uint64, err error)
}

// Logger is the external structured logger collaborator. The governance core
// never panics on a collaborator failure after a status transition; it logs
// and moves on (§7 propagation policy).
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}
