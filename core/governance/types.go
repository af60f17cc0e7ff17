package governance

import (
	"github.com/civitas-social/governance/principal"
)

// Status enumerates the lifecycle phases a proposal transitions through.
// Open is the sole non-terminal status; the rest are absorbing.
type Status uint8

const (
	// StatusOpen indicates the proposal is accepting ballots and has not
	// yet been resolved into a terminal status.
	StatusOpen Status = iota
	// StatusRejected marks a proposal the electorate voted down.
	StatusRejected
	// StatusExecuted marks a proposal whose payload effects were applied.
	StatusExecuted
	// StatusCancelled marks a proposal withdrawn by its proposer or
	// superseded by a newer release proposal.
	StatusCancelled
)

// String renders the status for logs and the read API.
func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusRejected:
		return "rejected"
	case StatusExecuted:
		return "executed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unspecified"
	}
}

// PayloadKind discriminates the tagged Payload variant.
type PayloadKind uint8

const (
	PayloadNoop PayloadKind = iota
	PayloadRelease
	PayloadFund
	PayloadReward
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadNoop:
		return "noop"
	case PayloadRelease:
		return "release"
	case PayloadFund:
		return "fund"
	case PayloadReward:
		return "reward"
	default:
		return "unspecified"
	}
}

// Release is a code artifact proposal. Hash is computed by the validator as
// the lowercase hex SHA-256 digest of Binary at admission time; Binary is
// never persisted to durable storage (kept heap-only, dropped on upgrade, per
// the platform's persistence contract) but is retained in the in-memory
// Proposal for the lifetime of the process so a voter can still be asked to
// attest to it before the proposal resolves.
type Release struct {
	Commit string
	Hash   string
	Binary []byte
}

// Fund requests minting Tokens base units to Receiver on execution. The
// beneficiary is barred from voting on its own funding proposal.
type Fund struct {
	Receiver string
	Tokens   uint64
}

// RewardVote records one voter's contribution to a Reward proposal's
// weighted-average mint: their token balance at vote time and the reward
// amount (in base units) they proposed. Both approving and rejecting ballots
// append an entry here; a reject contributes a zero reward amount, which
// dilutes the average toward zero.
type RewardVote struct {
	VoterBalance uint64
	ProposedBase uint64
}

// Reward collects per-voter reward proposals for Receiver. On execution the
// mint is the voter-balance-weighted average of Votes, computed with
// single-precision float accumulation and truncated to an integer. Votes is
// cleared and Minted is set exactly once, during the Executed transition.
type Reward struct {
	Receiver string
	Votes    []RewardVote
	Minted   uint64
}

// Payload is the tagged variant governing a proposal's voting semantics and
// execution side effects. Exactly one of the typed fields is populated,
// selected by Kind; the others are zero values.
type Payload struct {
	Kind    PayloadKind
	Release Release
	Fund    Fund
	Reward  Reward
}

// Bulletin is a single voter's recorded ballot: the voter, their approval,
// and their token balance at the instant they voted (the ballot's weight).
type Bulletin struct {
	Voter   principal.Principal
	Approve bool
	Balance uint64
}

// Proposal is the passive data entity governed by the lifecycle orchestrator,
// ballot engine, and resolver. Its ID equals its index in the proposal list
// at creation and the list is append-only: proposals are never deleted, only
// driven to a terminal status.
type Proposal struct {
	ID          uint32
	Proposer    principal.Principal
	Timestamp   uint64
	PostID      uint64
	Status      Status
	Payload     Payload
	Bulletins   []Bulletin
	VotingPower uint64
}

// HasVoted reports whether voter already has a recorded ballot. Bulletins is
// a set by voter identity: this is the single-vote invariant's check.
func (p *Proposal) HasVoted(voter principal.Principal) bool {
	for _, b := range p.Bulletins {
		if b.Voter.Equal(voter) {
			return true
		}
	}
	return false
}

// Tally sums ballot weights by side across all recorded bulletins.
func (p *Proposal) Tally() (approvals, rejects uint64) {
	for _, b := range p.Bulletins {
		if b.Approve {
			approvals += b.Balance
		} else {
			rejects += b.Balance
		}
	}
	return approvals, rejects
}

// secondsPerDay is the platform's monotonic time unit for decay accounting:
// governance time arguments are Unix-epoch seconds.
const secondsPerDay = 24 * 60 * 60

// DaysOpen reports how many whole 24h periods have elapsed since the
// proposal was created, as of now. now and Timestamp are both seconds.
func (p *Proposal) DaysOpen(now uint64) uint64 {
	if now <= p.Timestamp {
		return 0
	}
	return (now - p.Timestamp) / secondsPerDay
}
