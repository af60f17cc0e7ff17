package governance

import "github.com/civitas-social/governance/core/events"

const (
	// EventTypeProposed is emitted when a new proposal is admitted.
	EventTypeProposed = "gov.proposed"
	// EventTypeVoteCast is emitted when a voter records a ballot.
	EventTypeVoteCast = "gov.vote"
	// EventTypeResolved is emitted when a resolve pass changes a
	// proposal's status to Executed or Rejected. A pass that leaves the
	// proposal Open emits nothing.
	EventTypeResolved = "gov.resolved"
	// EventTypeCancelled is emitted when a proposal is cancelled by its
	// proposer or superseded by a newer release proposal.
	EventTypeCancelled = "gov.cancelled"
)

type proposedEvent struct {
	ProposalID uint32
	PostID     uint64
	Proposer   string
	Kind       string
}

func (e proposedEvent) EventType() string { return EventTypeProposed }

type voteCastEvent struct {
	ProposalID uint32
	Voter      string
	Approve    bool
	Balance    uint64
}

func (e voteCastEvent) EventType() string { return EventTypeVoteCast }

type resolvedEvent struct {
	ProposalID  uint32
	Status      string
	Approvals   uint64
	Rejects     uint64
	VotingPower uint64
}

func (e resolvedEvent) EventType() string { return EventTypeResolved }

// ResolutionStatus exposes the resolved status for instrumentation
// listeners that duck-type against it (see observability/metrics).
func (e resolvedEvent) ResolutionStatus() string { return e.Status }

// ResolutionVotingPower exposes the decayed electorate snapshot for the
// same instrumentation listeners.
func (e resolvedEvent) ResolutionVotingPower() uint64 { return e.VotingPower }

type cancelledEvent struct {
	ProposalID uint32
	Superseded bool
}

func (e cancelledEvent) EventType() string { return EventTypeCancelled }

func (e *Engine) emit(evt events.Event) {
	if e == nil || e.emitter == nil {
		return
	}
	e.emitter.Emit(evt)
}
