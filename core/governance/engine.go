package governance

import (
	"fmt"
	"sync"

	"github.com/civitas-social/governance/core/events"
	"github.com/civitas-social/governance/principal"
)

// Engine is the lifecycle orchestrator (§4.2, §4.6): the sole public surface
// onto an in-memory, append-only proposal list. The reference execution
// model is single-threaded and cooperatively scheduled; Engine reproduces
// that exclusive-ownership contract under concurrent Go callers with a
// single mutex rather than per-field locking.
type Engine struct {
	mu        sync.Mutex
	proposals []*Proposal

	ledger  Ledger
	users   Users
	posts   PostCreator
	logger  Logger
	emitter events.Emitter
	config  Config
}

// New wires an Engine against its external collaborators and static
// configuration. emitter may be nil, in which case events are discarded.
func New(ledger Ledger, users Users, posts PostCreator, logger Logger, emitter events.Emitter, config Config) *Engine {
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	return &Engine{
		ledger:  ledger,
		users:   users,
		posts:   posts,
		logger:  logger,
		emitter: emitter,
		config:  config,
	}
}

// Proposal returns a copy of the proposal at id, or false if id is out of
// range. The copy is shallow: callers must not rely on it reflecting
// subsequent mutations.
func (e *Engine) Proposal(id uint32) (Proposal, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if int(id) >= len(e.proposals) {
		return Proposal{}, false
	}
	return *e.proposals[id], true
}

// Proposals returns page (0-indexed) of 10 proposals, newest first, per the
// query surface of §6.
func (e *Engine) Proposals(page uint32) []Proposal {
	e.mu.Lock()
	defer e.mu.Unlock()
	const pageSize = 10
	n := len(e.proposals)
	hi := n - int(page)*pageSize
	if hi <= 0 {
		return nil
	}
	lo := hi - pageSize
	if lo < 0 {
		lo = 0
	}
	out := make([]Proposal, 0, hi-lo)
	for i := hi - 1; i >= lo; i-- {
		out = append(out, *e.proposals[i])
	}
	return out
}

// Propose admits a new proposal (§4.2). mintingRatio scales the funding cap
// applied by the payload validator; now is Unix-epoch seconds.
func (e *Engine) Propose(caller principal.Principal, description string, payload Payload, mintingRatio uint64, now uint64) (uint32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, ok := e.users.Lookup(caller)
	if !ok {
		return 0, ErrUserNotFound
	}
	if !user.Stalwart() {
		return 0, ErrOnlyStalwarts
	}
	if description == "" {
		return 0, ErrDescriptionEmpty
	}
	if err := validate(&payload, e.config, mintingRatio); err != nil {
		return 0, err
	}

	if payload.Kind == PayloadRelease {
		for _, p := range e.proposals {
			if p.Payload.Kind == PayloadRelease && p.Status == StatusOpen {
				p.Status = StatusCancelled
				e.emit(cancelledEvent{ProposalID: p.ID, Superseded: true})
			}
		}
	}

	id := uint32(len(e.proposals))
	postID, err := e.posts.Create(caller, description, id)
	if err != nil {
		return 0, fmt.Errorf("couldn't create the proposal's post: %w", err)
	}

	proposal := &Proposal{
		ID:        id,
		Proposer:  caller,
		Timestamp: now,
		PostID:    postID,
		Status:    StatusOpen,
		Payload:   payload,
	}
	e.proposals = append(e.proposals, proposal)

	e.users.NotifyActive(now, postID, fmt.Sprintf("A new proposal by @%s needs your attention!", user.Name()))
	e.logger.Info("new proposal submitted", "proposal_id", id, "proposer", caller.String(), "kind", payload.Kind.String())
	e.emit(proposedEvent{ProposalID: id, PostID: postID, Proposer: caller.String(), Kind: payload.Kind.String()})

	return id, nil
}

// Vote records a ballot and then runs the resolver (§4.3, §4.4). data is the
// payload-specific ballot argument: the attested hash for Release, the
// proposed reward token count for Reward, ignored otherwise. mintingRatio and
// now are as in Propose.
func (e *Engine) Vote(proposalID uint32, caller principal.Principal, approve bool, data string, mintingRatio uint64, now uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if int(proposalID) >= len(e.proposals) {
		return ErrNoProposalsFound
	}
	proposal := e.proposals[proposalID]
	if proposal.Status != StatusOpen {
		return ErrLastProposalNotOpen
	}

	voter, ok := e.users.Lookup(caller)
	if !ok {
		return ErrNoUserFound
	}

	if err := e.castBallot(proposal, voter, approve, data, mintingRatio); err != nil {
		return err
	}
	voter.CreditCycles(e.config.VotingReward, "voting reward")

	e.logger.Info("ballot recorded", "proposal_id", proposalID, "voter", caller.String(), "approve", approve)
	e.emit(voteCastEvent{ProposalID: proposalID, Voter: caller.String(), Approve: approve, Balance: lastBalance(proposal)})

	if err := e.resolve(proposal, now); err != nil {
		return err
	}
	if proposal.Status != StatusOpen {
		e.users.DenotifyActive(now, proposal.PostID)
	}
	return nil
}

func lastBalance(p *Proposal) uint64 {
	if len(p.Bulletins) == 0 {
		return 0
	}
	return p.Bulletins[len(p.Bulletins)-1].Balance
}

// Cancel withdraws proposalID on behalf of caller (§4.6). Both a caller
// mismatch and an already-terminal proposal are silent no-ops, matching the
// reference's deliberately quiet cancellation contract. Addressing a
// nonexistent proposal is a programming error.
func (e *Engine) Cancel(proposalID uint32, caller principal.Principal) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if int(proposalID) >= len(e.proposals) {
		panic(fmt.Sprintf("governance: cancel on nonexistent proposal %d", proposalID))
	}
	proposal := e.proposals[proposalID]
	if !proposal.Proposer.Equal(caller) {
		return
	}
	if proposal.Status != StatusOpen {
		return
	}
	proposal.Status = StatusCancelled
	e.emit(cancelledEvent{ProposalID: proposalID, Superseded: false})
}

// Resolve re-runs the Tally & Resolver against proposalID on demand, e.g.
// from an externally-scheduled keep-alive tick (§5). It is a no-op on a
// terminal proposal.
func (e *Engine) Resolve(proposalID uint32, now uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if int(proposalID) >= len(e.proposals) {
		return ErrNoProposalsFound
	}
	return e.resolve(e.proposals[proposalID], now)
}
