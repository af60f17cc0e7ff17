package governance

import (
	"fmt"

	"github.com/civitas-social/governance/principal"
)

// executePayload applies a payload's Executed-transition side effects
// (§4.5). Noop and Release carry no executor action beyond the status flip
// already committed by the caller; a code upgrade itself is an out-of-band
// host flow, not part of this core.
func (e *Engine) executePayload(proposal *Proposal) error {
	switch proposal.Payload.Kind {
	case PayloadFund:
		return e.executeFund(proposal)
	case PayloadReward:
		return e.executeReward(proposal)
	default:
		return nil
	}
}

func (e *Engine) executeFund(proposal *Proposal) error {
	receiver, err := principal.Parse(proposal.Payload.Fund.Receiver)
	if err != nil {
		return err
	}
	tokens := proposal.Payload.Fund.Tokens
	if err := e.ledger.Mint(receiver, tokens); err != nil {
		return err
	}
	base := e.config.Base()
	if base == 0 {
		base = 1
	}
	e.logger.Info("tokens minted via proposal execution",
		"proposal_id", proposal.ID, "amount", tokens/base, "symbol", e.config.TokenSymbol, "receiver", receiver.String())
	if user, ok := e.users.Lookup(receiver); ok {
		user.Notify(fmt.Sprintf("%d $%s tokens were minted for you via proposal execution.", tokens/base, e.config.TokenSymbol))
	}
	return nil
}

// executeReward computes the voter-balance-weighted average reward mint
// using single-precision float accumulation and truncation, matching the
// reference implementation's deterministic arithmetic exactly (§9 design
// note: this is observable and must not be widened to float64 or rationals).
func (e *Engine) executeReward(proposal *Proposal) error {
	reward := &proposal.Payload.Reward
	var total uint64
	for _, v := range reward.Votes {
		total += v.VoterBalance
	}

	var toMint uint64
	if total > 0 {
		var acc float32
		for _, v := range reward.Votes {
			acc += float32(v.VoterBalance) / float32(total) * float32(v.ProposedBase)
		}
		toMint = uint64(acc)
	}

	receiver, err := principal.Parse(reward.Receiver)
	if err != nil {
		return err
	}
	if err := e.ledger.Mint(receiver, toMint); err != nil {
		return err
	}
	reward.Votes = nil
	reward.Minted = toMint

	base := e.config.Base()
	if base == 0 {
		base = 1
	}
	e.logger.Info("reward minted via proposal execution",
		"proposal_id", proposal.ID, "amount", toMint/base, "symbol", e.config.TokenSymbol, "receiver", receiver.String())
	if user, ok := e.users.Lookup(receiver); ok {
		user.Notify(fmt.Sprintf("%d $%s tokens were minted for you via proposal execution.", toMint/base, e.config.TokenSymbol))
	}
	return nil
}

// penalizeProposer applies the non-controversial rejection penalty of §4.5:
// clear stalwart status, deduct karma, and charge cycles clamped to the
// proposer's balance. If the proposer was deleted mid-flight, the failure is
// surfaced to the caller (the resolver logs it without rolling back status).
func (e *Engine) penalizeProposer(proposal *Proposal) error {
	proposer, ok := e.users.Lookup(proposal.Proposer)
	if !ok {
		return ErrUserNotFound
	}
	proposer.ClearStalwart()
	proposer.ChangeKarma(-int64(e.config.ProposalRejectionPenalty), "proposal rejection penalty")
	proposer.ChargeCycles(e.config.ProposalRejectionPenalty, "proposal rejection penalty")
	return nil
}
