package governance

// decayedElectorate computes the time-decayed denominator of §4.4 step 1:
//
//	days_open     = floor((now - proposal.timestamp) / 24h)
//	decay_factor  = max(1, 100 - days_open) / 100
//	voting_power  = floor(active_voting_power(now) * decay_factor)
//
// All arithmetic is integer, multiply-before-divide, matching the reference
// implementation's determinism requirement.
func decayedElectorate(activeVotingPower, daysOpen uint64) uint64 {
	var shrink uint64
	if daysOpen < 100 {
		shrink = 100 - daysOpen
	}
	if shrink < 1 {
		shrink = 1
	}
	return (activeVotingPower * shrink) / 100
}

// classification is the resolver's verdict for the current tally against a
// proposal's (possibly freshly recomputed) voting power.
type classification struct {
	status           Status
	nonControversial bool
}

// classify implements §4.4 step 3. Integer arithmetic only; multiply before
// dividing. The rejection branch is evaluated first, so a zero-electorate
// proposal with no ballots settles as Rejected with no penalty (rejects=0
// makes the controversy check approvals*100 < C*rejects false).
func classify(approvals, rejects, votingPower uint64, approvalPct, controversyPct uint64) classification {
	if rejects*100 >= votingPower*(100-approvalPct) {
		nonControversial := approvals*100 < controversyPct*rejects
		return classification{status: StatusRejected, nonControversial: nonControversial}
	}
	if approvals*100 >= votingPower*approvalPct {
		return classification{status: StatusExecuted}
	}
	return classification{status: StatusOpen}
}

// resolve runs the Tally & Resolver (§4.4) against proposal, sampling the
// ledger's active voting power as of now, then — on a status transition —
// invokes the Executor. It is idempotent on terminal states: on a proposal
// that is not Open it returns nil without changing anything.
func (e *Engine) resolve(proposal *Proposal, now uint64) error {
	if proposal.Status != StatusOpen {
		return nil
	}

	activeVotingPower := e.ledger.ActiveVotingPower(now)
	daysOpen := proposal.DaysOpen(now)
	freshVotingPower := decayedElectorate(activeVotingPower, daysOpen)
	if proposal.VotingPower > 0 && proposal.VotingPower > freshVotingPower {
		e.logger.Info("decreasing voting power on proposal", "proposal_id", proposal.ID,
			"from", proposal.VotingPower, "to", freshVotingPower)
	}
	proposal.VotingPower = freshVotingPower

	approvals, rejects := proposal.Tally()
	verdict := classify(approvals, rejects, proposal.VotingPower,
		e.config.ProposalApprovalThresholdPct, e.config.ProposalControversyThresholdPct)

	switch verdict.status {
	case StatusRejected:
		proposal.Status = StatusRejected
		if verdict.nonControversial {
			if err := e.penalizeProposer(proposal); err != nil {
				e.logger.Error("proposal rejection penalty failed", "proposal_id", proposal.ID, "error", err.Error())
			}
		}
	case StatusExecuted:
		// §4.5 transition semantics: the status change commits first: an
		// Executor failure after this point is logged, not rolled back.
		proposal.Status = StatusExecuted
		if err := e.executePayload(proposal); err != nil {
			e.logger.Error("proposal execution failed", "proposal_id", proposal.ID, "error", err.Error())
		}
	case StatusOpen:
		// No transition; voting_power snapshot above is the only mutation.
	}

	if proposal.Status != StatusOpen {
		e.logger.Info("proposal status changed", "proposal_id", proposal.ID, "status", proposal.Status.String(),
			"voting_reward_cycles", uint64(len(proposal.Bulletins))*e.config.VotingReward)
		e.emit(resolvedEvent{
			ProposalID:  proposal.ID,
			Status:      proposal.Status.String(),
			Approvals:   approvals,
			Rejects:     rejects,
			VotingPower: proposal.VotingPower,
		})
	}
	return nil
}
