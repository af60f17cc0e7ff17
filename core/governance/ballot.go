package governance

import (
	"fmt"
	"strconv"

	"github.com/civitas-social/governance/principal"
)

// castBallot records voter's ballot on proposal, enforcing the trust,
// balance, single-vote, and payload-specific preconditions of §4.3. It
// mutates proposal.Bulletins (and, for Reward payloads, Payload.Reward.Votes)
// on success and leaves proposal untouched on any error.
func (e *Engine) castBallot(proposal *Proposal, voter User, approve bool, data string, mintingRatio uint64) error {
	if !voter.Trusted() {
		return ErrOnlyTrusted
	}
	voterID := voter.ID()
	if proposal.HasVoted(voterID) {
		return ErrDoubleVote
	}
	balance, ok := e.ledger.BalanceOf(voterID)
	if !ok {
		return ErrOnlyTokenHolders
	}

	switch proposal.Payload.Kind {
	case PayloadRelease:
		if approve && data != proposal.Payload.Release.Hash {
			return ErrWrongHash
		}
	case PayloadFund:
		receiver, err := principal.Parse(proposal.Payload.Fund.Receiver)
		if err != nil {
			return err
		}
		if receiver.Equal(voterID) {
			return ErrFundingReceiverVote
		}
	case PayloadReward:
		receiver, err := principal.Parse(proposal.Payload.Reward.Receiver)
		if err != nil {
			return err
		}
		if receiver.Equal(voterID) {
			return ErrRewardReceiverVote
		}
		var tokens uint64
		if approve {
			parsed, err := strconv.ParseUint(data, 10, 64)
			if err != nil {
				return fmt.Errorf("couldn't parse the token amount: %v", err)
			}
			tokens = parsed
		}
		maxFunding := e.config.MaxFundingTokens(mintingRatio)
		if tokens > maxFunding {
			return fmt.Errorf("reward amount is higher than the configured maximum of %d tokens", maxFunding)
		}
		proposal.Payload.Reward.Votes = append(proposal.Payload.Reward.Votes, RewardVote{
			VoterBalance: balance,
			ProposedBase: tokens * e.config.Base(),
		})
	}

	proposal.Bulletins = append(proposal.Bulletins, Bulletin{
		Voter:   voterID,
		Approve: approve,
		Balance: balance,
	})
	return nil
}
