package governance

// Config carries the host-supplied parameters the governance core is
// parametric in (§6 CONFIG table). It is intentionally a plain struct rather
// than an interface: the core treats these as immutable snapshots for the
// duration of an entry point call.
type Config struct {
	// TokenDecimals is the exponent for base-unit conversion: Base =
	// 10^TokenDecimals.
	TokenDecimals uint8
	// TokenSymbol is the human display symbol used in logs and
	// notifications.
	TokenSymbol string
	// MaxFundingAmount is the raw-unit cap before scaling by minting ratio
	// and base.
	MaxFundingAmount uint64
	// ProposalApprovalThresholdPct is the integer percent of the decayed
	// electorate required to approve a proposal.
	ProposalApprovalThresholdPct uint64
	// ProposalControversyThresholdPct is the integer percent below which a
	// rejection is considered non-controversial and triggers the
	// proposer penalty.
	ProposalControversyThresholdPct uint64
	// ProposalRejectionPenalty is both the karma and cycle amount deducted
	// from a non-controversially-rejected proposer.
	ProposalRejectionPenalty uint64
	// VotingReward is the cycles credited to each voter for participating.
	VotingReward uint64
	// TrustedUserMinKarma gates the collaborator-side "trusted" flag; the
	// governance core does not enforce it directly but carries it for
	// completeness of the CONFIG contract.
	TrustedUserMinKarma uint64
}

// Base returns 10^TokenDecimals, the smallest indivisible token amount's
// display-unit ratio.
func (c Config) Base() uint64 {
	base := uint64(1)
	for i := uint8(0); i < c.TokenDecimals; i++ {
		base *= 10
	}
	return base
}

// MaxFundingTokens computes the display-unit funding/reward cap, scaled by
// the host-supplied minting ratio, per §4.1 and §4.3.
func (c Config) MaxFundingTokens(mintingRatio uint64) uint64 {
	if mintingRatio == 0 {
		mintingRatio = 1
	}
	base := c.Base()
	if base == 0 {
		base = 1
	}
	return c.MaxFundingAmount / mintingRatio / base
}
