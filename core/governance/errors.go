package governance

import "errors"

// Stable error strings from §7's taxonomy. External callers pattern-match on
// these; keep the wording fixed even when the implementation around them
// changes.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrOnlyStalwarts       = errors.New("only stalwarts can create proposals")
	ErrOnlyTrusted         = errors.New("only trusted users can vote")
	ErrDescriptionEmpty    = errors.New("description is empty")
	ErrWrongHash           = errors.New("wrong hash")
	ErrCommitNotSpecified  = errors.New("commit is not specified")
	ErrBinaryMissing       = errors.New("binary is missing")
	ErrLastProposalNotOpen = errors.New("last proposal is not open")
	ErrNoProposalsFound    = errors.New("no proposals founds")
	ErrNoUserFound         = errors.New("no user found")
	ErrOnlyTokenHolders    = errors.New("only token holders can vote")
	ErrDoubleVote          = errors.New("double vote")
	ErrFundingReceiverVote = errors.New("funding receivers can not vote")
	ErrRewardReceiverVote  = errors.New("reward receivers can not vote")
)
