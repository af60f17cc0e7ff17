package governance

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/civitas-social/governance/principal"
)

// validate normalizes and rejects a malformed payload before a proposal is
// admitted. It may mutate payload in place: Release.Hash is filled in here.
// Noop and Reward payloads are always accepted.
func validate(payload *Payload, cfg Config, mintingRatio uint64) error {
	switch payload.Kind {
	case PayloadRelease:
		return validateRelease(&payload.Release)
	case PayloadFund:
		return validateFund(&payload.Fund, cfg, mintingRatio)
	case PayloadNoop, PayloadReward:
		return nil
	default:
		return fmt.Errorf("governance: unknown payload kind %d", payload.Kind)
	}
}

func validateRelease(r *Release) error {
	if r.Commit == "" {
		return ErrCommitNotSpecified
	}
	if len(r.Binary) == 0 {
		return ErrBinaryMissing
	}
	sum := sha256.Sum256(r.Binary)
	r.Hash = hex.EncodeToString(sum[:])
	return nil
}

func validateFund(f *Fund, cfg Config, mintingRatio uint64) error {
	if _, err := principal.Parse(f.Receiver); err != nil {
		return err
	}
	base := cfg.Base()
	if base == 0 {
		base = 1
	}
	maxFunding := cfg.MaxFundingTokens(mintingRatio)
	if f.Tokens/base > maxFunding {
		return fmt.Errorf("funding amount is higher than the configured maximum of %d tokens", maxFunding)
	}
	return nil
}
