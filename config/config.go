// Package config loads civitasd's on-disk configuration: the HTTP listen
// address and the governance CONFIG table (§6), via a TOML file that is
// created with sane defaults on first run.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/civitas-social/governance/core/governance"
)

// Config is civitasd's full process configuration.
type Config struct {
	ListenAddress string `toml:"ListenAddress"`
	Env           string `toml:"Env"`
	MintingRatio  uint64 `toml:"MintingRatio"`

	TokenDecimals                   uint8  `toml:"TokenDecimals"`
	TokenSymbol                     string `toml:"TokenSymbol"`
	MaxFundingAmount                uint64 `toml:"MaxFundingAmount"`
	ProposalApprovalThresholdPct    uint64 `toml:"ProposalApprovalThresholdPct"`
	ProposalControversyThresholdPct uint64 `toml:"ProposalControversyThresholdPct"`
	ProposalRejectionPenalty        uint64 `toml:"ProposalRejectionPenalty"`
	VotingReward                    uint64 `toml:"VotingReward"`
	TrustedUserMinKarma             uint64 `toml:"TrustedUserMinKarma"`
}

// Governance projects the CONFIG-table fields into a governance.Config.
func (c *Config) Governance() governance.Config {
	return governance.Config{
		TokenDecimals:                    c.TokenDecimals,
		TokenSymbol:                      c.TokenSymbol,
		MaxFundingAmount:                 c.MaxFundingAmount,
		ProposalApprovalThresholdPct:     c.ProposalApprovalThresholdPct,
		ProposalControversyThresholdPct:  c.ProposalControversyThresholdPct,
		ProposalRejectionPenalty:         c.ProposalRejectionPenalty,
		VotingReward:                     c.VotingReward,
		TrustedUserMinKarma:              c.TrustedUserMinKarma,
	}
}

// Load reads path, writing out a default configuration file first if it
// does not already exist.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefault(path)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// createDefault writes and returns the default configuration, matching the
// reference deployment's CONFIG table (§6).
func createDefault(path string) (*Config, error) {
	cfg := &Config{
		ListenAddress:                   ":8080",
		Env:                             "development",
		MintingRatio:                    1,
		TokenDecimals:                   2,
		TokenSymbol:                     "CVT",
		MaxFundingAmount:                100_000_000,
		ProposalApprovalThresholdPct:    66,
		ProposalControversyThresholdPct: 200,
		ProposalRejectionPenalty:        1000,
		VotingReward:                    10,
		TrustedUserMinKarma:             100,
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
