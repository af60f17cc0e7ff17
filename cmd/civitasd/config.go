package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civitas-social/governance/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "inspect civitasd configuration",
	}
	cmd.AddCommand(newConfigValidateCommand())
	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "load and validate a civitasd config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			fmt.Printf("ok: listen=%s symbol=%s decimals=%d approval_threshold=%d%%\n",
				cfg.ListenAddress, cfg.TokenSymbol, cfg.TokenDecimals, cfg.ProposalApprovalThresholdPct)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "civitasd.toml", "path to civitasd config")
	return cmd
}
