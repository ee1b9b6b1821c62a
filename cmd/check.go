package cmd

import (
	"fmt"

	cobra "github.com/spf13/cobra"
	config "github.com/validator-ops/solana-version-check/config"
	domain "github.com/validator-ops/solana-version-check/internal/domain"
	services "github.com/validator-ops/solana-version-check/internal/services"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether the pinned validator version meets the network minimum",
	Long: `Resolve the minimum validator version required by a Solana network, read the
version pinned in a deployment manifest and report whether an update is needed.

The manifest is never modified. The command exits 0 whenever the comparison succeeds,
including when should-update is true.`,
	Example: `  solana-version-check check --yaml-path deploy/validator.yaml --network mainnet
  INPUT_YAML_PATH=deploy/validator.yaml INPUT_NETWORK=testnet solana-version-check check`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		result, err := runCheck(cmd, cfg)
		if err != nil {
			return err
		}

		return services.NewOutputWriter(cfg.Output, cmd.OutOrStdout()).Write(result)
	},
}

func init() {
	addCheckFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, cfg *config.Config) (*domain.CheckResult, error) {
	network, err := cfg.Network()
	if err != nil {
		return nil, err
	}

	source, err := newVersionSource(cfg)
	if err != nil {
		return nil, err
	}

	checker := services.NewVersionChecker(source, services.NewManifestService(cfg.Manifest.VersionKey))
	return checker.Check(cmd.Context(), cfg.Check.YAMLPath, network)
}

func newVersionSource(cfg *config.Config) (domain.VersionSource, error) {
	if cfg.Source.Override == "" {
		return services.NewDelegationCriteriaSource(cfg.Source), nil
	}

	version, err := domain.ParseVersion(cfg.Source.Override)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("invalid --min-version: %w", err)}
	}
	return services.StaticSource{Version: version}, nil
}
