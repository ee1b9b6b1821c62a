package cmd

import (
	cobra "github.com/spf13/cobra"
	logger "github.com/validator-ops/solana-version-check/internal/logger"
	services "github.com/validator-ops/solana-version-check/internal/services"
	zap "go.uber.org/zap"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Bump the pinned validator version when it is below the network minimum",
	Long: `Run the same comparison as 'check' and, when should-update is true, rewrite the
pinned version in the manifest to the network minimum.

Only the version value is touched: quoting style, the "v" prefix convention, comments
and every other document in the file are preserved.`,
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

		log := logger.FromContext(cmd.Context())
		if result.ShouldUpdate() {
			manifest := services.NewManifestService(cfg.Manifest.VersionKey)
			previous, err := manifest.UpdateVersion(cfg.Check.YAMLPath, result.MinVersion())
			if err != nil {
				return err
			}
			log.Info("Updated pinned version",
				zap.String("yaml_path", cfg.Check.YAMLPath),
				zap.String("from", previous.String()),
				zap.String("to", result.MinVersion().String()))
		} else {
			log.Info("Pinned version already satisfies the network minimum",
				zap.String("current_version", result.CurrentVersion().String()))
		}

		return services.NewOutputWriter(cfg.Output, cmd.OutOrStdout()).Write(result)
	},
}

func init() {
	addCheckFlags(updateCmd)
	rootCmd.AddCommand(updateCmd)
}
