package cmd

import (
	"fmt"
	"os"

	cobra "github.com/spf13/cobra"
	config "github.com/validator-ops/solana-version-check/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage checker configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file with default settings",
	Long: fmt.Sprintf(`Write a configuration file with default settings, %s unless a path is given.
Values from the file are overridden by INPUT_* and %s_* environment variables and flags.`,
		config.DefaultConfigPath, config.EnvPrefix),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.DefaultConfigPath
		if len(args) == 1 {
			configPath = args[0]
		}

		if _, err := os.Stat(configPath); err == nil {
			overwrite, _ := cmd.Flags().GetBool("overwrite")
			if !overwrite {
				return &ConfigError{Err: fmt.Errorf("configuration file %s already exists (use --overwrite to replace)", configPath)}
			}
		}

		if err := config.DefaultConfig().Save(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully created %s\n", configPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("overwrite", false, "Overwrite existing configuration file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
