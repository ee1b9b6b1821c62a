package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cobra "github.com/spf13/cobra"
	viper "github.com/spf13/viper"
	config "github.com/validator-ops/solana-version-check/config"
	domain "github.com/validator-ops/solana-version-check/internal/domain"
	logger "github.com/validator-ops/solana-version-check/internal/logger"
	zap "go.uber.org/zap"
)

// Exit codes for different failure modes
const (
	ExitSuccess       = 0 // Comparison completed, whether or not an update is needed
	ExitError         = 1 // Unclassified runtime error
	ExitConfigError   = 2 // Invalid network or configuration
	ExitManifestError = 3 // Manifest missing or unreadable
	ExitLookupError   = 4 // Network requirements could not be resolved
)

var rootCmd = &cobra.Command{
	Use:   "solana-version-check",
	Short: "Check a deployment manifest against Solana's required validator version",
	Long: `solana-version-check compares the validator version pinned in a deployment
manifest with the minimum version a Solana network currently requires, and reports
whether the pin needs to be bumped.

It is meant to run as a CI step: results are written as min-version, current-version
and should-update outputs.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

// ConfigError marks a failure caused by invalid inputs or configuration
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// Execute runs the root command and exits with the code matching the outcome
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	code := ExitCode(err)
	if err != nil {
		logger.FromContext(ctx).Debug("Command failed", zap.Error(err), zap.Int("exit_code", code))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	logger.Close()
	os.Exit(code)
}

// ExitCode maps an error returned by a command to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		networkErr  *domain.InvalidNetworkError
		configErr   *ConfigError
		notFoundErr *domain.FileNotFoundError
		parseErr    *domain.ParseError
		lookupErr   *domain.LookupError
	)
	switch {
	case errors.As(err, &networkErr), errors.As(err, &configErr):
		return ExitConfigError
	case errors.As(err, &notFoundErr), errors.As(err, &parseErr):
		return ExitManifestError
	case errors.As(err, &lookupErr):
		return ExitLookupError
	default:
		return ExitError
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", fmt.Sprintf("config file (default is %s when present)", config.DefaultConfigPath))
	rootCmd.PersistentFlags().String("env-file", "", "dotenv file to load before reading configuration")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	l := logger.Init(verbose)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, _ = logger.WithRunID(logger.ContextWithLogger(ctx, l))
	cmd.SetContext(ctx)
	return nil
}

// checkFlags maps configuration keys to the flags shared by check and update
var checkFlags = map[string]string{
	"check.yaml_path":      "yaml-path",
	"check.network":        "network",
	"manifest.version_key": "version-key",
	"source.url":           "source-url",
	"source.timeout":       "timeout",
	"source.override":      "min-version",
	"output.format":        "format",
}

func addCheckFlags(cmd *cobra.Command) {
	defaults := config.DefaultConfig()
	cmd.Flags().String("yaml-path", "", "path to the deployment manifest (env INPUT_YAML_PATH)")
	cmd.Flags().StringP("network", "n", defaults.Check.Network, "Solana network: mainnet, testnet or devnet (env INPUT_NETWORK)")
	cmd.Flags().String("version-key", defaults.Manifest.VersionKey, "dotted key path of the pinned version in the manifest")
	cmd.Flags().String("source-url", defaults.Source.URL, "delegation criteria page to read requirements from")
	cmd.Flags().Int("timeout", defaults.Source.Timeout, "lookup timeout in seconds")
	cmd.Flags().String("min-version", "", "use this minimum version instead of looking it up")
	cmd.Flags().StringP("format", "f", defaults.Output.Format, "output format (github, text, json)")
}

// loadConfig merges defaults, config file, environment and flags and validates the result
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, &ConfigError{Err: err}
	}

	v := config.NewViper()
	if err := bindFlags(v, cmd, checkFlags); err != nil {
		return nil, err
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}

	logger.FromContext(cmd.Context()).Debug("Loaded configuration",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.String("yaml_path", cfg.Check.YAMLPath),
		zap.String("network", cfg.Check.Network),
		zap.String("output_format", cfg.Output.Format))
	return cfg, nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}
