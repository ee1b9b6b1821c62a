package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"

	"github.com/validator-ops/solana-version-check/internal/domain"
)

const (
	// DefaultConfigPath is read when present and no --config flag is given
	DefaultConfigPath = ".solana-version-check.yaml"
	// EnvPrefix namespaces environment overrides, e.g. SVC_SOURCE_TIMEOUT
	EnvPrefix = "SVC"

	DefaultSourceURL  = "https://solana.org/delegation-criteria"
	DefaultVersionKey = "spec.values.image.tag"
	DefaultUserAgent  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/132.0.0.0 Safari/537.36"
)

// Output formats
const (
	FormatGitHub = "github"
	FormatText   = "text"
	FormatJSON   = "json"
)

// Config represents the checker configuration
type Config struct {
	Check    CheckConfig    `yaml:"check" mapstructure:"check"`
	Manifest ManifestConfig `yaml:"manifest" mapstructure:"manifest"`
	Source   SourceConfig   `yaml:"source" mapstructure:"source"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// CheckConfig contains the action inputs
type CheckConfig struct {
	YAMLPath string `yaml:"yaml_path" mapstructure:"yaml_path"`
	Network  string `yaml:"network" mapstructure:"network"`
}

// ManifestConfig describes where the pinned version lives in the manifest
type ManifestConfig struct {
	VersionKey string `yaml:"version_key" mapstructure:"version_key"`
}

// SourceConfig contains settings for the network requirements lookup
type SourceConfig struct {
	URL       string `yaml:"url" mapstructure:"url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"`
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
	MaxSize   int64  `yaml:"max_size" mapstructure:"max_size"`
	// Override skips the lookup and uses a fixed minimum version
	Override string `yaml:"override" mapstructure:"override"`
}

// OutputConfig contains result emission settings
type OutputConfig struct {
	Format       string `yaml:"format" mapstructure:"format"`
	GitHubOutput string `yaml:"github_output" mapstructure:"github_output"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Check: CheckConfig{
			Network: string(domain.Testnet),
		},
		Manifest: ManifestConfig{
			VersionKey: DefaultVersionKey,
		},
		Source: SourceConfig{
			URL:       DefaultSourceURL,
			Timeout:   30,
			UserAgent: DefaultUserAgent,
			MaxSize:   10 * 1024 * 1024,
		},
		Output: OutputConfig{
			Format: FormatGitHub,
		},
	}
}

// NewViper returns a viper instance with defaults and environment bindings applied.
// Composite action inputs arrive as INPUT_* variables and are bound next to the
// prefixed names.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())

	_ = v.BindEnv("check.yaml_path", EnvPrefix+"_CHECK_YAML_PATH", "INPUT_YAML_PATH")
	_ = v.BindEnv("check.network", EnvPrefix+"_CHECK_NETWORK", "INPUT_NETWORK")
	_ = v.BindEnv("output.github_output", EnvPrefix+"_OUTPUT_GITHUB_OUTPUT", "GITHUB_OUTPUT")

	return v
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("check.yaml_path", cfg.Check.YAMLPath)
	v.SetDefault("check.network", cfg.Check.Network)
	v.SetDefault("manifest.version_key", cfg.Manifest.VersionKey)
	v.SetDefault("source.url", cfg.Source.URL)
	v.SetDefault("source.timeout", cfg.Source.Timeout)
	v.SetDefault("source.user_agent", cfg.Source.UserAgent)
	v.SetDefault("source.max_size", cfg.Source.MaxSize)
	v.SetDefault("source.override", cfg.Source.Override)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.github_output", cfg.Output.GitHubOutput)
}

// LoadEnvFile exports the variables of a dotenv file into the process environment
// without overriding variables that are already set
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := gotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Load reads the optional config file into v and unmarshals the merged configuration.
// When configPath is empty the default path is used if it exists.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath == "" {
		if _, err := os.Stat(DefaultConfigPath); err == nil {
			configPath = DefaultConfigPath
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the checker cannot work with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Check.YAMLPath) == "" {
		return errors.New("yaml-path is required")
	}
	if _, err := domain.ParseNetwork(c.Check.Network); err != nil {
		return err
	}
	if strings.TrimSpace(c.Manifest.VersionKey) == "" {
		return errors.New("manifest.version_key cannot be empty")
	}
	if c.Source.Override == "" {
		if c.Source.URL == "" {
			return errors.New("source.url cannot be empty")
		}
		if c.Source.Timeout <= 0 {
			return fmt.Errorf("source.timeout must be positive, got %d", c.Source.Timeout)
		}
	}

	switch c.Output.Format {
	case FormatGitHub, FormatText, FormatJSON:
	default:
		return fmt.Errorf("unsupported output format %q (expected %s, %s or %s)",
			c.Output.Format, FormatGitHub, FormatText, FormatJSON)
	}
	return nil
}

// Network returns the configured network, validated
func (c *Config) Network() (domain.Network, error) {
	return domain.ParseNetwork(c.Check.Network)
}

// Save writes the configuration as YAML with two-space indentation
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to close YAML encoder: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
