package services

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validator-ops/solana-version-check/config"
	"github.com/validator-ops/solana-version-check/internal/domain"
)

func sampleResult() *domain.CheckResult {
	return domain.NewCheckResult(domain.Testnet, domain.MustParseVersion("1.18.0"), domain.MustParseVersion("1.17.5"))
}

func TestOutputWriter_GitHubStdout(t *testing.T) {
	var out bytes.Buffer
	writer := NewOutputWriter(config.OutputConfig{Format: config.FormatGitHub}, &out)

	require.NoError(t, writer.Write(sampleResult()))
	assert.Equal(t, "min-version=1.18.0\ncurrent-version=1.17.5\nshould-update=true\n", out.String())
}

func TestOutputWriter_GitHubOutputFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "github_output")
	require.NoError(t, os.WriteFile(outputFile, []byte("previous-step=done\n"), 0644))

	var out bytes.Buffer
	writer := NewOutputWriter(config.OutputConfig{Format: config.FormatGitHub, GitHubOutput: outputFile}, &out)

	result := domain.NewCheckResult(domain.Testnet, domain.MustParseVersion("1.18.0"), domain.MustParseVersion("1.18.0"))
	require.NoError(t, writer.Write(result))

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "previous-step=done\nmin-version=1.18.0\ncurrent-version=1.18.0\nshould-update=false\n", string(content))
	assert.Empty(t, out.String())
}

func TestOutputWriter_Text(t *testing.T) {
	var out bytes.Buffer
	writer := NewOutputWriter(config.OutputConfig{Format: config.FormatText}, &out)

	require.NoError(t, writer.Write(sampleResult()))
	assert.Equal(t, "Network: testnet\nCurrent version: 1.17.5\nRequired version: 1.18.0\nStatus: update required\n", out.String())
}

func TestOutputWriter_TextMainnetClusterName(t *testing.T) {
	var out bytes.Buffer
	writer := NewOutputWriter(config.OutputConfig{Format: config.FormatText}, &out)

	result := domain.NewCheckResult(domain.Mainnet, domain.MustParseVersion("2.1.13"), domain.MustParseVersion("v2.1.13"))
	require.NoError(t, writer.Write(result))
	assert.Equal(t, "Network: mainnet-beta\nCurrent version: 2.1.13\nRequired version: 2.1.13\nStatus: up to date\n", out.String())
}

func TestOutputWriter_JSON(t *testing.T) {
	var out bytes.Buffer
	writer := NewOutputWriter(config.OutputConfig{Format: config.FormatJSON}, &out)

	require.NoError(t, writer.Write(sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, map[string]any{
		"network":         "testnet",
		"min-version":     "1.18.0",
		"current-version": "1.17.5",
		"should-update":   true,
	}, decoded)
}

func TestOutputWriter_UnsupportedFormat(t *testing.T) {
	var out bytes.Buffer
	err := NewOutputWriter(config.OutputConfig{Format: "xml"}, &out).Write(sampleResult())
	assert.ErrorContains(t, err, `unsupported output format "xml"`)
	assert.Empty(t, out.String())
}
