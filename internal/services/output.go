package services

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/validator-ops/solana-version-check/config"
	"github.com/validator-ops/solana-version-check/internal/domain"
)

// OutputWriter emits check results in the configured format
type OutputWriter struct {
	format     string
	outputFile string
	stdout     io.Writer
}

// NewOutputWriter creates an OutputWriter. Results in the github format go to
// outputFile when set, otherwise to stdout.
func NewOutputWriter(cfg config.OutputConfig, stdout io.Writer) *OutputWriter {
	return &OutputWriter{
		format:     cfg.Format,
		outputFile: cfg.GitHubOutput,
		stdout:     stdout,
	}
}

type resultJSON struct {
	Network        string         `json:"network"`
	MinVersion     domain.Version `json:"min-version"`
	CurrentVersion domain.Version `json:"current-version"`
	ShouldUpdate   bool           `json:"should-update"`
}

// Write implements domain.ResultWriter
func (w *OutputWriter) Write(result *domain.CheckResult) error {
	switch w.format {
	case config.FormatText:
		return w.writeText(result)
	case config.FormatJSON:
		enc := json.NewEncoder(w.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resultJSON{
			Network:        result.Network().String(),
			MinVersion:     result.MinVersion(),
			CurrentVersion: result.CurrentVersion(),
			ShouldUpdate:   result.ShouldUpdate(),
		})
	case config.FormatGitHub, "":
		return w.writeGitHub(result)
	default:
		return fmt.Errorf("unsupported output format %q", w.format)
	}
}

func (w *OutputWriter) writeText(result *domain.CheckResult) error {
	verdict := "up to date"
	if result.ShouldUpdate() {
		verdict = "update required"
	}
	_, err := fmt.Fprintf(w.stdout, "Network: %s\nCurrent version: %s\nRequired version: %s\nStatus: %s\n",
		result.Network().ClusterName(), result.CurrentVersion(), result.MinVersion(), verdict)
	return err
}

func (w *OutputWriter) writeGitHub(result *domain.CheckResult) error {
	if w.outputFile == "" {
		return writePairs(w.stdout, result.Outputs())
	}

	f, err := os.OpenFile(w.outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open GitHub output file: %w", err)
	}

	if err := writePairs(f, result.Outputs()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close GitHub output file: %w", err)
	}
	return nil
}

func writePairs(out io.Writer, pairs []domain.OutputPair) error {
	for _, p := range pairs {
		if _, err := fmt.Fprintf(out, "%s=%s\n", p.Key, p.Value); err != nil {
			return fmt.Errorf("failed to write output %s: %w", p.Key, err)
		}
	}
	return nil
}

var _ domain.ResultWriter = (*OutputWriter)(nil)
