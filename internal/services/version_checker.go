package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/validator-ops/solana-version-check/internal/domain"
	"github.com/validator-ops/solana-version-check/internal/logger"
)

// VersionChecker compares a manifest's pinned validator version against the minimum
// required by a network
type VersionChecker struct {
	source   domain.VersionSource
	manifest domain.ManifestReader
}

// NewVersionChecker creates a VersionChecker
func NewVersionChecker(source domain.VersionSource, manifest domain.ManifestReader) *VersionChecker {
	return &VersionChecker{
		source:   source,
		manifest: manifest,
	}
}

// Check resolves the network minimum, reads the pinned version from yamlPath and
// reports whether the pin is below the minimum. Failures are returned as-is and
// never retried.
func (c *VersionChecker) Check(ctx context.Context, yamlPath string, network domain.Network) (*domain.CheckResult, error) {
	if err := network.Validate(); err != nil {
		return nil, err
	}

	ctx = logger.With(ctx, zap.String("network", network.String()), zap.String("yaml_path", yamlPath))
	log := logger.FromContext(ctx)

	minVersion, err := c.source.MinimumVersion(ctx, network)
	if err != nil {
		return nil, err
	}

	currentVersion, err := c.manifest.CurrentVersion(yamlPath)
	if err != nil {
		return nil, err
	}

	result := domain.NewCheckResult(network, minVersion, currentVersion)
	log.Info("Version check complete",
		zap.String("min_version", minVersion.String()),
		zap.String("current_version", currentVersion.String()),
		zap.Bool("should_update", result.ShouldUpdate()))

	return result, nil
}
