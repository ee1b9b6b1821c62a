package domain

import "context"

//go:generate go tool counterfeiter -generate

// VersionSource resolves the minimum validator version a network currently requires
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_version_source.go . VersionSource
type VersionSource interface {
	MinimumVersion(ctx context.Context, network Network) (Version, error)
}

// ManifestReader reads the pinned validator version from a deployment manifest
//
//counterfeiter:generate -o ../../tests/mocks/domain/fake_manifest_reader.go . ManifestReader
type ManifestReader interface {
	CurrentVersion(path string) (Version, error)
}

// ResultWriter emits a check result to the invoking environment
type ResultWriter interface {
	Write(result *CheckResult) error
}
