package domain

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// VersionInfo contains build-time version information
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// Version is a validator release version compared under semantic-version precedence
type Version struct {
	v *semver.Version
}

// ParseVersion parses a strict major.minor.patch version with optional pre-release and
// build metadata. A leading "v" is accepted since image tags are usually pinned that way.
func ParseVersion(raw string) (Version, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Version{}, fmt.Errorf("empty version")
	}

	v, err := semver.StrictNewVersion(strings.TrimPrefix(trimmed, "v"))
	if err != nil {
		return Version{}, fmt.Errorf("invalid semantic version %q: %w", raw, err)
	}
	return Version{v: v}, nil
}

// MustParseVersion is like ParseVersion but panics on error
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether the version was never set
func (v Version) IsZero() bool {
	return v.v == nil
}

// Compare returns -1, 0 or 1 when v is lower than, equal to or greater than other
func (v Version) Compare(other Version) int {
	return v.v.Compare(other.v)
}

// GreaterThan reports whether v takes precedence over other
func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

// String returns the normalized form without a "v" prefix
func (v Version) String() string {
	if v.v == nil {
		return ""
	}
	return v.v.String()
}

// MarshalText implements encoding.TextMarshaler
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
