package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCheckResult(t *testing.T) {
	tests := []struct {
		name         string
		min          string
		current      string
		shouldUpdate bool
	}{
		{name: "equal versions", min: "1.18.0", current: "1.18.0", shouldUpdate: false},
		{name: "pinned below minimum", min: "1.18.0", current: "1.17.5", shouldUpdate: true},
		{name: "pre-release below final release", min: "1.18.0", current: "1.18.0-beta", shouldUpdate: true},
		{name: "pinned above minimum", min: "1.18.0", current: "1.18.2", shouldUpdate: false},
		{name: "final release above pre-release minimum", min: "2.0.0-rc.1", current: "2.0.0", shouldUpdate: false},
		{name: "major bump required", min: "2.1.13", current: "1.18.26", shouldUpdate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min := MustParseVersion(tt.min)
			current := MustParseVersion(tt.current)

			result := NewCheckResult(Testnet, min, current)

			assert.Equal(t, tt.shouldUpdate, result.ShouldUpdate())
			assert.Equal(t, min.GreaterThan(current), result.ShouldUpdate())
			assert.Equal(t, tt.min, result.MinVersion().String())
			assert.Equal(t, tt.current, result.CurrentVersion().String())
			assert.Equal(t, Testnet, result.Network())
		})
	}
}

func TestCheckResult_ShouldUpdateMatchesOrdering(t *testing.T) {
	versions := []string{"0.9.9", "1.17.5", "1.18.0-alpha", "1.18.0-beta", "1.18.0", "1.18.1", "2.0.0"}
	for _, a := range versions {
		for _, b := range versions {
			min, current := MustParseVersion(a), MustParseVersion(b)
			result := NewCheckResult(Devnet, min, current)
			assert.Equal(t, min.Compare(current) > 0, result.ShouldUpdate(), "min=%s current=%s", a, b)
		}
	}
}

func TestCheckResult_Outputs(t *testing.T) {
	result := NewCheckResult(Mainnet, MustParseVersion("1.18.0"), MustParseVersion("v1.17.5"))

	assert.Equal(t, []OutputPair{
		{Key: OutputMinVersion, Value: "1.18.0"},
		{Key: OutputCurrentVersion, Value: "1.17.5"},
		{Key: OutputShouldUpdate, Value: "true"},
	}, result.Outputs())

	upToDate := NewCheckResult(Mainnet, MustParseVersion("1.18.0"), MustParseVersion("1.18.0"))
	assert.Equal(t, "false", upToDate.Outputs()[2].Value)
}
