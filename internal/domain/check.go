package domain

// CheckResult is the outcome of comparing a pinned version against a network minimum
type CheckResult struct {
	network        Network
	minVersion     Version
	currentVersion Version
	shouldUpdate   bool
}

// NewCheckResult compares current against min and captures the outcome
func NewCheckResult(network Network, min, current Version) *CheckResult {
	return &CheckResult{
		network:        network,
		minVersion:     min,
		currentVersion: current,
		shouldUpdate:   min.GreaterThan(current),
	}
}

// Network returns the network the minimum was resolved for
func (r *CheckResult) Network() Network { return r.network }

// MinVersion returns the minimum version required by the network
func (r *CheckResult) MinVersion() Version { return r.minVersion }

// CurrentVersion returns the version pinned in the manifest
func (r *CheckResult) CurrentVersion() Version { return r.currentVersion }

// ShouldUpdate reports whether the pinned version is below the network minimum
func (r *CheckResult) ShouldUpdate() bool { return r.shouldUpdate }

// Outputs returns the result as ordered action output pairs
func (r *CheckResult) Outputs() []OutputPair {
	shouldUpdate := "false"
	if r.shouldUpdate {
		shouldUpdate = "true"
	}
	return []OutputPair{
		{Key: OutputMinVersion, Value: r.minVersion.String()},
		{Key: OutputCurrentVersion, Value: r.currentVersion.String()},
		{Key: OutputShouldUpdate, Value: shouldUpdate},
	}
}

// Output keys exposed to the invoking workflow
const (
	OutputMinVersion     = "min-version"
	OutputCurrentVersion = "current-version"
	OutputShouldUpdate   = "should-update"
)

// OutputPair is a single key/value emitted to the CI environment
type OutputPair struct {
	Key   string
	Value string
}
