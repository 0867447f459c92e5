package types

// CheckResult carries the three named outputs of a version check. The
// yaml tags match the key names written to the outputs file so the
// report artifact and the key=value lines stay consistent.
type CheckResult struct {
	CurrentVersion string `yaml:"current_version"`
	LatestVersion  string `yaml:"latest_version"`
	NeedsUpdate    bool   `yaml:"needs_update"`
}

// OutputEntry is a single key=value line destined for the external
// outputs file named by GITHUB_OUTPUT.
type OutputEntry struct {
	Key   string
	Value string
}

// Entries returns the check result as ordered output entries.
func (r CheckResult) Entries() []OutputEntry {
	needsUpdate := "false"
	if r.NeedsUpdate {
		needsUpdate = "true"
	}
	return []OutputEntry{
		{Key: "current_version", Value: r.CurrentVersion},
		{Key: "latest_version", Value: r.LatestVersion},
		{Key: "needs_update", Value: needsUpdate},
	}
}
