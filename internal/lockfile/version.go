package lockfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Version reads the lockfile format version from a matched lockfile, for
// diagnostic display. Returns "" when the lockfile carries no version or
// cannot be parsed; version extraction is best-effort and never fatal.
func Version(dir string, m Match) string {
	path := filepath.Join(dir, m.Filename)
	switch m.Filename {
	case "pnpm-lock.yaml":
		return pnpmLockVersion(path)
	case "package-lock.json":
		return npmLockVersion(path)
	default:
		// yarn.lock and bun lockfiles use bespoke formats; not worth
		// parsing for a diagnostic string.
		return ""
	}
}

// pnpmLockVersion extracts the top-level lockfileVersion key.
func pnpmLockVersion(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var doc struct {
		LockfileVersion string `yaml:"lockfileVersion"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ""
	}
	return doc.LockfileVersion
}

// npmLockVersion extracts the numeric lockfileVersion field.
func npmLockVersion(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var doc struct {
		LockfileVersion int `json:"lockfileVersion"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return ""
	}
	if doc.LockfileVersion == 0 {
		return ""
	}
	return fmt.Sprintf("%d", doc.LockfileVersion)
}
