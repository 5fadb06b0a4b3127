// Package config reads and writes the package manager preference from the
// places Claude Code style tooling declares it: environment, project
// config, package.json, and the global config directory.
package config

import (
	"os"
	"path/filepath"
)

// PreferenceFileName is the JSON file holding a persisted preference, both
// at project scope (.claude/package-manager.json) and at global scope
// (<global dir>/package-manager.json).
const PreferenceFileName = "package-manager.json"

// GlobalDir returns the global Claude configuration directory.
//
// Resolution:
//   - $CLAUDE_CONFIG_DIR if set (explicit override, matches Claude Code)
//   - ~/.claude otherwise
func GlobalDir() string {
	if dir := os.Getenv("CLAUDE_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude")
}

// GlobalPreferenceFile returns the path of the global preference file.
// Returns "" when no home directory can be determined.
func GlobalPreferenceFile() string {
	dir := GlobalDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, PreferenceFileName)
}

// ProjectDir returns the project-local Claude configuration directory
// (.claude/ under the project root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, ".claude")
}

// ProjectPreferenceFile returns the path of the project preference file.
func ProjectPreferenceFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), PreferenceFileName)
}

// PackageJSONFile returns the path of the project's package.json.
func PackageJSONFile(projectRoot string) string {
	return filepath.Join(projectRoot, "package.json")
}
