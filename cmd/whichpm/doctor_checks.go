// Package main provides the entry point for the whichpm CLI.
package main

import (
	"os"
	"strings"

	"github.com/gorewood/whichpm/internal/config"
	"github.com/gorewood/whichpm/internal/lockfile"
	"github.com/gorewood/whichpm/internal/pm"
	"github.com/gorewood/whichpm/internal/resolver"
)

// runManagerChecks reports which manager binaries are installed.
func runManagerChecks() []checkResult {
	installed := resolver.New(".").Installed()

	checks := make([]checkResult, 0, len(pm.Known())+1)
	for _, m := range pm.Known() {
		if path, ok := installed[m]; ok {
			checks = append(checks, checkResult{
				Name:    m.String(),
				Status:  checkPass,
				Message: path,
			})
		} else {
			checks = append(checks, checkResult{
				Name:    m.String(),
				Status:  checkWarn,
				Message: "not found on PATH",
			})
		}
	}

	if len(installed) == 0 {
		checks = append(checks, checkResult{
			Name:    "Fallback",
			Status:  checkFail,
			Message: "no package manager installed",
			Hint:    "Install Node.js (ships npm) or set a preference after installing one",
		})
	}
	return checks
}

// runConfigChecks validates the env var and both preference files.
func runConfigChecks(dir string) []checkResult {
	checks := make([]checkResult, 0, 3)
	checks = append(checks, checkEnvVar())
	checks = append(checks, checkPreferenceFile("Project config", config.ProjectPreferenceFile(dir)))
	checks = append(checks, checkPreferenceFile("Global config", config.GlobalPreferenceFile()))
	return checks
}

// checkEnvVar validates CLAUDE_PACKAGE_MANAGER if set.
func checkEnvVar() checkResult {
	raw := os.Getenv(config.EnvVar)
	if raw == "" {
		return checkResult{
			Name:    config.EnvVar,
			Status:  checkPass,
			Message: "not set",
		}
	}
	if _, err := pm.Parse(raw); err != nil {
		return checkResult{
			Name:    config.EnvVar,
			Status:  checkWarn,
			Message: "set to unrecognized value " + raw + " (ignored during resolution)",
			Hint:    "Use one of: npm, pnpm, yarn, bun",
		}
	}
	return checkResult{
		Name:    config.EnvVar,
		Status:  checkPass,
		Message: raw,
	}
}

// checkPreferenceFile validates one package-manager.json file.
func checkPreferenceFile(name, path string) checkResult {
	if path == "" {
		return checkResult{
			Name:    name,
			Status:  checkWarn,
			Message: "could not determine config path",
		}
	}
	if _, err := os.Stat(path); err != nil {
		return checkResult{
			Name:    name,
			Status:  checkPass,
			Message: "not set",
		}
	}
	if m, ok := config.ReadPreference(path); ok {
		return checkResult{
			Name:    name,
			Status:  checkPass,
			Message: m.String() + " (" + path + ")",
		}
	}
	return checkResult{
		Name:    name,
		Status:  checkWarn,
		Message: path + " exists but is malformed or holds an unknown manager (ignored during resolution)",
		Hint:    "Rewrite it with 'whichpm set'",
	}
}

// runProjectChecks inspects the project directory's own signals.
func runProjectChecks(dir string) []checkResult {
	checks := make([]checkResult, 0, 2)
	checks = append(checks, checkLockfiles(dir))
	checks = append(checks, checkPackageJSON(dir))
	return checks
}

// checkLockfiles warns when multiple managers left lockfiles behind.
func checkLockfiles(dir string) checkResult {
	matches := lockfile.DetectAll(dir)
	switch len(matches) {
	case 0:
		return checkResult{
			Name:    "Lockfiles",
			Status:  checkPass,
			Message: "none found",
		}
	case 1:
		msg := matches[0].Filename
		if v := lockfile.Version(dir, matches[0]); v != "" {
			msg += " (version " + v + ")"
		}
		return checkResult{
			Name:    "Lockfiles",
			Status:  checkPass,
			Message: msg,
		}
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Filename)
		}
		return checkResult{
			Name:    "Lockfiles",
			Status:  checkWarn,
			Message: "multiple lockfiles: " + strings.Join(names, ", "),
			Hint:    "Delete the stale ones; detection uses " + matches[0].Filename,
		}
	}
}

// checkPackageJSON validates the packageManager field if present.
func checkPackageJSON(dir string) checkResult {
	data, err := os.ReadFile(config.PackageJSONFile(dir))
	if err != nil {
		return checkResult{
			Name:    "package.json",
			Status:  checkPass,
			Message: "not found",
		}
	}
	if m, raw, ok := config.ReadPackageJSON(dir); ok {
		return checkResult{
			Name:    "package.json",
			Status:  checkPass,
			Message: m.String() + " (packageManager: " + raw + ")",
		}
	}
	// The file exists but yielded no signal: distinguish a missing field
	// from a malformed one for the hint.
	if strings.Contains(string(data), "packageManager") {
		return checkResult{
			Name:    "package.json",
			Status:  checkWarn,
			Message: "packageManager field present but unusable (ignored during resolution)",
			Hint:    "Expected format: \"<npm|pnpm|yarn|bun>@<version>\"",
		}
	}
	return checkResult{
		Name:    "package.json",
		Status:  checkPass,
		Message: "no packageManager field",
	}
}
