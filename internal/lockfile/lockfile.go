// Package lockfile detects which package manager a project uses from the
// lockfiles present in its root directory.
package lockfile

import (
	"os"
	"path/filepath"

	"github.com/gorewood/whichpm/internal/pm"
)

// Match is a lockfile found in a project directory.
type Match struct {
	Manager  pm.Manager
	Filename string
}

// entry pairs a lockfile name with its manager.
type entry struct {
	filename string
	manager  pm.Manager
}

// scanOrder is the fixed order lockfiles are checked in. The first hit
// wins, so a directory with multiple stale lockfiles always resolves the
// same way. package-lock.json is checked last because it is the file most
// often left behind after a migration to another manager.
var scanOrder = []entry{
	{"bun.lockb", pm.Bun},
	{"bun.lock", pm.Bun},
	{"pnpm-lock.yaml", pm.PNPM},
	{"yarn.lock", pm.Yarn},
	{"package-lock.json", pm.NPM},
}

// Filenames returns all recognized lockfile names in scan order.
func Filenames() []string {
	names := make([]string, 0, len(scanOrder))
	for _, e := range scanOrder {
		names = append(names, e.filename)
	}
	return names
}

// Detect scans dir (non-recursively) for a known lockfile and returns the
// first match in scan order. Returns ok=false if no lockfile exists.
// Never writes and never fails: unreadable directories count as no signal.
func Detect(dir string) (Match, bool) {
	for _, e := range scanOrder {
		info, err := os.Stat(filepath.Join(dir, e.filename))
		if err != nil || info.IsDir() {
			continue
		}
		return Match{Manager: e.manager, Filename: e.filename}, true
	}
	return Match{}, false
}

// DetectAll returns every recognized lockfile present in dir, in scan
// order. Used by doctor to warn about conflicting stale lockfiles.
func DetectAll(dir string) []Match {
	var matches []Match
	for _, e := range scanOrder {
		info, err := os.Stat(filepath.Join(dir, e.filename))
		if err != nil || info.IsDir() {
			continue
		}
		matches = append(matches, Match{Manager: e.manager, Filename: e.filename})
	}
	return matches
}
