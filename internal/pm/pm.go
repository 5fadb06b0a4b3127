// Package pm defines the closed set of supported Node.js package managers
// and their command vocabularies.
package pm

import (
	"fmt"
	"strings"
)

// Manager identifies a Node.js package manager.
type Manager string

// The four supported package managers.
const (
	NPM  Manager = "npm"
	PNPM Manager = "pnpm"
	Yarn Manager = "yarn"
	Bun  Manager = "bun"
)

// Known returns all supported managers in the fixed fallback order.
// The order doubles as the tie-break when probing PATH for an installed
// manager: npm first because it ships with Node itself.
func Known() []Manager {
	return []Manager{NPM, PNPM, Yarn, Bun}
}

// Valid returns true if m is one of the four supported managers.
func Valid(m Manager) bool {
	switch m {
	case NPM, PNPM, Yarn, Bun:
		return true
	}
	return false
}

// Parse validates a raw string into a Manager.
// Leading/trailing whitespace is tolerated; anything outside the closed
// set is an error, never a guess.
func Parse(s string) (Manager, error) {
	m := Manager(strings.TrimSpace(strings.ToLower(s)))
	if !Valid(m) {
		return "", fmt.Errorf("unknown package manager %q (expected npm, pnpm, yarn, or bun)", s)
	}
	return m, nil
}

// ParseCorepack parses the corepack-style "name@version" format used by
// the packageManager field in package.json, consulting only the name
// portion before the @.
func ParseCorepack(s string) (Manager, error) {
	name := strings.TrimSpace(s)
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}
	return Parse(name)
}

// String returns the manager name.
func (m Manager) String() string {
	return string(m)
}

// Binary returns the executable name to look up on PATH.
func (m Manager) Binary() string {
	return string(m)
}
