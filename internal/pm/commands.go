package pm

import "fmt"

// Action is a package-manager-agnostic operation that can be translated
// into a manager-specific command line.
type Action string

// Supported actions.
const (
	ActionInstall Action = "install" // install all dependencies from the manifest
	ActionAdd     Action = "add"     // add one or more packages
	ActionRemove  Action = "remove"  // remove one or more packages
	ActionRun     Action = "run"     // run a package.json script
	ActionExec    Action = "exec"    // execute a package binary
)

// Actions returns all supported actions in display order.
func Actions() []Action {
	return []Action{ActionInstall, ActionAdd, ActionRemove, ActionRun, ActionExec}
}

// ParseAction validates a raw string into an Action.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	switch a {
	case ActionInstall, ActionAdd, ActionRemove, ActionRun, ActionExec:
		return a, nil
	}
	return "", fmt.Errorf("unknown action %q (expected install, add, remove, run, or exec)", s)
}

// commandTable maps each manager to the argv prefix for each action.
// The first element is always the manager binary.
var commandTable = map[Manager]map[Action][]string{
	NPM: {
		ActionInstall: {"npm", "install"},
		ActionAdd:     {"npm", "install"},
		ActionRemove:  {"npm", "uninstall"},
		ActionRun:     {"npm", "run"},
		ActionExec:    {"npx"},
	},
	PNPM: {
		ActionInstall: {"pnpm", "install"},
		ActionAdd:     {"pnpm", "add"},
		ActionRemove:  {"pnpm", "remove"},
		ActionRun:     {"pnpm", "run"},
		ActionExec:    {"pnpm", "exec"},
	},
	Yarn: {
		ActionInstall: {"yarn", "install"},
		ActionAdd:     {"yarn", "add"},
		ActionRemove:  {"yarn", "remove"},
		ActionRun:     {"yarn", "run"},
		ActionExec:    {"yarn", "exec"},
	},
	Bun: {
		ActionInstall: {"bun", "install"},
		ActionAdd:     {"bun", "add"},
		ActionRemove:  {"bun", "remove"},
		ActionRun:     {"bun", "run"},
		ActionExec:    {"bunx"},
	},
}

// Command returns the full argv for performing action with manager m,
// with extra arguments appended.
func (m Manager) Command(action Action, args ...string) ([]string, error) {
	table, ok := commandTable[m]
	if !ok {
		return nil, fmt.Errorf("unknown package manager %q", m)
	}
	prefix, ok := table[action]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", action)
	}
	argv := make([]string, 0, len(prefix)+len(args))
	argv = append(argv, prefix...)
	argv = append(argv, args...)
	return argv, nil
}
