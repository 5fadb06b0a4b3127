package config

import (
	"os"

	"github.com/gorewood/whichpm/internal/pm"
)

// EnvVar is the environment variable holding an explicit preference for
// the current invocation. It outranks every other signal source.
const EnvVar = "CLAUDE_PACKAGE_MANAGER"

// ReadEnv reads EnvVar from the environment. An unset variable or a value
// outside the supported set is ok=false; the reader never guesses.
func ReadEnv() (pm.Manager, bool) {
	val := os.Getenv(EnvVar)
	if val == "" {
		return "", false
	}
	m, err := pm.Parse(val)
	if err != nil {
		return "", false
	}
	return m, true
}
