package config

import (
	"encoding/json"
	"os"

	"github.com/gorewood/whichpm/internal/pm"
)

// ReadPackageJSON reads the packageManager field from a project's
// package.json, accepting the corepack "name@version" format. Returns the
// raw field value alongside the parsed manager so callers can show what
// was actually declared. A missing file, malformed JSON, absent field, or
// unrecognized name is ok=false.
func ReadPackageJSON(projectRoot string) (m pm.Manager, raw string, ok bool) {
	data, err := os.ReadFile(PackageJSONFile(projectRoot))
	if err != nil {
		return "", "", false
	}
	var manifest struct {
		PackageManager string `json:"packageManager"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "", "", false
	}
	if manifest.PackageManager == "" {
		return "", "", false
	}
	parsed, err := pm.ParseCorepack(manifest.PackageManager)
	if err != nil {
		return "", "", false
	}
	return parsed, manifest.PackageManager, true
}
