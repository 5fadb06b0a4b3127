package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/whichpm/internal/pm"
)

// preferenceKey is the JSON key holding the identity in preference files.
const preferenceKey = "packageManager"

// preferenceFile is the on-disk schema of package-manager.json. Unknown
// keys are ignored on read and dropped on write.
type preferenceFile struct {
	PackageManager string `json:"packageManager"`
}

// ReadPreference reads a persisted preference from path. Returns ok=false
// for a missing file, malformed JSON, or an unrecognized identity: a bad
// preference file is a missing signal, never a fatal error.
func ReadPreference(path string) (pm.Manager, bool) {
	if path == "" {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	var pref preferenceFile
	if err := json.Unmarshal(data, &pref); err != nil {
		return "", false
	}
	m, err := pm.Parse(pref.PackageManager)
	if err != nil {
		return "", false
	}
	return m, true
}

// WritePreference persists a preference to path, creating parent
// directories as needed. The write is atomic (temp file + rename) so a
// concurrent reader never observes a half-written file.
func WritePreference(path string, m pm.Manager) error {
	if !pm.Valid(m) {
		return fmt.Errorf("unknown package manager %q", m)
	}
	if path == "" {
		return fmt.Errorf("cannot determine preference file path")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(preferenceFile{PackageManager: m.String()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preference: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, PreferenceFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing preference: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// RemovePreference deletes a persisted preference file. Removing a
// preference that does not exist is not an error.
func RemovePreference(path string) error {
	if path == "" {
		return fmt.Errorf("cannot determine preference file path")
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
