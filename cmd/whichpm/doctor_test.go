package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorewood/whichpm/internal/config"
)

// doctorJSON is the parsed shape of doctor --json output.
type doctorJSON struct {
	Managers []struct {
		Name    string `json:"name"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"managers"`
	Config []struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	} `json:"config"`
	Project []struct {
		Name    string `json:"name"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"project"`
	Summary struct {
		Passed   int `json:"passed"`
		Warnings int `json:"warnings"`
		Failed   int `json:"failed"`
	} `json:"summary"`
}

func runDoctorJSON(t *testing.T, args ...string) (doctorJSON, error) {
	t.Helper()
	out, err := execute(t, append([]string{"doctor", "--json"}, args...)...)
	var result doctorJSON
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		t.Fatalf("failed to parse doctor JSON: %v\nOutput: %s", jsonErr, out)
	}
	return result, err
}

func TestDoctor_NoManagersInstalled(t *testing.T) {
	isolateEnv(t)

	result, err := runDoctorJSON(t, "--dir", t.TempDir())
	if err == nil {
		t.Fatal("doctor should fail when no manager is installed")
	}

	if result.Summary.Failed == 0 {
		t.Error("summary should count the missing-fallback failure")
	}
	// All four manager checks warn, plus the fallback failure entry.
	if len(result.Managers) != 5 {
		t.Errorf("managers checks = %d, want 5", len(result.Managers))
	}
}

func TestDoctor_MultipleLockfilesWarn(t *testing.T) {
	isolateEnv(t)
	binDir := t.TempDir()
	fakeManager(t, binDir, "npm")
	t.Setenv("PATH", binDir)

	dir := t.TempDir()
	writeFile(t, dir, "package-lock.json", `{"lockfileVersion": 3}`)
	writeFile(t, dir, "yarn.lock", "")

	result, err := runDoctorJSON(t, "--dir", dir)
	if err != nil {
		t.Fatalf("doctor error = %v", err)
	}

	var lockCheck string
	for _, check := range result.Project {
		if check.Name == "Lockfiles" {
			lockCheck = check.Status
			if !strings.Contains(check.Message, "yarn.lock") || !strings.Contains(check.Message, "package-lock.json") {
				t.Errorf("lockfile warning should list both files: %q", check.Message)
			}
		}
	}
	if lockCheck != "warn" {
		t.Errorf("Lockfiles status = %q, want warn", lockCheck)
	}
}

func TestDoctor_MalformedConfigWarns(t *testing.T) {
	isolateEnv(t)
	binDir := t.TempDir()
	fakeManager(t, binDir, "npm")
	t.Setenv("PATH", binDir)

	dir := t.TempDir()
	writeFile(t, dir, ".claude/package-manager.json", "not json")

	result, err := runDoctorJSON(t, "--dir", dir)
	if err != nil {
		t.Fatalf("doctor error = %v", err)
	}

	found := false
	for _, check := range result.Config {
		if check.Name == "Project config" && check.Status == "warn" {
			found = true
		}
	}
	if !found {
		t.Error("malformed project config should produce a warning check")
	}
}

func TestDoctor_InvalidEnvVarWarns(t *testing.T) {
	isolateEnv(t)
	binDir := t.TempDir()
	fakeManager(t, binDir, "npm")
	t.Setenv("PATH", binDir)
	t.Setenv(config.EnvVar, "gradle")

	result, err := runDoctorJSON(t, "--dir", t.TempDir())
	if err != nil {
		t.Fatalf("doctor error = %v", err)
	}

	found := false
	for _, check := range result.Config {
		if check.Name == config.EnvVar && check.Status == "warn" {
			found = true
		}
	}
	if !found {
		t.Errorf("invalid %s should produce a warning check", config.EnvVar)
	}
}

func TestDoctor_QuietHidesPasses(t *testing.T) {
	isolateEnv(t)
	binDir := t.TempDir()
	fakeManager(t, binDir, "npm")
	fakeManager(t, binDir, "pnpm")
	fakeManager(t, binDir, "yarn")
	fakeManager(t, binDir, "bun")
	t.Setenv("PATH", binDir)

	out, err := execute(t, "doctor", "--quiet", "--dir", t.TempDir())
	if err != nil {
		t.Fatalf("doctor error = %v", err)
	}
	if strings.Contains(out, "✓") {
		t.Errorf("--quiet output should not show passing checks:\n%s", out)
	}
	if !strings.Contains(out, "passed") {
		t.Errorf("--quiet output should still show the summary line:\n%s", out)
	}
}
