package main

import (
	"strings"
	"testing"

	"github.com/gorewood/whichpm/internal/config"
	"github.com/gorewood/whichpm/internal/output"
)

func TestDetect_Lockfile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "yarn.lock", "# yarn lockfile v1\n")

	result, err := executeJSON(t, "detect", "--json", "--dir", dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result["package_manager"] != "yarn" {
		t.Errorf("package_manager = %v, want yarn", result["package_manager"])
	}
	if result["source"] != "lockfile" {
		t.Errorf("source = %v, want lockfile", result["source"])
	}
	if result["detail"] != "yarn.lock" {
		t.Errorf("detail = %v, want yarn.lock", result["detail"])
	}
}

func TestDetect_EnvBeatsProjectConfig(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".claude/package-manager.json", `{"packageManager": "yarn"}`)
	t.Setenv(config.EnvVar, "pnpm")

	result, err := executeJSON(t, "detect", "--json", "--dir", dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result["package_manager"] != "pnpm" {
		t.Errorf("package_manager = %v, want pnpm (env beats project config)", result["package_manager"])
	}
	if result["source"] != "env" {
		t.Errorf("source = %v, want env", result["source"])
	}
}

func TestDetect_CorruptConfigFallsThrough(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".claude/package-manager.json", `{"packageManager": `)
	writeFile(t, dir, "yarn.lock", "")

	result, err := executeJSON(t, "detect", "--json", "--dir", dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result["package_manager"] != "yarn" {
		t.Errorf("package_manager = %v, want yarn (corrupt config ignored)", result["package_manager"])
	}
	if result["source"] != "lockfile" {
		t.Errorf("source = %v, want lockfile", result["source"])
	}
}

func TestDetect_InstalledFallback(t *testing.T) {
	isolateEnv(t)
	binDir := t.TempDir()
	fakeManager(t, binDir, "yarn")
	fakeManager(t, binDir, "bun")
	t.Setenv("PATH", binDir)

	result, err := executeJSON(t, "detect", "--json", "--dir", t.TempDir())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	// Tie-break order is npm, pnpm, yarn, bun: yarn wins over bun.
	if result["package_manager"] != "yarn" {
		t.Errorf("package_manager = %v, want yarn", result["package_manager"])
	}
	if result["source"] != "installed" {
		t.Errorf("source = %v, want installed", result["source"])
	}
}

func TestDetect_NothingFound(t *testing.T) {
	isolateEnv(t)

	result, err := executeJSON(t, "detect", "--json", "--dir", t.TempDir())
	if err == nil {
		t.Fatal("expected error when no package manager can be determined")
	}
	if got := output.GetExitCode(err); got != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", got, output.ExitSystemError)
	}

	code, ok := result["code"].(float64)
	if !ok || int(code) != output.ExitSystemError {
		t.Errorf("JSON error code = %v, want %d", result["code"], output.ExitSystemError)
	}
	if msg, _ := result["error"].(string); !strings.Contains(msg, "could not determine package manager") {
		t.Errorf("JSON error = %q, want mention of resolution failure", msg)
	}
}

func TestDetect_HumanOutput(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "pnpm-lock.yaml", "lockfileVersion: '9.0'\n")

	out, err := execute(t, "detect", "--dir", dir, "--verbose")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	checks := []string{
		"Package manager",
		"pnpm",
		"lockfile",
		"9.0", // lockfile version from --verbose
	}
	for _, check := range checks {
		if !strings.Contains(out, check) {
			t.Errorf("human output missing %q\nOutput: %s", check, out)
		}
	}
}

func TestDetect_Deterministic(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "package-lock.json", "{}")
	writeFile(t, dir, "yarn.lock", "")

	first, err := execute(t, "detect", "--json", "--dir", dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := execute(t, "detect", "--json", "--dir", dir)
		if err != nil {
			t.Fatalf("Execute() error on repeat = %v", err)
		}
		if again != first {
			t.Fatalf("output differs between runs:\nfirst:  %s\nagain: %s", first, again)
		}
	}
}
