package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorewood/whichpm/internal/config"
	"github.com/gorewood/whichpm/internal/pm"
	"github.com/gorewood/whichpm/internal/resolver"
)

// --- Test helpers ---

// fakeFactory builds resolvers whose PATH probe finds only the given
// binaries.
func fakeFactory(installed ...string) ResolverFactory {
	lookPath := func(file string) (string, error) {
		for _, n := range installed {
			if n == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("not found")
	}
	return func(dir string) *resolver.Resolver {
		return resolver.New(dir, resolver.WithLookPath(lookPath))
	}
}

// isolate points the global config at an empty temp dir and clears the
// env var signal.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	t.Setenv("CLAUDE_CONFIG_DIR", filepath.Join(t.TempDir(), "claude-home"))
}

// --- Detect handler tests ---

func TestHandleDetect_Lockfile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pnpm-lock.yaml"), []byte("lockfileVersion: '9.0'"), 0o600); err != nil {
		t.Fatalf("writing lockfile: %v", err)
	}

	handler := handleDetect(fakeFactory("npm"))
	_, out, err := handler(context.Background(), nil, DetectInput{Dir: dir})
	if err != nil {
		t.Fatalf("detect handler error = %v", err)
	}

	if out.PackageManager != "pnpm" {
		t.Errorf("package_manager = %q, want pnpm", out.PackageManager)
	}
	if out.Source != string(resolver.SourceLockfile) {
		t.Errorf("source = %q, want %q", out.Source, resolver.SourceLockfile)
	}
	if out.Detail != "pnpm-lock.yaml" {
		t.Errorf("detail = %q, want pnpm-lock.yaml", out.Detail)
	}
}

func TestHandleDetect_NothingFound(t *testing.T) {
	isolate(t)

	handler := handleDetect(fakeFactory())
	_, _, err := handler(context.Background(), nil, DetectInput{Dir: t.TempDir()})
	if !errors.Is(err, resolver.ErrNoPackageManager) {
		t.Fatalf("detect handler error = %v, want ErrNoPackageManager", err)
	}
}

// --- Explain handler tests ---

func TestHandleExplain(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvVar, "bun")

	handler := handleExplain(fakeFactory("npm"))
	_, out, err := handler(context.Background(), nil, ExplainInput{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("explain handler error = %v", err)
	}

	if len(out.Signals) != 6 {
		t.Fatalf("explain returned %d signals, want 6", len(out.Signals))
	}
	if out.Signals[0].Source != string(resolver.SourceEnv) || !out.Signals[0].Present {
		t.Errorf("first signal = %+v, want present env signal", out.Signals[0])
	}
	if out.PackageManager != "bun" {
		t.Errorf("package_manager = %q, want bun", out.PackageManager)
	}
	if out.Source != string(resolver.SourceEnv) {
		t.Errorf("source = %q, want env", out.Source)
	}
}

func TestHandleExplain_Exhausted(t *testing.T) {
	isolate(t)

	handler := handleExplain(fakeFactory())
	_, out, err := handler(context.Background(), nil, ExplainInput{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("explain handler should not fail on exhaustion, got %v", err)
	}
	if out.PackageManager != "" {
		t.Errorf("package_manager = %q, want empty on exhaustion", out.PackageManager)
	}
	for _, sig := range out.Signals {
		if sig.Present {
			t.Errorf("signal %q unexpectedly present", sig.Source)
		}
	}
}

// --- Set preference handler tests ---

func TestHandleSetPreference_Project(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	handler := handleSetPreference()
	_, out, err := handler(context.Background(), nil, SetPreferenceInput{
		PackageManager: "yarn",
		Scope:          "project",
		Dir:            dir,
	})
	if err != nil {
		t.Fatalf("set_preference handler error = %v", err)
	}

	if out.Path != config.ProjectPreferenceFile(dir) {
		t.Errorf("path = %q, want %q", out.Path, config.ProjectPreferenceFile(dir))
	}
	got, ok := config.ReadPreference(out.Path)
	if !ok || got != pm.Yarn {
		t.Errorf("persisted preference = %q (ok=%v), want yarn", got, ok)
	}
}

func TestHandleSetPreference_Global(t *testing.T) {
	isolate(t)

	handler := handleSetPreference()
	_, out, err := handler(context.Background(), nil, SetPreferenceInput{
		PackageManager: "pnpm",
		Scope:          "global",
	})
	if err != nil {
		t.Fatalf("set_preference handler error = %v", err)
	}

	got, ok := config.ReadPreference(out.Path)
	if !ok || got != pm.PNPM {
		t.Errorf("persisted preference = %q (ok=%v), want pnpm", got, ok)
	}
}

func TestHandleSetPreference_Invalid(t *testing.T) {
	isolate(t)
	handler := handleSetPreference()

	if _, _, err := handler(context.Background(), nil, SetPreferenceInput{PackageManager: "cargo", Scope: "global"}); err == nil {
		t.Error("expected error for unknown manager")
	}
	if _, _, err := handler(context.Background(), nil, SetPreferenceInput{PackageManager: "npm", Scope: "user"}); err == nil {
		t.Error("expected error for unknown scope")
	}
}

// --- Server registration test ---

func TestNewServer(t *testing.T) {
	server := NewServer("1.0.0", fakeFactory("npm"))
	if server == nil {
		t.Fatal("NewServer returned nil")
	}
}
