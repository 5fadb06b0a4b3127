// Package resolver selects a package manager by consulting signal sources
// in a fixed precedence order.
//
// Precedence (first concrete answer wins):
//  1. CLAUDE_PACKAGE_MANAGER environment variable
//  2. project .claude/package-manager.json
//  3. package.json packageManager field
//  4. lockfile present in the project directory
//  5. global package-manager.json
//  6. first manager binary found on PATH (npm, pnpm, yarn, bun order)
//
// Narrow, explicit signals outrank broad ones: an env var set for exactly
// this invocation beats a project declaration, which beats circumstantial
// lockfile evidence, which beats global defaults, which beat whatever
// happens to be installed. Resolution is a pure function of environment,
// filesystem, and PATH contents.
package resolver

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/gorewood/whichpm/internal/config"
	"github.com/gorewood/whichpm/internal/lockfile"
	"github.com/gorewood/whichpm/internal/pm"
)

// ErrNoPackageManager is returned when no source yields an answer and
// none of the supported manager binaries is on PATH. This is the only
// failure mode: every recoverable condition is demoted to a missing
// signal instead.
var ErrNoPackageManager = errors.New("could not determine package manager: no preference configured and no manager binary found on PATH")

// Source identifies where a resolution signal came from.
type Source string

// Signal sources in precedence order.
const (
	SourceEnv           Source = "env"
	SourceProjectConfig Source = "project-config"
	SourcePackageJSON   Source = "package-json"
	SourceLockfile      Source = "lockfile"
	SourceGlobalConfig  Source = "global-config"
	SourceInstalled     Source = "installed"
)

// Describe returns a human-readable label for the source.
func (s Source) Describe() string {
	switch s {
	case SourceEnv:
		return config.EnvVar + " environment variable"
	case SourceProjectConfig:
		return "project config (.claude/" + config.PreferenceFileName + ")"
	case SourcePackageJSON:
		return "package.json packageManager field"
	case SourceLockfile:
		return "lockfile in project directory"
	case SourceGlobalConfig:
		return "global config (~/.claude/" + config.PreferenceFileName + ")"
	case SourceInstalled:
		return "first manager installed on PATH"
	}
	return string(s)
}

// Signal is one consulted source and what it yielded. Signals are
// computed fresh on every resolution and never cached.
type Signal struct {
	Source  Source     `json:"source"`
	Present bool       `json:"present"`
	Manager pm.Manager `json:"manager,omitempty"`
	Detail  string     `json:"detail,omitempty"`
}

// Resolution is the selected manager plus the signal that won.
type Resolution struct {
	Manager pm.Manager `json:"manager"`
	Source  Source     `json:"source"`
	Detail  string     `json:"detail,omitempty"`
}

// LookPathFunc reports where a binary lives on PATH. Matches the
// signature of exec.LookPath; injectable so tests can fix the set of
// "installed" managers.
type LookPathFunc func(file string) (string, error)

// Resolver resolves the preferred package manager for one project
// directory. The zero value is not usable; use New.
type Resolver struct {
	dir      string
	lookPath LookPathFunc
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookPath replaces the PATH probe used for the installed-manager
// fallback.
func WithLookPath(fn LookPathFunc) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.lookPath = fn
		}
	}
}

// New creates a Resolver for the given project directory.
func New(dir string, opts ...Option) *Resolver {
	r := &Resolver{dir: dir, lookPath: exec.LookPath}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the first concrete answer in precedence order.
// The only possible error is ErrNoPackageManager.
func (r *Resolver) Resolve() (Resolution, error) {
	for _, sig := range r.Signals() {
		if sig.Present {
			return Resolution{Manager: sig.Manager, Source: sig.Source, Detail: sig.Detail}, nil
		}
	}
	return Resolution{}, ErrNoPackageManager
}

// Signals consults every source and returns one Signal per source in
// precedence order, present or not. Used by Resolve and by the explain
// command.
func (r *Resolver) Signals() []Signal {
	return []Signal{
		r.envSignal(),
		r.projectConfigSignal(),
		r.packageJSONSignal(),
		r.lockfileSignal(),
		r.globalConfigSignal(),
		r.installedSignal(),
	}
}

func (r *Resolver) envSignal() Signal {
	sig := Signal{Source: SourceEnv}
	if m, ok := config.ReadEnv(); ok {
		sig.Present = true
		sig.Manager = m
		sig.Detail = config.EnvVar + "=" + m.String()
	}
	return sig
}

func (r *Resolver) projectConfigSignal() Signal {
	sig := Signal{Source: SourceProjectConfig}
	path := config.ProjectPreferenceFile(r.dir)
	if m, ok := config.ReadPreference(path); ok {
		sig.Present = true
		sig.Manager = m
		sig.Detail = path
	}
	return sig
}

func (r *Resolver) packageJSONSignal() Signal {
	sig := Signal{Source: SourcePackageJSON}
	if m, raw, ok := config.ReadPackageJSON(r.dir); ok {
		sig.Present = true
		sig.Manager = m
		sig.Detail = fmt.Sprintf("packageManager: %q", raw)
	}
	return sig
}

func (r *Resolver) lockfileSignal() Signal {
	sig := Signal{Source: SourceLockfile}
	if match, ok := lockfile.Detect(r.dir); ok {
		sig.Present = true
		sig.Manager = match.Manager
		sig.Detail = match.Filename
	}
	return sig
}

func (r *Resolver) globalConfigSignal() Signal {
	sig := Signal{Source: SourceGlobalConfig}
	path := config.GlobalPreferenceFile()
	if m, ok := config.ReadPreference(path); ok {
		sig.Present = true
		sig.Manager = m
		sig.Detail = path
	}
	return sig
}

func (r *Resolver) installedSignal() Signal {
	sig := Signal{Source: SourceInstalled}
	for _, m := range pm.Known() {
		if path, err := r.lookPath(m.Binary()); err == nil {
			sig.Present = true
			sig.Manager = m
			sig.Detail = path
			return sig
		}
	}
	return sig
}

// Installed returns every supported manager found on PATH, in tie-break
// order, with the resolved binary path for each. Used by doctor.
func (r *Resolver) Installed() map[pm.Manager]string {
	found := make(map[pm.Manager]string)
	for _, m := range pm.Known() {
		if path, err := r.lookPath(m.Binary()); err == nil {
			found[m] = path
		}
	}
	return found
}
