package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/whichpm/internal/config"
	"github.com/gorewood/whichpm/internal/pm"
	"github.com/gorewood/whichpm/internal/resolver"
)

// SignalInfo is one consulted signal source for output.
type SignalInfo struct {
	Source  string `json:"source"            jsonschema:"signal source kind"`
	Present bool   `json:"present"           jsonschema:"whether this source yielded a manager"`
	Manager string `json:"manager,omitempty" jsonschema:"manager this source declared"`
	Detail  string `json:"detail,omitempty"  jsonschema:"file path or raw value behind the signal"`
}

// resolveDir falls back to the process working directory.
func resolveDir(dir string) string {
	if dir != "" {
		return dir
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// --- Detect tool ---

// DetectInput is the input for the detect tool.
type DetectInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"project directory to inspect (default: working directory)"`
}

// DetectOutput is the output for the detect tool.
type DetectOutput struct {
	PackageManager string `json:"package_manager"  jsonschema:"resolved package manager (npm, pnpm, yarn, or bun)"`
	Source         string `json:"source"           jsonschema:"signal source that won"`
	Detail         string `json:"detail,omitempty" jsonschema:"file path or raw value behind the winning signal"`
}

func handleDetect(newResolver ResolverFactory) mcp.ToolHandlerFor[DetectInput, DetectOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DetectInput) (*mcp.CallToolResult, DetectOutput, error) {
		res, err := newResolver(resolveDir(input.Dir)).Resolve()
		if err != nil {
			return nil, DetectOutput{}, err
		}
		return nil, DetectOutput{
			PackageManager: res.Manager.String(),
			Source:         string(res.Source),
			Detail:         res.Detail,
		}, nil
	}
}

// --- Explain tool ---

// ExplainInput is the input for the explain tool.
type ExplainInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"project directory to inspect (default: working directory)"`
}

// ExplainOutput is the output for the explain tool.
type ExplainOutput struct {
	Signals        []SignalInfo `json:"signals"                   jsonschema:"all signal sources in precedence order"`
	PackageManager string       `json:"package_manager,omitempty" jsonschema:"resolved manager, empty when resolution failed"`
	Source         string       `json:"source,omitempty"          jsonschema:"winning signal source"`
}

func handleExplain(newResolver ResolverFactory) mcp.ToolHandlerFor[ExplainInput, ExplainOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ExplainInput) (*mcp.CallToolResult, ExplainOutput, error) {
		r := newResolver(resolveDir(input.Dir))

		out := ExplainOutput{}
		for _, sig := range r.Signals() {
			out.Signals = append(out.Signals, SignalInfo{
				Source:  string(sig.Source),
				Present: sig.Present,
				Manager: sig.Manager.String(),
				Detail:  sig.Detail,
			})
		}

		// Resolution failure is still a useful explanation: report the
		// empty signal list state instead of erroring.
		if res, err := r.Resolve(); err == nil {
			out.PackageManager = res.Manager.String()
			out.Source = string(res.Source)
		} else if !errors.Is(err, resolver.ErrNoPackageManager) {
			return nil, ExplainOutput{}, err
		}

		return nil, out, nil
	}
}

// --- Set preference tool ---

// SetPreferenceInput is the input for the set_preference tool.
type SetPreferenceInput struct {
	PackageManager string `json:"package_manager"  jsonschema:"manager to persist (npm, pnpm, yarn, or bun)"`
	Scope          string `json:"scope"            jsonschema:"where to persist: project or global"`
	Dir            string `json:"dir,omitempty"    jsonschema:"project root for project scope (default: working directory)"`
}

// SetPreferenceOutput is the output for the set_preference tool.
type SetPreferenceOutput struct {
	PackageManager string `json:"package_manager" jsonschema:"persisted manager"`
	Scope          string `json:"scope"           jsonschema:"scope that was written"`
	Path           string `json:"path"            jsonschema:"config file that was written"`
}

func handleSetPreference() mcp.ToolHandlerFor[SetPreferenceInput, SetPreferenceOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SetPreferenceInput) (*mcp.CallToolResult, SetPreferenceOutput, error) {
		manager, err := pm.Parse(input.PackageManager)
		if err != nil {
			return nil, SetPreferenceOutput{}, err
		}

		var path string
		switch input.Scope {
		case "project":
			path = config.ProjectPreferenceFile(resolveDir(input.Dir))
		case "global":
			path = config.GlobalPreferenceFile()
		default:
			return nil, SetPreferenceOutput{}, fmt.Errorf("unknown scope %q (expected project or global)", input.Scope)
		}

		if err := config.WritePreference(path, manager); err != nil {
			return nil, SetPreferenceOutput{}, fmt.Errorf("persisting preference: %w", err)
		}

		return nil, SetPreferenceOutput{
			PackageManager: manager.String(),
			Scope:          input.Scope,
			Path:           path,
		}, nil
	}
}
