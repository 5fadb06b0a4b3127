// Package main provides the entry point for the whichpm CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/whichpm/internal/config"
	"github.com/gorewood/whichpm/internal/output"
	"github.com/gorewood/whichpm/internal/pm"
)

// scopeFlags holds the --global/--project pair shared by set and unset.
type scopeFlags struct {
	global  bool
	project bool
	dir     string
}

// addScopeFlags registers the scope flags on a command.
func addScopeFlags(cmd *cobra.Command, flags *scopeFlags) {
	cmd.Flags().BoolVar(&flags.global, "global", false, "Use the global config (~/.claude)")
	cmd.Flags().BoolVar(&flags.project, "project", false, "Use the project config (.claude/)")
	cmd.Flags().StringVar(&flags.dir, "dir", "", "Project root for --project (default: working directory)")
}

// preferencePath validates the scope selection and returns the target
// config file path plus a scope label for output.
func preferencePath(flags *scopeFlags) (path string, scope string, err error) {
	switch {
	case flags.global && flags.project:
		return "", "", output.NewUserError("choose one of --global or --project, not both")
	case flags.global:
		path = config.GlobalPreferenceFile()
		if path == "" {
			return "", "", output.NewSystemError("cannot determine home directory for global config")
		}
		return path, "global", nil
	case flags.project:
		return config.ProjectPreferenceFile(projectDir(flags.dir)), "project", nil
	default:
		return "", "", output.NewUserError("specify --global or --project")
	}
}

// newSetCmd creates the set command.
func newSetCmd() *cobra.Command {
	flags := scopeFlags{}
	cmd := &cobra.Command{
		Use:   "set <npm|pnpm|yarn|bun>",
		Short: "Persist a package manager preference",
		Long: `Persist a package manager preference to a config file.

The preference is written as JSON to .claude/package-manager.json, either
in the project (--project) or in the global config directory (--global).
A project preference outranks lockfiles and the global preference; the
` + config.EnvVar + ` environment variable outranks everything.

Examples:
  whichpm set --global pnpm   # User-wide default
  whichpm set --project yarn  # This project only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, args[0], &flags)
		},
	}
	addScopeFlags(cmd, &flags)
	return cmd
}

// runSet executes the set command.
func runSet(cmd *cobra.Command, identity string, flags *scopeFlags) error {
	printer := newPrinter(cmd)

	// Validate before touching any file.
	manager, parseErr := pm.Parse(identity)
	if parseErr != nil {
		err := output.NewUserError(parseErr.Error())
		printer.Error(err)
		return err
	}

	path, scope, err := preferencePath(flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	if writeErr := config.WritePreference(path, manager); writeErr != nil {
		err := output.NewSystemErrorWithCause("saving preference failed", writeErr)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"package_manager": manager.String(),
			"scope":           scope,
			"path":            path,
		})
	}
	return printer.Success(map[string]any{
		"message": "Saved " + scope + " preference: " + manager.String(),
	})
}

// newUnsetCmd creates the unset command.
func newUnsetCmd() *cobra.Command {
	flags := scopeFlags{}
	cmd := &cobra.Command{
		Use:   "unset",
		Short: "Remove a persisted package manager preference",
		Long: `Remove a persisted package manager preference.

Deletes the package-manager.json config file at the chosen scope.
Removing a preference that was never set is not an error.

Examples:
  whichpm unset --global
  whichpm unset --project`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUnset(cmd, &flags)
		},
	}
	addScopeFlags(cmd, &flags)
	return cmd
}

// runUnset executes the unset command.
func runUnset(cmd *cobra.Command, flags *scopeFlags) error {
	printer := newPrinter(cmd)

	path, scope, err := preferencePath(flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	if removeErr := config.RemovePreference(path); removeErr != nil {
		err := output.NewSystemErrorWithCause("removing preference failed", removeErr)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"scope": scope,
			"path":  path,
		})
	}
	return printer.Success(map[string]any{
		"message": "Removed " + scope + " preference",
	})
}
