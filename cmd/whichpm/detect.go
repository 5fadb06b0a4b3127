// Package main provides the entry point for the whichpm CLI.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/whichpm/internal/lockfile"
	"github.com/gorewood/whichpm/internal/output"
	"github.com/gorewood/whichpm/internal/resolver"
)

// detectResult holds the data for detect output.
type detectResult struct {
	PackageManager  string `json:"package_manager"`
	Source          string `json:"source"`
	Detail          string `json:"detail,omitempty"`
	LockfileVersion string `json:"lockfile_version,omitempty"`
}

// detectFlags holds the command-line flags for the detect command.
type detectFlags struct {
	dir     string
	verbose bool
}

// newDetectCmd creates the detect command.
func newDetectCmd() *cobra.Command {
	flags := detectFlags{}
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the preferred package manager",
		Long: `Detect which package manager the current project uses and report which
signal source decided it.

Examples:
  whichpm detect            # Show manager and winning source
  whichpm detect --verbose  # Also show lockfile format version
  whichpm detect --json     # Output as JSON for scripting`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDetect(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.dir, "dir", "", "Project directory to inspect (default: working directory)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show lockfile detail")
	return cmd
}

// projectDir returns the directory to resolve for, defaulting to cwd.
func projectDir(dir string) string {
	if dir != "" {
		return dir
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// runDetect executes the detect command.
func runDetect(cmd *cobra.Command, flags detectFlags) error {
	printer := newPrinter(cmd)

	dir := projectDir(flags.dir)
	res, err := resolver.New(dir).Resolve()
	if err != nil {
		if errors.Is(err, resolver.ErrNoPackageManager) {
			err = output.NewSystemError(err.Error())
		}
		printer.Error(err)
		return err
	}

	result := detectResult{
		PackageManager: res.Manager.String(),
		Source:         string(res.Source),
		Detail:         res.Detail,
	}
	if flags.verbose {
		if match, ok := lockfile.Detect(dir); ok {
			result.LockfileVersion = lockfile.Version(dir, match)
		}
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printer.KeyValue("Package manager", result.PackageManager)
	printer.KeyValue("Source", res.Source.Describe())
	if result.Detail != "" {
		printer.KeyValue("Detail", result.Detail)
	}
	if flags.verbose && result.LockfileVersion != "" {
		printer.KeyValue("Lockfile version", result.LockfileVersion)
	}
	return nil
}
