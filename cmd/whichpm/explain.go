// Package main provides the entry point for the whichpm CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gorewood/whichpm/internal/resolver"
)

// explainFlags holds the command-line flags for the explain command.
type explainFlags struct {
	dir string
}

// newExplainCmd creates the explain command.
func newExplainCmd() *cobra.Command {
	flags := explainFlags{}
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show every signal source and which one wins",
		Long: `Show every package manager signal source in precedence order, the value
each one yielded, and which one decided the resolution.

Useful when a project resolves to an unexpected manager: the table shows
exactly which declaration is responsible.

Examples:
  whichpm explain
  whichpm explain --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExplain(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.dir, "dir", "", "Project directory to inspect (default: working directory)")
	return cmd
}

// explainResult is the JSON shape for explain output.
type explainResult struct {
	Signals        []resolver.Signal `json:"signals"`
	PackageManager string            `json:"package_manager,omitempty"`
	Source         string            `json:"source,omitempty"`
}

// runExplain executes the explain command.
func runExplain(cmd *cobra.Command, flags explainFlags) error {
	printer := newPrinter(cmd)

	r := resolver.New(projectDir(flags.dir))
	signals := r.Signals()

	result := explainResult{Signals: signals}
	res, err := r.Resolve()
	resolved := err == nil
	if err != nil && !errors.Is(err, resolver.ErrNoPackageManager) {
		printer.Error(err)
		return err
	}
	if resolved {
		result.PackageManager = res.Manager.String()
		result.Source = string(res.Source)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	rows := make([][]string, 0, len(signals))
	for _, sig := range signals {
		marker := ""
		if resolved && sig.Source == res.Source {
			marker = "*"
		}
		value := "-"
		if sig.Present {
			value = sig.Manager.String()
		}
		rows = append(rows, []string{marker, string(sig.Source), value, sig.Detail})
	}
	printer.Table([]string{"", "SOURCE", "MANAGER", "DETAIL"}, rows)

	printer.Println()
	if resolved {
		printer.KeyValue("Resolved", res.Manager.String()+" (via "+string(res.Source)+")")
	} else {
		printer.Warn("no package manager found: nothing declared and none installed")
	}
	return nil
}
