// Package main provides the entry point for the whichpm CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/whichpm/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results organized by category.
type doctorResult struct {
	Version  string         `json:"version"`
	Managers []checkResult  `json:"managers"`
	Config   []checkResult  `json:"config"`
	Project  []checkResult  `json:"project"`
	Summary  *doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// doctorFlags holds the command-line flags for the doctor command.
type doctorFlags struct {
	dir   string
	quiet bool
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	flags := &doctorFlags{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check package manager setup health",
		Long: `Check package manager setup health and suggest fixes.

Runs a series of health checks across three categories:
  MANAGERS - Which manager binaries are installed
  CONFIG   - Env var and config file validity
  PROJECT  - Lockfile and package.json state

Each check reports:
  Pass    - Check passed successfully
  Warning - Non-critical issue found
  Fail    - Critical issue that needs attention

Examples:
  whichpm doctor          # Run all health checks
  whichpm doctor --quiet  # Only show failures and warnings
  whichpm doctor --json   # Output results as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.dir, "dir", "", "Project directory to inspect (default: working directory)")
	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Only show failures and warnings")

	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, flags *doctorFlags) error {
	printer := newPrinter(cmd)

	result := gatherDoctorChecks(flags)

	if printer.IsJSON() {
		if err := printer.WriteJSON(result); err != nil {
			return err
		}
	} else {
		outputDoctorHuman(printer, result, flags.quiet)
	}

	// A failed check means resolution cannot produce an answer.
	if result.Summary.Failed > 0 {
		return output.NewSystemError("doctor found failing checks")
	}
	return nil
}

// gatherDoctorChecks runs all health checks and returns results.
func gatherDoctorChecks(flags *doctorFlags) *doctorResult {
	dir := projectDir(flags.dir)
	result := &doctorResult{
		Version:  version,
		Managers: runManagerChecks(),
		Config:   runConfigChecks(dir),
		Project:  runProjectChecks(dir),
		Summary:  &doctorSummary{},
	}

	allChecks := append(append(result.Managers, result.Config...), result.Project...)
	for _, check := range allChecks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}
	return result
}

// outputDoctorHuman renders check results for a terminal.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	printSection := func(title string, checks []checkResult) {
		shown := 0
		for _, check := range checks {
			if quiet && check.Status == checkPass {
				continue
			}
			shown++
		}
		if shown == 0 {
			return
		}
		printer.Section(title)
		for _, check := range checks {
			if quiet && check.Status == checkPass {
				continue
			}
			printer.KeyValue(statusSymbol(check.Status)+" "+check.Name, check.Message)
			if check.Hint != "" {
				printer.Println("    hint: " + check.Hint)
			}
		}
	}

	printSection("Managers", result.Managers)
	printSection("Config", result.Config)
	printSection("Project", result.Project)

	printer.Println()
	printer.Print("%d passed, %d warnings, %d failed\n",
		result.Summary.Passed, result.Summary.Warnings, result.Summary.Failed)
}

// statusSymbol maps a check status to a display marker.
func statusSymbol(status checkStatus) string {
	switch status {
	case checkPass:
		return "✓"
	case checkWarn:
		return "!"
	case checkFail:
		return "✗"
	}
	return "?"
}
