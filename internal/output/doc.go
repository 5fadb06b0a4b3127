// Package output provides structured output handling for the whichpm CLI.
//
// This package handles both human-readable and JSON output formats, so
// every command works equally well for human users and for automated
// agents that parse its output.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches
// format based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "Preference saved", "package_manager": "pnpm"})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"package_manager": "...", "source": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Styling
//
// For human-readable output, the package provides lipgloss-based styling
// that automatically disables when output is piped.
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad identity, bad flags)
//	output.ExitSystemError // 2: System error (no manager found, I/O error)
//
// # Error Types
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("unknown package manager \"cargo\"")
//	output.NewSystemError("could not determine package manager")
//
// These errors carry exit codes that are used for both JSON error output
// and process exit codes.
package output
