// Package main provides the entry point for the whichpm CLI.
package main

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/whichpm/internal/output"
	"github.com/gorewood/whichpm/internal/pm"
	"github.com/gorewood/whichpm/internal/resolver"
)

// commandFlags holds the command-line flags for the command command.
type commandFlags struct {
	dir  string
	exec bool
}

// newCommandCmd creates the command command.
func newCommandCmd() *cobra.Command {
	flags := commandFlags{}
	cmd := &cobra.Command{
		Use:     "command <install|add|remove|run|exec> [args...]",
		Aliases: []string{"cmd"},
		Short:   "Translate a generic action into the resolved manager's command",
		Long: `Translate a generic package action into the command line of the resolved
package manager, so scripts and agents do not need per-manager tables.

By default the command is printed, ready for eval or copy-paste. With
--exec it is run directly, inheriting stdio.

Examples:
  whichpm command install            # "pnpm install" in a pnpm project
  whichpm command add left-pad       # "npm install left-pad" under npm
  whichpm command run build --exec   # run the build script right away`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, args, flags)
		},
	}
	cmd.Flags().StringVar(&flags.dir, "dir", "", "Project directory to inspect (default: working directory)")
	cmd.Flags().BoolVar(&flags.exec, "exec", false, "Run the command instead of printing it")
	return cmd
}

// runCommand executes the command command.
func runCommand(cmd *cobra.Command, args []string, flags commandFlags) error {
	printer := newPrinter(cmd)

	action, parseErr := pm.ParseAction(args[0])
	if parseErr != nil {
		err := output.NewUserError(parseErr.Error())
		printer.Error(err)
		return err
	}

	res, resolveErr := resolver.New(projectDir(flags.dir)).Resolve()
	if resolveErr != nil {
		if errors.Is(resolveErr, resolver.ErrNoPackageManager) {
			resolveErr = output.NewSystemError(resolveErr.Error())
		}
		printer.Error(resolveErr)
		return resolveErr
	}

	argv, cmdErr := res.Manager.Command(action, args[1:]...)
	if cmdErr != nil {
		err := output.NewUserError(cmdErr.Error())
		printer.Error(err)
		return err
	}

	if flags.exec {
		return execArgv(cmd, printer, argv)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"package_manager": res.Manager.String(),
			"action":          string(action),
			"command":         argv,
		})
	}
	printer.Println(strings.Join(argv, " "))
	return nil
}

// execArgv runs the translated command, passing through stdio and the
// child's exit code.
func execArgv(cobraCmd *cobra.Command, printer *output.Printer, argv []string) error {
	// #nosec G204 -- argv comes from the fixed command table plus user args
	child := exec.CommandContext(cobraCmd.Context(), argv[0], argv[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = cobraCmd.OutOrStdout()
	child.Stderr = cobraCmd.ErrOrStderr()

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			wrapped := &output.ExitError{
				Code:    exitErr.ExitCode(),
				Message: strings.Join(argv, " ") + " failed",
				Cause:   err,
			}
			printer.Error(wrapped)
			return wrapped
		}
		sysErr := output.NewSystemErrorWithCause("running "+argv[0]+" failed", err)
		printer.Error(sysErr)
		return sysErr
	}
	return nil
}
