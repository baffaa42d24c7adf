// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli is the asimov-account command-line shell: the cobra command
// tree, the wiring of configuration, stores, adapters and services, and the
// mapping of command errors to process exit statuses.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/asimov-account/internal/console"
	"github.com/MKhiriev/asimov-account/internal/logger"
	"github.com/MKhiriev/asimov-account/internal/service"
	"github.com/MKhiriev/asimov-account/models"
)

// app is the state shared by the commands of one invocation.
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	buildInfo models.AppBuildInfo

	// Set by wire before a subcommand runs.
	printer  *console.Printer
	logger   *logger.Logger
	services *service.Services

	// ran is set once a command's own handler starts. Errors raised before
	// that come from argument and flag parsing.
	ran bool
}

// Execute runs the command line args and returns the process exit status.
// Errors are printed once to stderr as "error: <message>".
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, buildInfo models.AppBuildInfo) int {
	a := &app{stdout: stdout, stderr: stderr, buildInfo: buildInfo}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	a.reportError(err)
	return a.exitCode(err)
}

func (a *app) exitCode(err error) int {
	if !a.ran && !matchesRule(err) {
		return ExitUsage
	}
	return ExitCode(err)
}

func (a *app) reportError(err error) {
	if errors.Is(err, ErrNoCommand) {
		return
	}
	printer := a.printer
	if printer == nil {
		printer = console.NewPrinter(a.stdout, a.stderr, 0)
	}
	printer.Error(err)
	if a.logger != nil {
		a.logger.Debug().Err(err).Int("exit_code", a.exitCode(err)).Msg("command failed")
	}
}
