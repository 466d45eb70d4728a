package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/reliefpage/internal/infrastructure/clipboard"
	"github.com/alexisbeaulieu97/reliefpage/internal/infrastructure/content"
	"github.com/alexisbeaulieu97/reliefpage/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/reliefpage/internal/ports"
)

const defaultRenderWidth = 80

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Logger    ports.Logger
	Clipboard ports.Clipboard
	// NewLoader builds a content loader logging through logger. The TUI
	// passes its session logger so reloads never write to the terminal.
	NewLoader func(logger ports.Logger) ports.ContentLoader
	// IsTerminal reports whether w is an interactive terminal.
	IsTerminal func(w io.Writer) bool
	// RunProgram runs an interactive model until it quits.
	RunProgram programRunner
}

func newAppContext() *AppContext {
	return &AppContext{
		Logger:     logging.NewNoOpLogger(),
		Clipboard:  clipboard.Detect(),
		NewLoader:  func(logger ports.Logger) ports.ContentLoader { return content.NewYAMLLoader(logger) },
		IsTerminal: isTerminal,
		RunProgram: runTeaProgram,
	}
}

// Loader returns a content loader bound to the application logger.
func (a *AppContext) Loader() ports.ContentLoader {
	return a.NewLoader(a.Logger)
}

// CommandContext derives a per-invocation context carrying a fresh
// correlation ID and a logger scoped to component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	logger := a.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return ctx, logger.With("component", component)
}

// configureLogging installs the CLI logger described by flags. Logs go to
// stderr unless a log file is given.
func (a *AppContext) configureLogging(flags *rootFlags, stderr io.Writer) (func() error, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}

	writer := stderr
	closer := func() error { return nil }
	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		writer = f
		closer = f.Close
		if !flags.verbose {
			level = "info"
		}
	}

	logger, err := logging.New(logging.Options{
		Writer:    writer,
		Level:     level,
		Format:    logging.Format(flags.logFormat),
		Component: "cli",
	})
	if err != nil {
		_ = closer()
		return nil, err
	}
	a.Logger = logger
	return closer, nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func terminalWidth(w io.Writer) int {
	if file, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultRenderWidth
}
