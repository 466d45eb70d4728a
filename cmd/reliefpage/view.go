package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/gallery"
	"github.com/alexisbeaulieu97/reliefpage/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/reliefpage/internal/infrastructure/watch"
	"github.com/alexisbeaulieu97/reliefpage/internal/ports"
	"github.com/alexisbeaulieu97/reliefpage/internal/tui/landing"
)

type viewOptions struct {
	contentPath    string
	watch          bool
	navigateAlways bool
	markdownStyle  string
}

// programRunner runs an interactive model. send lets background producers
// deliver messages to the running program; it is valid until the runner
// returns.
type programRunner func(ctx context.Context, model tea.Model, ready func(send func(tea.Msg))) (tea.Model, error)

func runTeaProgram(ctx context.Context, model tea.Model, ready func(send func(tea.Msg))) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if ready != nil {
		ready(program.Send)
	}
	return program.Run()
}

func bindViewFlags(cmd *cobra.Command, opts *viewOptions) {
	cmd.Flags().StringVarP(&opts.contentPath, "content", "c", "", "Content YAML file (default: built-in page)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the page when the content file changes")
	cmd.Flags().BoolVar(&opts.navigateAlways, "navigate-closed", false, "Let gallery navigation advance while the lightbox is closed")
	cmd.Flags().StringVar(&opts.markdownStyle, "style", "auto", "Markdown style: auto, dark, light, notty")
}

func newViewCmd(app *AppContext) *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive landing page",
		Long: `Open the landing page in an interactive terminal UI.

When stdout is not a terminal the page is printed as plain text instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, app, opts)
		},
	}
	bindViewFlags(cmd, opts)

	return cmd
}

func runView(cmd *cobra.Command, app *AppContext, opts *viewOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.view")

	if opts.watch && opts.contentPath == "" {
		return newCommandError("view", "starting the content watcher", errors.New("--watch needs a content file"), "Pass the YAML file to watch with --content.")
	}

	p, err := app.Loader().Load(ctx, opts.contentPath)
	if err != nil {
		logger.Error(ctx, "content load failed", "path", opts.contentPath, "error", err)
		return newCommandError("view", "loading page content", err, contentSuggestion(err))
	}

	out := cmd.OutOrStdout()
	if !app.IsTerminal(out) {
		logger.Debug(ctx, "stdout is not a terminal, printing static page")
		text, err := landing.Render(p, terminalWidth(out))
		if err != nil {
			return newCommandError("view", "rendering page", err, contentSuggestion(err))
		}
		_, err = fmt.Fprint(out, text)
		return err
	}

	// The terminal belongs to the UI while it runs; buffer logs until exit.
	session := logging.NewSessionBuffer(0)
	uiLogger := session.Logger().With("correlation_id", ports.GetCorrelationID(ctx))
	defer session.Flush(logger)

	policy := gallery.NavigateOnlyWhenOpen
	if opts.navigateAlways {
		policy = gallery.NavigateAlways
	}

	model, err := landing.New(p, landing.Options{
		Clipboard:        app.Clipboard,
		Logger:           uiLogger,
		NavigationPolicy: policy,
		MarkdownStyle:    opts.markdownStyle,
	})
	if err != nil {
		return newCommandError("view", "building the page", err, contentSuggestion(err))
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var watcher *watch.Watcher
	ready := func(send func(tea.Msg)) {
		if !opts.watch {
			return
		}
		w, err := watch.New(opts.contentPath, app.NewLoader(uiLogger), func(r watch.Reload) {
			send(landing.ContentReloadedMsg{Page: r.Page, Err: r.Err})
		}, watch.WithLogger(uiLogger))
		if err == nil {
			err = w.Start(runCtx)
		}
		if err != nil {
			uiLogger.Error(runCtx, "content watcher unavailable", "error", err)
			return
		}
		watcher = w
	}

	logger.Info(ctx, "launching page", "path", opts.contentPath, "watch", opts.watch)
	final, err := app.RunProgram(runCtx, model, ready)
	if watcher != nil {
		watcher.Stop()
	}
	if m, ok := final.(landing.Model); ok {
		m.Teardown()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return newCommandError("view", "running the terminal UI", err, "Re-run with --verbose --log-file reliefpage.log for details.")
	}

	logger.Info(ctx, "page closed")
	return nil
}
