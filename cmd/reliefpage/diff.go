package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reliefpage/internal/tui/landing"
	"github.com/alexisbeaulieu97/reliefpage/pkg/diff"
)

type diffOptions struct {
	width int
	stat  bool
}

func newDiffCmd(app *AppContext) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <before> <after>",
		Short: "Compare how two content files render",
		Long: `Render two content files as plain text and print a unified diff of the
result. Pass "-" as <before> to compare against the built-in page.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, app, opts, args[0], args[1])
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 80, "Wrap width used for both renderings")
	cmd.Flags().BoolVar(&opts.stat, "stat", false, "Only print the number of added and removed lines")

	return cmd
}

func runDiff(cmd *cobra.Command, app *AppContext, opts *diffOptions, beforePath, afterPath string) error {
	before, err := renderContent(cmd, app, beforePath, opts.width)
	if err != nil {
		return err
	}
	after, err := renderContent(cmd, app, afterPath, opts.width)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	stats := diff.Count(before, after)
	if !stats.Changed() {
		fmt.Fprintln(out, "no visible changes")
		return nil
	}
	if opts.stat {
		fmt.Fprintf(out, "%s lines\n", stats)
		return nil
	}
	fmt.Fprint(out, diff.Unified(before, after, contentLabel(beforePath), contentLabel(afterPath)))
	return nil
}

func renderContent(cmd *cobra.Command, app *AppContext, path string, width int) (string, error) {
	ctx, _ := app.CommandContext(cmd, "command.diff")
	if path == "-" {
		path = ""
	}

	p, err := app.Loader().Load(ctx, path)
	if err != nil {
		return "", newCommandError("diff", fmt.Sprintf("loading %s", contentLabel(path)), err, contentSuggestion(err))
	}
	text, err := landing.Render(p, width)
	if err != nil {
		return "", newCommandError("diff", fmt.Sprintf("rendering %s", contentLabel(path)), err, contentSuggestion(err))
	}
	return text, nil
}

func contentLabel(path string) string {
	if path == "" || path == "-" {
		return "built-in page"
	}
	return path
}
