package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a content file without opening the page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, app, args[0])
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, app *AppContext, path string) error {
	ctx, logger := app.CommandContext(cmd, "command.validate")

	abs, err := validateContentPath(path)
	if err != nil {
		return newCommandError("validate", fmt.Sprintf("opening %s", path), err, "Pass the path of an existing YAML content file.")
	}

	loader := app.Loader()
	if err := loader.Validate(ctx, abs); err != nil {
		logger.Warn(ctx, "content validation failed", "path", abs, "error", err)
		return newCommandError("validate", fmt.Sprintf("validating %s", path), err, contentSuggestion(err))
	}

	p, err := loader.Load(ctx, abs)
	if err != nil {
		return newCommandError("validate", fmt.Sprintf("loading %s", path), err, contentSuggestion(err))
	}

	images := 0
	if p.HasGallery() {
		images = p.Gallery.Catalog.Len()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "  donation options: %d\n", len(p.Donations))
	fmt.Fprintf(cmd.OutOrStdout(), "  gallery images:   %d\n", images)
	fmt.Fprintf(cmd.OutOrStdout(), "  copy targets:     %d\n", len(p.CopyTargets()))
	return nil
}
