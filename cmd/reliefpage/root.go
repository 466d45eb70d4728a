package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	logFormat string
	logFile   string

	closeLog func() error
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}
	view := &viewOptions{}

	cmd := &cobra.Command{
		Use:           "reliefpage",
		Short:         "Relief landing page for the terminal",
		Long:          "Browse a disaster relief landing page in the terminal, including its photo gallery lightbox, copyable bank details and drop-off instructions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := app.configureLogging(flags, cmd.ErrOrStderr())
			if err != nil {
				return newCommandError(cmd.Name(), "configuring logging", err, "Use --log-format console or json, and check --log-file is writable.")
			}
			flags.closeLog = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if flags.closeLog != nil {
				return flags.closeLog()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, show the page
			if len(args) == 0 {
				return runView(cmd, app, view)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log format: console or json")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")
	bindViewFlags(cmd, view)

	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
