package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/gallery"
)

type galleryOptions struct {
	contentPath string
	open        int
	keys        string
}

func newGalleryCmd(app *AppContext) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "List gallery photos and replay lightbox navigation",
		Long: `List the photos in the page gallery.

With --open N the lightbox is opened on photo N and the keys given with
--keys (comma separated: left, right, esc or n, p, q) are replayed,
printing the photo on display after each step.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.contentPath, "content", "c", "", "Content YAML file (default: built-in page)")
	cmd.Flags().IntVar(&opts.open, "open", 0, "Open the lightbox on photo N (1-based)")
	cmd.Flags().StringVar(&opts.keys, "keys", "", "Keys to replay while open, e.g. right,right,left,esc")

	return cmd
}

func runGallery(cmd *cobra.Command, app *AppContext, opts *galleryOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.gallery")
	out := cmd.OutOrStdout()

	p, err := app.Loader().Load(ctx, opts.contentPath)
	if err != nil {
		return newCommandError("gallery", "loading page content", err, contentSuggestion(err))
	}
	if !p.HasGallery() {
		fmt.Fprintln(out, "This page has no gallery.")
		return nil
	}

	catalog := p.Gallery.Catalog
	for i, item := range catalog.Items() {
		fmt.Fprintf(out, "%2d. %s (%s)\n", i+1, item.AltText, item.Source)
	}

	if opts.open == 0 {
		if opts.keys != "" {
			return newCommandError("gallery", "replaying keys", errors.New("--keys needs --open"), "Open the lightbox first with --open N.")
		}
		return nil
	}

	lock := gallery.NewCountingScrollLock()
	router := gallery.NewKeyRouter()
	ctrl, err := gallery.NewController(catalog, lock, router, gallery.WithObserver(func(s gallery.State) {
		logger.Debug(ctx, "lightbox state changed", "open", s.IsOpen, "index", s.CurrentIndex)
	}))
	if err != nil {
		return newCommandError("gallery", "creating the lightbox", err, "The gallery needs at least one image.")
	}
	defer ctrl.Teardown()

	ctrl.Open(opts.open - 1)
	fmt.Fprintln(out)
	printLightbox(cmd, ctrl, lock)

	for _, raw := range splitKeys(opts.keys) {
		k := gallery.Key(raw)
		if !router.Dispatch(k) {
			fmt.Fprintf(out, "%-6s ignored\n", raw)
			continue
		}
		fmt.Fprintf(out, "%-6s ", raw)
		printLightbox(cmd, ctrl, lock)
	}
	return nil
}

func printLightbox(cmd *cobra.Command, ctrl *gallery.Controller, lock *gallery.CountingScrollLock) {
	if !ctrl.IsOpen() {
		fmt.Fprintf(cmd.OutOrStdout(), "closed (scroll enabled: %t)\n", lock.ScrollEnabled())
		return
	}
	cur := ctrl.CurrentItem()
	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", cur.Position, cur.Item.AltText)
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(strings.ToLower(k)); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
