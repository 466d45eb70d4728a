package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/gallery"
	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
	"github.com/alexisbeaulieu97/reliefpage/internal/tui/landing"
)

type showOptions struct {
	contentPath string
	jsonOutput  bool
	width       int
}

func newShowCmd(app *AppContext) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the page as text or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.contentPath, "content", "c", "", "Content YAML file (default: built-in page)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the page content as JSON")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Wrap width (default: terminal width or 80)")

	return cmd
}

func runShow(cmd *cobra.Command, app *AppContext, opts *showOptions) error {
	ctx, logger := app.CommandContext(cmd, "command.show")

	p, err := app.Loader().Load(ctx, opts.contentPath)
	if err != nil {
		logger.Error(ctx, "content load failed", "path", opts.contentPath, "error", err)
		return newCommandError("show", "loading page content", err, contentSuggestion(err))
	}

	if opts.jsonOutput {
		return renderShowJSON(cmd, p)
	}

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}
	text, err := landing.Render(p, width)
	if err != nil {
		return newCommandError("show", "rendering page", err, contentSuggestion(err))
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}

type showJSONPayload struct {
	Title        string              `json:"title"`
	Urgency      string              `json:"urgency,omitempty"`
	Organisation showOrganisation    `json:"organisation"`
	Metrics      []showMetric        `json:"metrics,omitempty"`
	Donations    []string            `json:"donations"`
	Gallery      *showGallery        `json:"gallery,omitempty"`
	CopyTargets  []showCopyTarget    `json:"copy_targets,omitempty"`
	FAQ          []string            `json:"faq,omitempty"`
	Widgets      map[string]bool     `json:"widgets"`
	Sources      []map[string]string `json:"sources,omitempty"`
}

type showOrganisation struct {
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Dial     string `json:"dial,omitempty"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

type showCopyTarget struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type showMetric struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

type showGallery struct {
	Title  string      `json:"title,omitempty"`
	Images []showImage `json:"images"`
}

type showImage struct {
	Position string `json:"position"`
	Source   string `json:"src"`
	AltText  string `json:"alt"`
}

func renderShowJSON(cmd *cobra.Command, p *page.Page) error {
	payload := showJSONPayload{
		Title:   p.Title,
		Urgency: p.Urgency,
		Organisation: showOrganisation{
			Name:     p.Org.Name,
			Phone:    p.Org.Phone,
			Dial:     page.DialNumber(p.Org.Phone),
			Email:    p.Org.Email,
			Address:  p.Org.Address,
			WhatsApp: p.Org.WhatsAppLink,
		},
		Widgets: map[string]bool{
			"counter":  p.Widgets.Counter,
			"video":    p.Widgets.Video,
			"wishlist": p.Widgets.Wishlist,
		},
	}
	for _, t := range p.CopyTargets() {
		payload.CopyTargets = append(payload.CopyTargets, showCopyTarget{ID: t.ID, Label: t.Label, Value: t.Value})
	}
	for _, m := range p.Metrics {
		payload.Metrics = append(payload.Metrics, showMetric{Label: m.Label, Value: m.Value, Display: page.FormatMetric(m.Value, m.Suffix)})
	}
	for _, d := range p.Donations {
		payload.Donations = append(payload.Donations, d.Title)
	}
	for _, q := range p.FAQ {
		payload.FAQ = append(payload.FAQ, q.Question)
	}
	for _, s := range p.Footer.Sources {
		payload.Sources = append(payload.Sources, map[string]string{"label": s.Label, "url": s.URL})
	}
	if p.HasGallery() {
		g := &showGallery{Title: p.Gallery.Title}
		n := p.Gallery.Catalog.Len()
		for i, item := range p.Gallery.Catalog.Items() {
			g.Images = append(g.Images, showImage{Position: gallery.PositionLabel(i, n), Source: item.Source, AltText: item.AltText})
		}
		payload.Gallery = g
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
