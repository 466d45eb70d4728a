package landing

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
)

// Section anchors, in page order.
const (
	AnchorHero      = "hero"
	AnchorMetrics   = "metrics"
	AnchorDonations = "donate-options"
	AnchorNeeds     = "needs"
	AnchorCourier   = "courier"
	AnchorLocation  = "location"
	AnchorGallery   = "gallery"
	AnchorFinance   = "finance"
	AnchorMedia     = "media"
	AnchorFAQ       = "faq"
	AnchorFooter    = "footer"
)

const minContentWidth = 40

// bodyRenderer lays the page out as a single scrollable column.
type bodyRenderer struct {
	page     *page.Page
	width    int
	markdown *glamour.TermRenderer

	// copyButton renders the button shown beside a copyable value.
	copyButton func(targetID string) string
	// metricText renders metric i at its current animation value.
	metricText func(i int) string
	// selected highlights a thumbnail; -1 for none.
	selected int
}

// renderedBody is the laid-out page together with the line each section
// starts on.
type renderedBody struct {
	content string
	anchors map[string]int
}

func (r bodyRenderer) render() renderedBody {
	out := renderedBody{anchors: make(map[string]int)}
	var (
		b    strings.Builder
		line int
	)
	add := func(anchor, section string) {
		if section == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n")
			line++
		}
		out.anchors[anchor] = line
		b.WriteString(section)
		line += strings.Count(section, "\n") + 1
	}

	add(AnchorHero, r.hero())
	add(AnchorMetrics, r.metrics())
	add(AnchorDonations, r.donations())
	add(AnchorNeeds, r.needs())
	add(AnchorCourier, r.courier())
	add(AnchorLocation, r.location())
	add(AnchorGallery, r.gallery())
	add(AnchorFinance, r.finance())
	add(AnchorMedia, r.media())
	add(AnchorFAQ, r.faq())
	add(AnchorFooter, r.footer())

	out.content = b.String()
	return out
}

func (r bodyRenderer) contentWidth() int {
	if r.width < minContentWidth {
		return minContentWidth
	}
	return r.width
}

func (r bodyRenderer) md(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if r.markdown == nil {
		return bodyStyle.Width(r.contentWidth()).Render(text)
	}
	out, err := r.markdown.Render(text)
	if err != nil {
		return bodyStyle.Width(r.contentWidth()).Render(text)
	}
	return strings.Trim(out, "\n")
}

func (r bodyRenderer) wrap(text string) string {
	return bodyStyle.Width(r.contentWidth()).Render(text)
}

func (r bodyRenderer) button(id string) string {
	if r.copyButton == nil {
		return ""
	}
	return " " + r.copyButton(id)
}

func (r bodyRenderer) hero() string {
	h := r.page.Hero
	var parts []string
	if h.Badge != "" {
		parts = append(parts, badgeStyle.Render(h.Badge))
	}
	parts = append(parts, sectionTitleStyle.Render(h.Headline))
	if h.Subline != "" {
		parts = append(parts, sectionTitleStyle.MarginTop(0).Render(h.Subline))
	}
	if body := r.md(h.Body); body != "" {
		parts = append(parts, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r bodyRenderer) metrics() string {
	if len(r.page.Metrics) == 0 {
		return ""
	}
	rows := []string{sectionTitleStyle.Render("Live Impact")}
	for i, m := range r.page.Metrics {
		value := page.FormatMetric(m.Value, m.Suffix)
		if r.metricText != nil {
			value = r.metricText(i)
		}
		row := metricValueStyle.Render(value) + " " + m.Label
		if m.Note != "" {
			row += subtleStyle.Render("  (" + m.Note + ")")
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r bodyRenderer) donations() string {
	rows := []string{sectionTitleStyle.Render("How You Can Help")}
	for i, d := range r.page.Donations {
		card := fmt.Sprintf("%d. %s", i+1, d.Title)
		if d.Summary != "" {
			card += "\n" + subtleStyle.Render(d.Summary)
		}
		if d.Detail != "" {
			card += "\n" + d.Detail
		}
		rows = append(rows, cardStyle.Width(r.contentWidth()-2).Render(card))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r bodyRenderer) needs() string {
	n := r.page.Needs
	if len(n.Categories) == 0 && n.Notice.Title == "" {
		return ""
	}
	rows := []string{sectionTitleStyle.Render("Priority Needs")}
	if n.Notice.Title != "" {
		rows = append(rows, noticeStyle.Width(r.contentWidth()-2).Render(n.Notice.Title+"\n"+n.Notice.Body))
	}
	for _, c := range n.Categories {
		name := c.Name
		if c.Critical {
			name += " " + badgeStyle.Render("CRITICAL")
		}
		rows = append(rows, lipgloss.NewStyle().Bold(true).Render(name))
		for _, it := range c.Items {
			label := it.Name
			switch {
			case it.Rejected:
				label = "✗ " + rejectedStyle.Render(label)
			case it.Priority:
				label = "★ " + priorityStyle.Render(label)
			default:
				label = "• " + label
			}
			if it.Detail != "" {
				label += subtleStyle.Render(" - " + it.Detail)
			}
			rows = append(rows, "  "+label)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r bodyRenderer) courier() string {
	c := r.page.Courier
	if len(c.Steps) == 0 {
		return ""
	}
	rows := []string{sectionTitleStyle.Render(c.Title)}
	if c.Intro != "" {
		rows = append(rows, r.wrap(c.Intro))
	}
	for i, s := range c.Steps {
		rows = append(rows, fmt.Sprintf("%d. %s", i+1, lipgloss.NewStyle().Bold(true).Render(s.Title)))
		if s.Detail != "" {
			rows = append(rows, "   "+s.Detail)
		}
		if s.Copy != "" {
			rows = append(rows, "   "+s.Copy+r.button(page.StepTargetID(i)))
		}
	}
	if r.page.Org.WhatsAppLink != "" {
		rows = append(rows, subtleStyle.Render("   WhatsApp: "+r.page.Org.WhatsAppLink))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r bodyRenderer) location() string {
	l := r.page.Location
	if l.Name == "" && len(l.Address) == 0 {
		return ""
	}
	rows := []string{sectionTitleStyle.Render("Drop-Off Location")}
	if l.Name != "" {
		rows = append(rows, lipgloss.NewStyle().Bold(true).Render(l.Name))
	}
	rows = append(rows, l.Address...)
	if r.page.Org.Address != "" {
		rows = append(rows, subtleStyle.Render("Full address")+r.button(page.OrgAddressTargetID))
	}
	for _, h := range l.Hours {
		rows = append(rows, subtleStyle.Render(h))
	}
	if l.Note != "" {
		rows = append(rows, r.wrap(l.Note))
	}
	if l.MapURL != "" {
		rows = append(rows, subtleStyle.Render("Map: "+l.MapURL))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r bodyRenderer) gallery() string {
	if !r.page.HasGallery() {
		return ""
	}
	g := r.page.Gallery
	title := g.Title
	if title == "" {
		title = "Gallery"
	}
	rows := []string{sectionTitleStyle.Render(title)}
	if g.Subtitle != "" {
		rows = append(rows, subtleStyle.Render(g.Subtitle))
	}
	for i, item := range g.Catalog.Items() {
		label := fmt.Sprintf("[%d] %s", i+1, item.AltText)
		if i == r.selected {
			rows = append(rows, selectedThumbStyle.Render(label))
			continue
		}
		rows = append(rows, thumbStyle.Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r bodyRenderer) finance() string {
	if len(r.page.Finance) == 0 {
		return ""
	}
	rows := []string{sectionTitleStyle.Render("Verified Financial Channels")}
	for oi, opt := range r.page.Finance {
		rows = append(rows, lipgloss.NewStyle().Bold(true).Render(opt.Label+" - "+opt.Recipient))
		for ai, acct := range opt.Accounts {
			if acct.Currency != "" {
				rows = append(rows, "  "+subtleStyle.Render(acct.Currency))
			}
			for fi, f := range acct.Fields {
				row := fmt.Sprintf("  %-12s %s", f.Label+":", f.Value)
				if f.Copyable {
					row += r.button(page.AccountTargetID(oi, ai, fi))
				}
				rows = append(rows, row)
			}
		}
		if opt.VerifyURL != "" {
			rows = append(rows, subtleStyle.Render("  Verify: "+opt.VerifyURL))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r bodyRenderer) media() string {
	var rows []string
	if r.page.Widgets.Video && r.page.Video != nil {
		title := r.page.Video.Title
		if title == "" {
			title = "Watch"
		}
		rows = append(rows, sectionTitleStyle.Render(title), subtleStyle.Render(r.page.Video.URL))
	}
	if r.page.Widgets.Wishlist && r.page.Wishlist != nil {
		w := r.page.Wishlist
		title := w.Title
		if title == "" {
			title = "Wishlist"
		}
		rows = append(rows, sectionTitleStyle.Render(title))
		if w.Body != "" {
			rows = append(rows, r.wrap(w.Body))
		}
		rows = append(rows, subtleStyle.Render(w.URL))
	}
	if len(rows) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r bodyRenderer) faq() string {
	if len(r.page.FAQ) == 0 {
		return ""
	}
	var md strings.Builder
	for _, q := range r.page.FAQ {
		fmt.Fprintf(&md, "### %s\n\n%s\n\n", q.Question, q.Answer)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render("Frequently Asked Questions"),
		r.md(md.String()),
	)
}

func (r bodyRenderer) footer() string {
	f := r.page.Footer
	rows := []string{footerStyle.Width(r.contentWidth()).Render(r.page.Org.Name)}
	if f.Tagline != "" {
		rows = append(rows, subtleStyle.Render(f.Tagline))
	}
	if f.Blurb != "" {
		rows = append(rows, r.wrap(f.Blurb))
	}
	var contact []string
	if r.page.Org.Phone != "" {
		contact = append(contact, "Phone: "+r.page.Org.Phone+r.button(page.OrgPhoneTargetID))
	}
	if r.page.Org.Email != "" {
		contact = append(contact, "Email: "+r.page.Org.Email)
	}
	rows = append(rows, contact...)
	for _, s := range f.Sources {
		rows = append(rows, subtleStyle.Render("• "+s.Label+": "+s.URL))
	}
	if f.Copyright != "" {
		rows = append(rows, subtleStyle.Render(f.Copyright))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// newMarkdownRenderer builds a glamour renderer. style "auto" detects the
// terminal background; any other value names a glamour standard style.
func newMarkdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	wrap := width - 4
	if wrap < minContentWidth {
		wrap = minContentWidth
	}
	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	return glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
}

// Render lays out p as plain text for non-interactive output. Markdown is
// rendered with glamour's "notty" style.
func Render(p *page.Page, width int) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	md, err := newMarkdownRenderer("notty", width)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	var b strings.Builder
	if p.Urgency != "" {
		b.WriteString(p.Urgency)
		b.WriteString("\n\n")
	}
	b.WriteString(p.Org.Name)
	if p.Org.Badge != "" {
		b.WriteString(" · " + p.Org.Badge)
	}
	b.WriteString("\n")

	body := bodyRenderer{page: p, width: width, markdown: md, selected: -1}.render()
	b.WriteString(body.content)
	b.WriteString("\n")
	return b.String(), nil
}
