package landing

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reliefpage/internal/domain/gallery"
	"github.com/alexisbeaulieu97/reliefpage/internal/domain/page"
)

// View renders the current model state
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.lightboxOpen() {
		return m.renderLightbox()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// renderHeader renders the urgency strip and the navigation bar
func (m Model) renderHeader() string {
	var rows []string
	if m.page.Urgency != "" {
		rows = append(rows, urgencyStyle.Width(m.width).Render(m.page.Urgency))
	}

	nav := m.page.Org.Name
	if m.page.Org.Badge != "" {
		nav += "  " + badgeStyle.Render(m.page.Org.Badge)
	}
	if m.page.Org.Phone != "" {
		nav += subtleStyle.Render("  ☎ " + m.page.Org.Phone)
	}
	rows = append(rows, headerStyle.Width(m.width).Render(nav))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the status line, the active mode panel and help
func (m Model) renderFooter() string {
	var rows []string
	if m.status != "" {
		rows = append(rows, statusStyle.Render(m.status))
	}

	switch m.mode {
	case ModeMenu:
		rows = append(rows, m.renderMenu())
	case ModePick:
		hint := "←/→ choose photo · enter open · esc cancel"
		if m.ctrl != nil {
			item := m.ctrl.Catalog().At(m.pickCursor)
			hint = gallery.PositionLabel(m.pickCursor, m.ctrl.Len()) + "  " + item.AltText + "  ·  " + hint
		}
		rows = append(rows, subtleStyle.Render(hint))
	}

	helpView := m.help.View(m.keys)
	if next, ok := m.NextCopyTarget(); ok && m.mode == ModeBrowse {
		helpView += subtleStyle.Render("  ·  next copy: " + next.Label)
	}
	rows = append(rows, footerStyle.Width(m.width).Render(helpView))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderMenu renders the contact menu
func (m Model) renderMenu() string {
	var lines []string
	if m.page.Org.Phone != "" {
		lines = append(lines, "Hotline: "+lipgloss.NewStyle().Bold(true).Render(m.page.Org.Phone)+
			subtleStyle.Render("  (tel:"+page.DialNumber(m.page.Org.Phone)+")"))
	}
	if m.page.Org.Email != "" {
		lines = append(lines, "Email:   "+m.page.Org.Email)
	}
	lines = append(lines, subtleStyle.Render("d donate now · c copy hotline · esc close"))
	return menuStyle.Width(m.width).Render(strings.Join(lines, "\n"))
}

// renderLightbox renders the full-screen image overlay
func (m Model) renderLightbox() string {
	cur := m.ctrl.CurrentItem()

	title := "Gallery"
	if m.page.Gallery != nil && m.page.Gallery.Title != "" {
		title = m.page.Gallery.Title
	}

	boxWidth := m.width - 8
	if boxWidth > 72 {
		boxWidth = 72
	}
	if boxWidth < 20 {
		boxWidth = 20
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		lightboxTitleStyle.Render(title),
		lipgloss.NewStyle().Bold(true).Render(cur.Item.AltText),
		subtleStyle.Render(cur.Item.Source),
		"",
		lightboxPositionStyle.Render(cur.Position),
		"",
		subtleStyle.Render("←/p previous · →/n next · esc/q close"),
	)

	box := lightboxStyle.Width(boxWidth).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
