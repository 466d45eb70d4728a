package landing

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	navyColor    = lipgloss.Color("17")  // Navy
	amberColor   = lipgloss.Color("214") // Amber
	successColor = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	textColor    = lipgloss.Color("252")
	overlayColor = lipgloss.Color("233") // Near black

	urgencyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(amberColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			PaddingLeft(1)

	badgeStyle = lipgloss.NewStyle().
			Foreground(navyColor).
			Background(amberColor).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(amberColor).
				MarginTop(1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	bodyStyle = lipgloss.NewStyle().
			Foreground(textColor)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(amberColor).
				Width(10)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderTop(false).
			BorderRight(false).
			BorderBottom(false).
			BorderForeground(errorColor).
			PaddingLeft(1)

	priorityStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	rejectedStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Strikethrough(true)

	copyButtonStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	copiedButtonStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true)

	thumbStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedThumbStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(amberColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderTop(false).
				BorderRight(false).
				BorderBottom(false).
				BorderForeground(amberColor)

	// Lightbox overlay styles
	lightboxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(amberColor).
			Background(overlayColor).
			Padding(1, 4).
			Align(lipgloss.Center)

	lightboxTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("231")).
				MarginBottom(1)

	lightboxPositionStyle = lipgloss.NewStyle().
				Foreground(amberColor).
				Bold(true)

	menuStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			PaddingLeft(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor)
)
