package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, trimmed to what the storefront uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent = colorPink
	colorFocus  = colorLavender
	colorMuted  = colorOverlay0
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	textStyle     = lipgloss.NewStyle().Foreground(colorText)

	selectedStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	ratingStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	ageStyle      = lipgloss.NewStyle().Foreground(colorTeal)
	countStyle    = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)

	chipStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorText).
			Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface0).
			Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(colorFocus)

	heroStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorMauve).
			Padding(1, 4).
			Align(lipgloss.Center)
	buttonStyle = lipgloss.NewStyle().
			Background(colorAccent).
			Foreground(colorMantle).
			Bold(true).
			Padding(0, 3)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Background(colorSurface0).
			Padding(0, 1)
	warnNoticeStyle = noticeStyle.Foreground(colorRed)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
	footerStyle   = lipgloss.NewStyle().Background(colorMantle).Padding(0, 1)
)
