package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/storefront/internal/catalog"
	"github.com/jask/storefront/internal/nav"
)

func (a *App) View() string {
	var body string
	switch a.nav.Current().Kind {
	case nav.KindStore:
		body = a.renderStore()
	case nav.KindCategories:
		body = a.renderCategories()
	case nav.KindDetail:
		body = a.renderDetail()
	case nav.KindScreenshot:
		body = a.renderScreenshot()
	default:
		body = a.renderOnboarding()
	}
	if a.notice != "" {
		style := noticeStyle
		if a.noticeWarn {
			style = warnNoticeStyle
		}
		body += "\n\n" + style.Render(a.notice)
	}
	return body
}

func (a *App) renderOnboarding() string {
	lines := []string{
		titleStyle.Render("Storefront"),
		"",
		textStyle.Render("A showcase of apps for everyday life."),
		subtitleStyle.Render("Browse the catalog, read about each app and try a simulated install."),
		"",
		buttonStyle.Render("Continue"),
	}
	hero := heroStyle.Width(min(a.width-4, 60)).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(a.width, max(a.height-2, lipgloss.Height(hero)), lipgloss.Center, lipgloss.Center, hero) +
		"\n" + a.footer()
}

func (a *App) renderStore() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Storefront"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  Apps available: %d", len(a.store.Apps()))))
	b.WriteString("\n\n")

	if a.searching || a.search.Value() != "" {
		b.WriteString(a.search.View())
		b.WriteString("\n\n")
	}

	chips := make([]string, 0, len(a.counts))
	for _, c := range a.store.CategoryCounts() {
		chips = append(chips, chipStyle.Render(fmt.Sprintf("%s · %d", c.Category.Label(), c.Count)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, spaced(chips)...))
	b.WriteString("\n\n")

	if len(a.results) == 0 {
		b.WriteString(mutedStyle.Render("Nothing matches your search."))
	}
	for i, app := range a.results {
		style := cardStyle
		if i == a.appCursor {
			style = selectedCardStyle
		}
		b.WriteString(style.Width(a.contentWidth()).Render(appCard(app, a.contentWidth()-4)))
		b.WriteString("\n")
	}
	if a.status != "" {
		b.WriteString("\n" + mutedStyle.Render(a.status))
	}
	b.WriteString("\n" + a.footer())
	return b.String()
}

func appCard(app catalog.App, width int) string {
	head := lipgloss.JoinHorizontal(lipgloss.Center,
		icon(app.Icon), " ",
		selectedStyle.Render(app.Name), "  ",
		mutedStyle.Render(app.Developer), "  ",
		ratingStyle.Render(fmt.Sprintf("★ %.1f", app.Rating)),
	)
	return ansi.Truncate(head, width, "…") + "\n" + subtitleStyle.Render(ansi.Truncate(app.ShortDescription, width, "…"))
}

func (a *App) renderCategories() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Categories"))
	b.WriteString("\n\n")
	for i, c := range a.counts {
		cursor := "  "
		name := textStyle.Render(c.Category.Label())
		if i == a.categoryCursor {
			cursor = selectedStyle.Render("▶ ")
			name = selectedStyle.Render(c.Category.Label())
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, name, countStyle.Render(plural(c.Count, "app", "apps"))))
		b.WriteString("    " + mutedStyle.Render(c.Category.Hint()) + "\n")
	}
	b.WriteString("\n" + a.footer())
	return b.String()
}

func (a *App) renderDetail() string {
	app, ok := a.nav.CurrentApp()
	if !ok {
		return mutedStyle.Render(nav.NoticeAppUnavailable)
	}
	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, icon(app.Icon), " ", titleStyle.Render(app.Name)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(app.Developer))
	b.WriteString("\n\n")
	b.WriteString(strings.Join([]string{
		ratingStyle.Render(fmt.Sprintf("★ %.1f", app.Rating)),
		ageStyle.Render(app.AgeRating),
		chipStyle.Render(app.Category.Label()),
	}, "   "))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render(app.ShortDescription))
	b.WriteString("\n\n")

	shots := make([]string, 0, len(app.Screenshots))
	for i, s := range app.Screenshots {
		thumb := lipgloss.NewStyle().
			Background(lipgloss.Color(s.GradientStart)).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2)
		if i == a.shotCursor {
			thumb = thumb.Underline(true).Bold(true)
		}
		shots = append(shots, thumb.Render(s.Label))
	}
	b.WriteString(subtitleStyle.Render("Screenshots") + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, spaced(shots)...))
	b.WriteString("\n\n")

	b.WriteString(a.description.View())
	if a.status != "" {
		b.WriteString("\n" + mutedStyle.Render(a.status))
	}
	b.WriteString("\n" + a.footer())
	return b.String()
}

func (a *App) renderScreenshot() string {
	app, shot, ok := a.nav.CurrentScreenshot()
	if !ok {
		return mutedStyle.Render(nav.NoticeScreenshotUnavailable)
	}
	panel := gradient(shot.GradientStart, shot.GradientEnd, a.contentWidth(), max(a.height-4, 3), shot.Label)
	return titleStyle.Render(app.Name) + mutedStyle.Render("  "+shot.Label) + "\n" +
		panel + "\n" + a.footer()
}

func icon(i catalog.Icon) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(i.Background)).
		Foreground(lipgloss.Color(i.Accent)).
		Bold(true).
		Padding(0, 1).
		Render(i.Glyph)
}

func (a *App) footer() string {
	return renderFooter(a.keys.helpFor(a.nav.Current().Kind, a.searching), a.width)
}

func spaced(items []string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, it)
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
