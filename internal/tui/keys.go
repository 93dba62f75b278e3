package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/storefront/internal/nav"
)

type keyMap struct {
	Continue   key.Binding
	Up         key.Binding
	Down       key.Binding
	Prev       key.Binding
	Next       key.Binding
	Open       key.Binding
	Filter     key.Binding
	Search     key.Binding
	SearchDone key.Binding
	Clear      key.Binding
	Categories key.Binding
	Install    key.Binding
	Back       key.Binding
	Close      key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Continue:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "continue")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "move")),
		Down:       key.NewBinding(key.WithKeys("down", "j")),
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "screenshot")),
		Next:       key.NewBinding(key.WithKeys("right", "l")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Filter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "filter store")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		SearchDone: key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("enter", "done")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Categories: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "categories")),
		Install:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "install")),
		Back:       key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Close:      key.NewBinding(key.WithKeys("esc", "backspace", "enter"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpFor lists the bindings shown in the footer of a screen.
func (k keyMap) helpFor(kind nav.Kind, searching bool) []key.Binding {
	switch kind {
	case nav.KindStore:
		if searching {
			return []key.Binding{k.SearchDone}
		}
		return []key.Binding{k.Up, k.Open, k.Search, k.Clear, k.Categories, k.Quit}
	case nav.KindCategories:
		return []key.Binding{k.Up, k.Filter, k.Back, k.Quit}
	case nav.KindDetail:
		return []key.Binding{k.Prev, k.Open, k.Install, k.Back, k.Quit}
	case nav.KindScreenshot:
		return []key.Binding{k.Close, k.Quit}
	}
	return []key.Binding{k.Continue, k.Quit}
}

func renderFooter(bindings []key.Binding, width int) string {
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")
	keys := keyStyle.Background(colorMantle)
	descs := helpDescStyle.Background(colorMantle)

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keys.Render(help.Key)+space+descs.Render(help.Desc))
	}
	content := strings.Join(parts, sep)
	if width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(width).Render(content)
}
