package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// gradient draws a vertical two-color gradient panel with label centred.
func gradient(start, end string, width, height int, label string) string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	mid := height / 2
	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(blend(start, end, t))).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Width(width).
			Align(lipgloss.Center)
		text := ""
		if y == mid {
			text = ansi.Truncate(label, width, "…")
		}
		rows = append(rows, style.Render(text))
	}
	return strings.Join(rows, "\n")
}

// blend mixes two #RRGGBB colors; t=0 is a, t=1 is b. Unparseable input
// returns a unchanged.
func blend(a, b string, t float64) string {
	ar, ag, ab, ok1 := parseHex(a)
	br, bg, bb, ok2 := parseHex(b)
	if !ok1 || !ok2 {
		return a
	}
	lerp := func(x, y int) int { return x + int(float64(y-x)*t+0.5) }
	return fmt.Sprintf("#%02X%02X%02X", lerp(ar, br), lerp(ag, bg), lerp(ab, bb))
}

func parseHex(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), true
}
