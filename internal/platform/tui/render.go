package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-stalls/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorBlack:        "0",
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightYellow: "11",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorBrown:        "94",
	core.ColorGray:         "245",
	core.ColorLightGray:    "252",
	core.ColorEarthGreen:   "65",
}

type cellStyle struct {
	fg, bg core.Color
}

// styleFor returns the lipgloss style for a foreground/background pair.
// ColorDefault leaves the terminal's own color.
func styleFor(cs cellStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if code, ok := colorCodes[cs.fg]; ok {
		style = style.Foreground(lipgloss.Color(code))
	}
	if code, ok := colorCodes[cs.bg]; ok {
		style = style.Background(lipgloss.Color(code))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Color, bg: cell.Bg}

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Color, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
