// Package preview renders a theme's palette for the terminal.
package preview

import (
	"fmt"
	"strings"

	"bennypowers.dev/imstyle/internal/style"
	"bennypowers.dev/imstyle/internal/tokens"
	"github.com/charmbracelet/lipgloss"
)

const swatchWidth = 6

var (
	nameStyle = lipgloss.NewStyle().
			Width(24).
			Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))
)

// Swatch renders a block filled with c. Alpha is shown in the label only,
// terminals have no notion of it.
func Swatch(c style.Color) string {
	r, g, b, _ := c.RGBA255()
	return lipgloss.NewStyle().
		Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))).
		Render(strings.Repeat(" ", swatchWidth))
}

// Palette renders one line per color slot in catalog order:
//
//	WindowBg                ██████ #0f0f0fef
func Palette(s *style.Style) string {
	var b strings.Builder
	for i := 0; i < style.ColorCount; i++ {
		idx := style.ColorIndex(i)
		c := s.Color(idx)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(idx.String()),
			Swatch(c),
			" ",
			valueStyle.Render(tokens.Hex(c)),
		))
		b.WriteByte('\n')
	}
	return b.String()
}
