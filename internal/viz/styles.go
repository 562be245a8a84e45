package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/cartgrid/internal/config"
	"github.com/san-kum/cartgrid/internal/paint"
)

type styles struct {
	Label  lipgloss.Style
	Value  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		Label:  lipgloss.NewStyle().Foreground(t.Muted),
		Value:  lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Status: lipgloss.NewStyle().Foreground(t.Accent),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(t.Error),
	}
}

// GradientText colors each rune of text along a Lab blend from startColor
// to endColor. Colors that do not parse fall back to white.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	from := themeColor(startColor)
	to := themeColor(endColor)

	var result strings.Builder
	n := len(runes)
	for i, r := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := from.BlendLab(to, t).Clamped()
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		result.WriteString(style.Render(string(r)))
	}
	return result.String()
}

func themeColor(c lipgloss.Color) colorful.Color {
	rgba, err := config.ParseColor(string(c))
	if err != nil || !paint.Visible(rgba) {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	cf, _ := colorful.MakeColor(rgba)
	return cf
}
