package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	backgroundHex = "#1a1a2e"
	accentHex     = "#2ecc71"
	incrementHex  = "#f1c40f"
	milestoneHex  = "#ff79c6"
	rainHex       = "#27ae60"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	amountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentHex)).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			Align(lipgloss.Center)

	infoCardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			Width(16).
			Align(lipgloss.Center)

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Bold(true).
			Padding(0, 2).
			Align(lipgloss.Center)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

// fade blends hex toward the background as alpha drops to zero.
func fade(hex string, alpha uint8) lipgloss.Color {
	fg, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	bg, _ := colorful.Hex(backgroundHex)
	return lipgloss.Color(bg.BlendRgb(fg, float64(alpha)/255).Hex())
}

func colorOf(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}
