package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors - Soft, low-contrast palette inspired by Tokyo Night / Catppuccin
var (
	reducedColor   lipgloss.Color // gas went down
	increasedColor lipgloss.Color // gas went up
	amberColor     lipgloss.Color
	lavenderColor  lipgloss.Color
	skyColor       lipgloss.Color

	headerColor   lipgloss.Color
	borderColor   lipgloss.Color
	mutedColorVal lipgloss.Color
	textColor     lipgloss.Color
)

// Styles
var (
	headerStyle    lipgloss.Style
	summaryStyle   lipgloss.Style
	reducedStyle   lipgloss.Style
	increasedStyle lipgloss.Style
	contractStyle  lipgloss.Style
	kindStyle      lipgloss.Style
	numberStyle    lipgloss.Style
	mutedStyle     lipgloss.Style
	spinnerStyle   lipgloss.Style

	tableHeaderStyle lipgloss.Style
	tableCellStyle   lipgloss.Style
	tableTotalStyle  lipgloss.Style
	tableBorderStyle lipgloss.Style
)

func init() {
	SetDarkPalette()
}

// SetDarkPalette switches to the default palette for dark terminals
func SetDarkPalette() {
	reducedColor = lipgloss.Color("#9ece6a")   // Soft sage green
	increasedColor = lipgloss.Color("#f7768e") // Soft coral red
	amberColor = lipgloss.Color("#e0af68")     // Warm amber
	lavenderColor = lipgloss.Color("#bb9af7")  // Soft lavender
	skyColor = lipgloss.Color("#7dcfff")       // Soft sky blue

	headerColor = lipgloss.Color("#7aa2f7")   // Soft periwinkle
	borderColor = lipgloss.Color("#3b4261")   // Muted slate
	mutedColorVal = lipgloss.Color("#565f89") // Soft gray-blue
	textColor = lipgloss.Color("#a9b1d6")     // Soft lavender gray
	buildStyles()
}

// SetLightPalette switches to darker tones that stay readable on light backgrounds
func SetLightPalette() {
	reducedColor = lipgloss.Color("#587539")
	increasedColor = lipgloss.Color("#c64343")
	amberColor = lipgloss.Color("#8c6c3e")
	lavenderColor = lipgloss.Color("#7847bd")
	skyColor = lipgloss.Color("#007197")

	headerColor = lipgloss.Color("#2e7de9")
	borderColor = lipgloss.Color("#a8aecb")
	mutedColorVal = lipgloss.Color("#6172b0")
	textColor = lipgloss.Color("#3760bf")
	buildStyles()
}

// SetTheme applies "light" or "dark"; anything else keeps the current palette
func SetTheme(name string) {
	switch name {
	case "light":
		SetLightPalette()
	case "dark":
		SetDarkPalette()
	}
}

func buildStyles() {
	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(headerColor).
		MarginBottom(1)

	summaryStyle = lipgloss.NewStyle().
		Foreground(textColor)

	reducedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(reducedColor)

	increasedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(increasedColor)

	contractStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lavenderColor)

	kindStyle = lipgloss.NewStyle().
		Foreground(mutedColorVal).
		Italic(true)

	numberStyle = lipgloss.NewStyle().
		Foreground(amberColor)

	mutedStyle = lipgloss.NewStyle().
		Foreground(mutedColorVal)

	spinnerStyle = lipgloss.NewStyle().
		Foreground(skyColor)

	tableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(headerColor).
		Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
		Foreground(textColor).
		Padding(0, 1)

	tableTotalStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(amberColor).
		Padding(0, 1)

	tableBorderStyle = lipgloss.NewStyle().
		Foreground(borderColor)
}
