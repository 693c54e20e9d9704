package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"order-assistant/internal/assistant"
)

const version = "1.0.0-beta"

var (
	bannerBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("6")). // cyan
			Padding(1, 2)
	bannerTitle = lipgloss.NewStyle().Bold(true)
	bannerDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// banner renders the welcome box with the supported commands.
func banner(exitKeyword string) string {
	var b strings.Builder
	b.WriteString(bannerTitle.Render("🤖 ORDER ASSISTANT"))
	b.WriteString("\n")
	b.WriteString(bannerDim.Render("Version: " + version))
	b.WriteString("\n\n📝 SUPPORTED COMMANDS:\n")
	for _, ex := range assistant.Examples {
		b.WriteString("\n  • \"" + ex + "\"")
	}
	b.WriteString("\n  • \"" + exitKeyword + "\" to quit")

	return bannerBox.Render(b.String()) + "\n\n💡 Tip: you can copy and paste the examples above!"
}
