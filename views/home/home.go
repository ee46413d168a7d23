package home

import (
	"strings"

	"metamask-connect-tui/assets"
	"metamask-connect-tui/helpers"
	"metamask-connect-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// CardWidth is the outer width of the connect card, borders excluded
const CardWidth = 44

// Layout is a rendered connect card plus where its button sits inside it
type Layout struct {
	View         string
	ButtonTop    int // row of the first button line, relative to the card
	ButtonHeight int
}

// Render renders the connect card: logo, title, button and the optional balance panel
func Render(buttonLabel string, balancePanel string) Layout {
	inner := CardWidth - 4 // panel padding

	logo := helpers.FadeLines(assets.Logo(), string(styles.CFox), string(styles.CFoxDark))
	logo = lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Render(logo)

	title := styles.TitleStyle.
		Width(inner).
		Align(lipgloss.Center).
		Render("MetaMask Integration")

	button := styles.ButtonStyle.Width(inner).Render(buttonLabel)

	parts := []string{logo, "", title, "", button}
	if balancePanel != "" {
		parts = append(parts, "", balancePanel)
	}

	card := styles.PanelStyle.Width(CardWidth).Render(lipgloss.JoinVertical(lipgloss.Center, parts...))

	// border + top padding, then logo, blank, title, blank
	top := 1 + 1 + lipgloss.Height(logo) + 3
	return Layout{
		View:         card,
		ButtonTop:    top,
		ButtonHeight: lipgloss.Height(button),
	}
}

// Nav returns the navigation bar for the connect screen
func Nav(width int, connected bool) string {
	keys := []string{
		styles.Key("Enter") + " connect",
	}
	if connected {
		keys = append(keys, styles.Key("c")+" copy address")
	}
	keys = append(keys,
		styles.Key("l")+" logger",
		styles.Key("Esc")+" quit",
	)

	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}
