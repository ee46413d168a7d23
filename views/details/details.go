package details

import (
	"metamask-connect-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

var panelStyle = lipgloss.NewStyle().
	Background(styles.CBg).
	Padding(1, 2)

// Render renders the balance panel. Callers only render it for a connected account.
func Render(width int, balance, currency string) string {
	label := lipgloss.NewStyle().Foreground(styles.CMuted).Render("Balance:")
	value := lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render(balance + " " + currency)

	return panelStyle.
		Width(width).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, label, value))
}
