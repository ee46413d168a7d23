package log

import (
	"fmt"

	"metamask-connect-tui/helpers"
	"metamask-connect-tui/styles"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// PanelHeight returns the viewport height the log panel uses for a screen height
func PanelHeight(height int) int {
	// header, nav, title and borders
	reserved := 10
	available := helpers.Max(5, height-reserved)

	// at most 1/3 of the screen or 15 lines
	return helpers.Min(available, helpers.Min(height/3, 15))
}

// Render renders the log panel
func Render(width int, vp viewport.Model) string {
	title := lipgloss.NewStyle().
		Foreground(styles.CAccent2).
		Bold(true).
		Render("Log")

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(helpers.Max(0, width-2)).
		Height(vp.Height + 2) // title and spacing

	scrollInfo := ""
	if vp.TotalLineCount() > vp.Height {
		scrollInfo = lipgloss.NewStyle().
			Foreground(styles.CMuted).
			Render(fmt.Sprintf(" [%d%%]", int(vp.ScrollPercent()*100)))
	}

	return border.Render(title + scrollInfo + "\n\n" + vp.View())
}
