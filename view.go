package main

import (
	"metamask-connect-tui/helpers"
	"metamask-connect-tui/views/details"
	"metamask-connect-tui/views/home"
	logview "metamask-connect-tui/views/log"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

// card renders the connect card for the current session state
func (m model) card() home.Layout {
	panel := ""
	if m.sess.ShowBalance() {
		panel = details.Render(home.CardWidth-4, m.sess.Balance(), m.cfg.Currency)
	}
	return home.Render(m.sess.ButtonLabel(), panel)
}

func (m model) nav() string {
	nav := home.Nav(m.w, m.sess.IsConnected())
	if m.copiedMsg != "" {
		nav = lipgloss.JoinVertical(lipgloss.Left, copiedStyle.Render(m.copiedMsg), nav)
	}
	return nav
}

// bodyHeight is the screen height left for the card after log panel and nav
func (m model) bodyHeight() int {
	h := m.h - lipgloss.Height(m.nav())
	if m.logEnabled {
		h -= lipgloss.Height(logview.Render(m.w, m.logViewport))
	}
	return helpers.Max(0, h)
}

// inButton reports whether screen cell (x, y) lies on the connect button
func (m model) inButton(x, y int) bool {
	layout := m.card()
	cardW, cardH := lipgloss.Width(layout.View), lipgloss.Height(layout.View)

	left := helpers.Max(0, (m.w-cardW)/2)
	top := helpers.Max(0, (m.bodyHeight()-cardH)/2)

	y0 := top + layout.ButtonTop
	return x >= left && x < left+cardW && y >= y0 && y < y0+layout.ButtonHeight
}

func (m model) renderAlert() string {
	dialog := dialogBoxStyle.Render(
		helpers.FadeString("Wallet bridge required", "#F25D94", "#EDFF82") + "\n\n" + m.alert.View(),
	)

	return lipgloss.Place(
		m.w, m.h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func (m model) View() string {
	if m.alert != nil {
		return m.renderAlert()
	}

	body := lipgloss.Place(
		m.w, m.bodyHeight(),
		lipgloss.Center, lipgloss.Center,
		m.card().View,
	)

	sections := []string{body}
	if m.logEnabled {
		sections = append(sections, logview.Render(m.w, m.logViewport))
	}
	sections = append(sections, m.nav())

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
