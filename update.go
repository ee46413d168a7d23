package main

import (
	"fmt"

	"metamask-connect-tui/config"
	"metamask-connect-tui/helpers"
	"metamask-connect-tui/session"
	logview "metamask-connect-tui/views/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// -------------------- UPDATE --------------------

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The install notification blocks all other input until dismissed
	if m.alert != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "ctrl+c":
				m.closeBridge()
				return m, tea.Quit
			case "esc":
				m.alert = nil
				return m, nil
			}
		}

		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			form, cmd := m.alert.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				m.alert = f
				if f.State == huh.StateCompleted || f.State == huh.StateAborted {
					m.alert = nil
					return m, nil
				}
			}
			return m, cmd
		}
	}

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		m.logViewport.Width = m.w - 4
		m.logViewport.Height = logview.PanelHeight(m.h)
		m.updateLogViewport()
		return m, nil

	case bridgeDetectedMsg:
		if m.sess.Phase != session.Uninitialized {
			return m, nil
		}
		m.sess.Detect(msg.bridge)
		if m.sess.Phase == session.BridgeUnavailable {
			m.addLog("warning", "No wallet bridge detected", "err", msg.err)
			if m.alertCount == 0 {
				m.alertCount++
				m.alert = newInstallAlert()
			}
			return m, nil
		}
		m.addLog("info", "Wallet bridge detected", "url", m.cfg.ProviderURL)
		return m, nil

	case accountsAuthorizedMsg:
		if !m.sess.InFlight() {
			return m, nil
		}
		if msg.err != nil {
			m.sess.Fail(msg.err)
			m.addLog("error", "Error connecting to MetaMask", "err", msg.err)
			return m, nil
		}
		if err := m.sess.Authorized(msg.accounts); err != nil {
			m.addLog("error", "Error connecting to MetaMask", "err", err)
			return m, nil
		}
		account := m.sess.Account()
		m.addLog("success", fmt.Sprintf("Connected account `%s`", helpers.ShortenAddr(account)))
		return m, loadBalance(m.sess.Bridge(), account, m.cfg.BalanceTimeoutDuration())

	case balanceLoadedMsg:
		if msg.account != m.sess.Account() {
			m.addLog("debug", "Dropped balance for a stale account", "account", msg.account)
			return m, nil
		}
		if msg.err != nil {
			m.sess.Fail(msg.err)
			m.addLog("error", "Error connecting to MetaMask", "err", msg.err)
			return m, nil
		}
		m.sess.BalanceLoaded(msg.wei)
		m.addLog("info", fmt.Sprintf("Balance %s %s", m.sess.Balance(), m.cfg.Currency), "wei", msg.wei.String())
		return m, nil

	case clipboardCopiedMsg:
		m.copiedMsg = "✓ address copied"
		return m, clearClipboardMsg()

	case clearCopiedMsg:
		m.copiedMsg = ""
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.inButton(msg.X, msg.Y) {
			return m, m.connect()
		}
		if m.logEnabled {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.closeBridge()
			return m, tea.Quit

		case "enter", " ":
			return m, m.connect()

		case "c":
			if !m.sess.IsConnected() {
				return m, nil
			}
			return m, copyToClipboard(m.sess.Account())

		case "l":
			m.logEnabled = !m.logEnabled
			m.cfg.Logger = m.logEnabled
			if m.configPath != "" {
				config.SaveLogger(m.configPath, m.logEnabled)
			}
			m.updateLogViewport()
			return m, nil

		case "up", "down", "pgup", "pgdown":
			if m.logEnabled {
				var cmd tea.Cmd
				m.logViewport, cmd = m.logViewport.Update(msg)
				return m, cmd
			}
		}
	}

	return m, nil
}

// connect starts the authorization flow. Without a bridge, or while an
// attempt is in flight, it does nothing.
func (m *model) connect() tea.Cmd {
	if m.sess.Bridge() == nil {
		return nil
	}
	if !m.sess.Begin() {
		m.addLog("debug", "Connect already in progress")
		return nil
	}
	m.addLog("info", "Requesting accounts")
	return requestAccounts(m.sess.Bridge())
}
