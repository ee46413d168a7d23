package main

import (
	"context"
	"time"

	"metamask-connect-tui/rpc"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// detectBridge looks for the wallet bridge once at startup
func detectBridge(url string) tea.Cmd {
	return func() tea.Msg {
		p, err := rpc.Detect(url)
		if err != nil {
			return bridgeDetectedMsg{err: err}
		}
		return bridgeDetectedMsg{bridge: p}
	}
}

// requestAccounts asks the wallet to authorize account access.
// There is no timeout: the user may take as long as they like on the wallet prompt.
func requestAccounts(b rpc.Bridge) tea.Cmd {
	return func() tea.Msg {
		accounts, err := b.RequestAccounts(context.Background())
		return accountsAuthorizedMsg{accounts: accounts, err: err}
	}
}

// loadBalance queries the native balance of account
func loadBalance(b rpc.Bridge, account string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		wei, err := b.GetBalance(ctx, account)
		return balanceLoadedMsg{account: account, wei: wei, err: err}
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		if err == nil {
			return clipboardCopiedMsg{}
		}
		return nil
	}
}

// clearClipboardMsg waits 2 seconds then clears clipboard feedback
func clearClipboardMsg() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}
