package main

import (
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"metamask-connect-tui/config"
	"metamask-connect-tui/rpc"
	"metamask-connect-tui/session"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeBridge struct {
	accounts    []string
	accountsErr error
	balance     *big.Int
	balanceErr  error

	accountCalls int
	balanceCalls int
}

func (f *fakeBridge) RequestAccounts(ctx context.Context) ([]string, error) {
	f.accountCalls++
	return f.accounts, f.accountsErr
}

func (f *fakeBridge) GetBalance(ctx context.Context, account string) (*big.Int, error) {
	f.balanceCalls++
	return f.balance, f.balanceErr
}

func weiOf(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad wei %q", s)
	}
	return n
}

func newTestModel(t *testing.T, b rpc.Bridge) *model {
	t.Helper()
	m := newModel(config.DefaultConfig(), "")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if b != nil {
		m.Update(bridgeDetectedMsg{bridge: b})
	} else {
		m.Update(bridgeDetectedMsg{err: rpc.ErrBridgeUnavailable})
	}
	return &m
}

// run feeds msg to the model and then every command it produces, in order.
func run(t *testing.T, m *model, msg tea.Msg) {
	t.Helper()
	_, cmd := m.Update(msg)
	for i := 0; cmd != nil; i++ {
		if i > 10 {
			t.Fatal("command chain did not settle")
		}
		_, cmd = m.Update(cmd())
	}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestNoBridgeAlertsOnce(t *testing.T) {
	m := newTestModel(t, nil)

	if m.sess.Phase != session.BridgeUnavailable {
		t.Fatalf("phase = %s", m.sess.Phase)
	}
	if m.alert == nil || m.alertCount != 1 {
		t.Fatalf("expected one alert, got count %d", m.alertCount)
	}
	if !strings.Contains(m.View(), "Wallet bridge required") {
		t.Error("alert not rendered")
	}

	m.Update(bridgeDetectedMsg{err: rpc.ErrBridgeUnavailable})
	if m.alertCount != 1 {
		t.Errorf("alert raised again: %d", m.alertCount)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.alert != nil {
		t.Fatal("esc should dismiss the alert")
	}

	_, cmd := m.Update(enter)
	if cmd != nil {
		t.Error("connect without a bridge must be a no-op")
	}
	if m.sess.IsConnected() {
		t.Error("account set without a bridge")
	}
	if !strings.Contains(m.View(), "Connect with MetaMask") {
		t.Error("button should invite to connect")
	}
}

func TestConnectShowsAccountAndBalance(t *testing.T) {
	fb := &fakeBridge{
		accounts: []string{"0xABCDEF0123456789"},
		balance:  weiOf(t, "1500000000000000000"),
	}
	m := newTestModel(t, fb)

	if strings.Contains(m.View(), "Balance:") {
		t.Fatal("balance panel shown before connecting")
	}

	run(t, m, enter)

	view := m.View()
	if !strings.Contains(view, "Connected: 0xABCD...6789") {
		t.Errorf("button label missing from view:\n%s", view)
	}
	if !strings.Contains(view, "1.5 ETH") {
		t.Errorf("balance missing from view:\n%s", view)
	}
	if m.sess.Phase != session.Connected {
		t.Errorf("phase = %s", m.sess.Phase)
	}
	if fb.accountCalls != 1 || fb.balanceCalls != 1 {
		t.Errorf("calls: accounts=%d balance=%d", fb.accountCalls, fb.balanceCalls)
	}
}

func TestConnectZeroBalance(t *testing.T) {
	fb := &fakeBridge{
		accounts: []string{"0x1111222233334444555566667777888899990000"},
		balance:  big.NewInt(0),
	}
	m := newTestModel(t, fb)

	run(t, m, enter)

	view := m.View()
	if !strings.Contains(view, "Connected: 0x1111...0000") {
		t.Errorf("button label missing from view:\n%s", view)
	}
	if !strings.Contains(view, "0.0 ETH") {
		t.Errorf("balance missing from view:\n%s", view)
	}
}

func TestAuthorizationRejected(t *testing.T) {
	rejected := errors.New("User rejected the request.")

	t.Run("never connected", func(t *testing.T) {
		fb := &fakeBridge{accountsErr: rejected}
		m := newTestModel(t, fb)

		run(t, m, enter)

		if m.sess.IsConnected() || m.sess.Balance() != "" {
			t.Fatal("rejection must not set state")
		}
		if fb.balanceCalls != 0 {
			t.Error("balance queried after rejection")
		}
		if !strings.Contains(m.logBuffer.String(), "Error connecting to MetaMask") {
			t.Errorf("failure not logged:\n%s", m.logBuffer.String())
		}
		if strings.Contains(m.View(), "Balance:") {
			t.Error("balance panel shown after rejection")
		}
	})

	t.Run("already connected", func(t *testing.T) {
		fb := &fakeBridge{
			accounts: []string{"0x1111222233334444555566667777888899990000"},
			balance:  weiOf(t, "1500000000000000000"),
		}
		m := newTestModel(t, fb)
		run(t, m, enter)

		fb.accountsErr = rejected
		fb.accounts = nil
		run(t, m, enter)

		if m.sess.Account() != "0x1111222233334444555566667777888899990000" || m.sess.Balance() != "1.5" {
			t.Fatalf("prior connection lost: %q %q", m.sess.Account(), m.sess.Balance())
		}
		if !strings.Contains(m.View(), "1.5 ETH") {
			t.Error("prior balance no longer shown")
		}
	})
}

func TestBalanceFailureKeepsAccount(t *testing.T) {
	fb := &fakeBridge{
		accounts:   []string{"0xABCDEF0123456789"},
		balanceErr: errors.New("connection refused"),
	}
	m := newTestModel(t, fb)

	run(t, m, enter)

	if m.sess.Account() != "0xABCDEF0123456789" {
		t.Errorf("account = %q", m.sess.Account())
	}
	view := m.View()
	if !strings.Contains(view, "Connected: 0xABCD...6789") {
		t.Error("account not shown after balance failure")
	}
	if strings.Contains(view, "Balance:") {
		t.Error("balance panel shown without a balance")
	}
}

func TestConnectIgnoredWhileInFlight(t *testing.T) {
	fb := &fakeBridge{
		accounts: []string{"0xABCDEF0123456789"},
		balance:  big.NewInt(1),
	}
	m := newTestModel(t, fb)

	_, first := m.Update(enter)
	if first == nil {
		t.Fatal("first connect produced no command")
	}
	_, second := m.Update(enter)
	if second != nil {
		t.Fatal("second connect must be ignored while the first is in flight")
	}

	run(t, m, first())
	if fb.accountCalls != 1 {
		t.Errorf("accounts requested %d times", fb.accountCalls)
	}
	if m.sess.Phase != session.Connected {
		t.Errorf("phase = %s", m.sess.Phase)
	}
}

func TestStaleBalanceDropped(t *testing.T) {
	fb := &fakeBridge{
		accounts: []string{"0xABCDEF0123456789"},
		balance:  big.NewInt(0),
	}
	m := newTestModel(t, fb)
	run(t, m, enter)

	m.Update(balanceLoadedMsg{account: "0x1111222233334444555566667777888899990000", wei: weiOf(t, "5000000000000000000")})
	if m.sess.Balance() != "0.0" {
		t.Errorf("stale balance applied: %q", m.sess.Balance())
	}
}

func TestMouseClickOnButtonConnects(t *testing.T) {
	fb := &fakeBridge{
		accounts: []string{"0xABCDEF0123456789"},
		balance:  big.NewInt(0),
	}
	m := newTestModel(t, fb)

	x := m.w / 2
	y := -1
	for row := 0; row < m.h; row++ {
		if m.inButton(x, row) {
			y = row
			break
		}
	}
	if y < 0 {
		t.Fatal("button not found on screen")
	}

	lines := strings.Split(m.View(), "\n")
	if !strings.Contains(lines[y+1], "Connect with MetaMask") {
		t.Errorf("row %d does not hold the button label: %q", y+1, lines[y+1])
	}

	_, cmd := m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd != nil {
		t.Error("click outside the button must not connect")
	}

	run(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.sess.IsConnected() {
		t.Error("click on the button did not connect")
	}
}

func TestToggleLogger(t *testing.T) {
	m := newTestModel(t, &fakeBridge{})

	if m.logEnabled {
		t.Fatal("logger should start disabled")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if !m.logEnabled {
		t.Fatal("l should enable the logger")
	}
	if !strings.Contains(m.View(), "Wallet bridge detected") {
		t.Error("log panel does not show detection entry")
	}
}

func TestToggleLoggerDoesNotPersistEnvURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("ETH_RPC_URL", "")
	t.Setenv("WALLET_PROVIDER_URL", "http://secret-env:8545")

	cfg := config.LoadOrCreate(path)
	if cfg.ProviderURL != "http://secret-env:8545" {
		t.Fatalf("env override not applied: %q", cfg.ProviderURL)
	}
	m := newModel(cfg, path)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "secret-env") {
		t.Fatalf("provider url from env saved to config file:\n%s", data)
	}
	if !strings.Contains(string(data), `"logger": true`) {
		t.Errorf("logger flag not saved:\n%s", data)
	}
}

func TestCopyRequiresConnection(t *testing.T) {
	m := newTestModel(t, &fakeBridge{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if cmd != nil {
		t.Error("copy without an account must be a no-op")
	}
}
