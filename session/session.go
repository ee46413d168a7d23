// Package session holds the connect-and-query state of the wallet screen.
//
// A Session moves through explicit phases. A failed attempt never clears
// the account or balance of an earlier successful connection.
package session

import (
	"math/big"

	"metamask-connect-tui/helpers"
	"metamask-connect-tui/rpc"

	"github.com/pkg/errors"
)

// ErrNoAccounts is recorded when the wallet authorizes an empty account list.
var ErrNoAccounts = errors.New("wallet returned no accounts")

// Phase is the lifecycle position of a Session
type Phase int

const (
	Uninitialized Phase = iota
	BridgeUnavailable
	BridgeReady
	Connecting
	Connected
	ConnectionFailed
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case BridgeUnavailable:
		return "bridge unavailable"
	case BridgeReady:
		return "bridge ready"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case ConnectionFailed:
		return "connection failed"
	}
	return "unknown"
}

// Session is the transient wallet state owned by the screen
type Session struct {
	Phase Phase

	bridge  rpc.Bridge
	account string
	balance string

	// phase in effect before the current or last attempt
	lastGood Phase
	lastErr  error
}

// Detect records the result of bridge detection. Only the first call has any effect.
func (s *Session) Detect(b rpc.Bridge) {
	if s.Phase != Uninitialized {
		return
	}
	if b == nil {
		s.Phase = BridgeUnavailable
		return
	}
	s.bridge = b
	s.Phase = BridgeReady
}

// Bridge returns the provider handle, or nil when none was detected
func (s *Session) Bridge() rpc.Bridge { return s.bridge }

// Begin starts a connect attempt. It reports false, leaving the session
// untouched, when there is no bridge or an attempt is already in flight.
func (s *Session) Begin() bool {
	if s.bridge == nil || s.Phase == Connecting {
		return false
	}
	s.lastGood = s.Phase
	s.lastErr = nil
	s.Phase = Connecting
	return true
}

// Authorized stores the first authorized account as the active one
func (s *Session) Authorized(accounts []string) error {
	if s.Phase != Connecting {
		return errors.Errorf("authorization outside a connect attempt (phase %s)", s.Phase)
	}
	if len(accounts) == 0 || accounts[0] == "" {
		s.Fail(ErrNoAccounts)
		return ErrNoAccounts
	}
	s.account = accounts[0]
	return nil
}

// BalanceLoaded stores the balance of the active account and completes the attempt
func (s *Session) BalanceLoaded(wei *big.Int) {
	if s.Phase != Connecting || s.account == "" {
		return
	}
	s.balance = helpers.FormatEther(wei)
	s.Phase = Connected
}

// Fail ends the current attempt. Account and balance keep their prior values.
func (s *Session) Fail(err error) {
	if s.Phase != Connecting {
		return
	}
	s.lastErr = err
	s.Phase = ConnectionFailed
}

// LastGood is the phase that preceded the most recent attempt
func (s *Session) LastGood() Phase { return s.lastGood }

// Err is the error of the most recent failed attempt
func (s *Session) Err() error { return s.lastErr }

// Account returns the connected account, or "" when none
func (s *Session) Account() string { return s.account }

// Balance returns the displayed balance, or "" when none
func (s *Session) Balance() string { return s.balance }

// IsConnected reports whether an account has been authorized
func (s *Session) IsConnected() bool { return s.account != "" }

// InFlight reports whether a connect attempt is running
func (s *Session) InFlight() bool { return s.Phase == Connecting }

// ShowBalance reports whether the balance panel should be rendered
func (s *Session) ShowBalance() bool {
	return s.account != "" && s.balance != ""
}

// ButtonLabel is the connect button text for the current state
func (s *Session) ButtonLabel() string {
	if s.account == "" {
		return "Connect with MetaMask"
	}
	return "Connected: " + helpers.ShortenAddr(s.account)
}
