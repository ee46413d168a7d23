package main

import (
	"math/big"

	"metamask-connect-tui/rpc"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// bridgeDetectedMsg contains the result of the one-time wallet bridge detection
type bridgeDetectedMsg struct {
	bridge rpc.Bridge
	err    error
}

// accountsAuthorizedMsg contains the accounts the wallet authorized
type accountsAuthorizedMsg struct {
	accounts []string
	err      error
}

// balanceLoadedMsg contains the native balance of an account in wei
type balanceLoadedMsg struct {
	account string
	wei     *big.Int
	err     error
}

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct{}

// clearCopiedMsg clears the clipboard feedback
type clearCopiedMsg struct{}
