package rpc

import (
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// ErrBridgeUnavailable is returned by Detect when no wallet bridge can be reached.
var ErrBridgeUnavailable = errors.New("wallet bridge unavailable")

// Bridge is the capability surface the connect flow needs from a wallet.
type Bridge interface {
	// RequestAccounts asks the wallet to authorize account access.
	// It may block until the user answers the wallet prompt.
	RequestAccounts(ctx context.Context) ([]string, error)
	// GetBalance returns the native balance of account in wei.
	GetBalance(ctx context.Context, account string) (*big.Int, error)
}

// Provider wraps an Ethereum JSON-RPC connection to a wallet bridge
type Provider struct {
	URL string

	rpc   *gethrpc.Client
	eth   *ethclient.Client
	group singleflight.Group
}

// Detect looks for a wallet bridge at url and wraps it in a Provider
func Detect(url string) (*Provider, error) {
	return DetectWithTimeout(url, 8*time.Second)
}

// DetectWithTimeout is Detect with a custom dial timeout
func DetectWithTimeout(url string, timeout time.Duration) (*Provider, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrBridgeUnavailable
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c, err := gethrpc.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(ErrBridgeUnavailable, "dial %s: %v", url, err)
	}

	// http dials are lazy; one round trip proves something answers
	var chainID string
	if err := c.CallContext(ctx, &chainID, "eth_chainId"); err != nil {
		c.Close()
		return nil, errors.Wrapf(ErrBridgeUnavailable, "eth_chainId %s: %v", url, err)
	}

	return &Provider{
		URL: url,
		rpc: c,
		eth: ethclient.NewClient(c),
	}, nil
}

// RequestAccounts calls eth_requestAccounts. Concurrent callers share one
// in-flight request so the wallet prompt is only raised once.
func (p *Provider) RequestAccounts(ctx context.Context) ([]string, error) {
	v, err, _ := p.group.Do("eth_requestAccounts", func() (interface{}, error) {
		var accounts []string
		if err := p.rpc.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
			return nil, errors.Wrap(err, "eth_requestAccounts")
		}
		return accounts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// GetBalance calls eth_getBalance for account at the latest block
func (p *Provider) GetBalance(ctx context.Context, account string) (*big.Int, error) {
	if !common.IsHexAddress(account) {
		return nil, errors.Errorf("invalid account address %q", account)
	}
	wei, err := p.eth.BalanceAt(ctx, common.HexToAddress(account), nil)
	if err != nil {
		return nil, errors.Wrap(err, "eth_getBalance")
	}
	return wei, nil
}

// Close releases the underlying connection
func (p *Provider) Close() {
	if p != nil && p.rpc != nil {
		p.rpc.Close()
	}
}
