package shared

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	NetworkMainnet    = "mainnet"
	NetworkTestnet    = "testnet"
	NetworkPreviewnet = "previewnet"
)

// NormalizeNetwork maps a user-supplied network name onto one of the
// supported network identifiers. An empty value defaults to testnet.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkTestnet, nil
	}

	switch normalized {
	case NetworkMainnet, NetworkTestnet, NetworkPreviewnet:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// NewLedgerClient returns a Hedera client preconfigured for the given network.
func NewLedgerClient(network string) (*hedera.Client, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return nil, err
	}

	switch normalized {
	case NetworkMainnet:
		return hedera.ClientForMainnet(), nil
	case NetworkPreviewnet:
		return hedera.ClientForPreviewnet(), nil
	default:
		return hedera.ClientForTestnet(), nil
	}
}

// DefaultMirrorBaseURL returns the public mirror node REST endpoint for the
// given network.
func DefaultMirrorBaseURL(network string) (string, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return "", err
	}

	switch normalized {
	case NetworkMainnet:
		return "https://mainnet-public.mirrornode.hedera.com", nil
	case NetworkPreviewnet:
		return "https://previewnet.mirrornode.hedera.com", nil
	default:
		return "https://testnet.mirrornode.hedera.com", nil
	}
}

// DefaultFaucetBaseURL returns the public faucet endpoint for the given
// network, or an empty string for networks without one. Mainnet has no
// faucet; funding there always goes through an operator account.
func DefaultFaucetBaseURL(network string) (string, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return "", err
	}

	switch normalized {
	case NetworkTestnet:
		return "https://faucet.testnet.hedera.com", nil
	case NetworkPreviewnet:
		return "https://faucet.previewnet.hedera.com", nil
	default:
		return "", nil
	}
}
