package faucet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/account"
	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/shared"
)

type HTTPConfig struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
}

// HTTPFaucet requests funding from a faucet service over REST.
type HTTPFaucet struct {
	baseURL    string
	httpClient *http.Client
}

type fundRequest struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount,omitempty"`
}

type fundResponse struct {
	TransactionID string `json:"transactionId"`
	AccountID     string `json:"accountId"`
	Error         string `json:"error"`
	Message       string `json:"message"`
}

// NewHTTPFaucet creates a new HTTPFaucet. With no BaseURL the network's
// public faucet endpoint is used; mainnet has none and is rejected.
func NewHTTPFaucet(config HTTPConfig) (*HTTPFaucet, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL, err = shared.DefaultFaucetBaseURL(network)
		if err != nil {
			return nil, err
		}
		if baseURL == "" {
			return nil, fmt.Errorf("network %s has no public faucet; configure a faucet URL or use an operator funder", network)
		}
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid faucet base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid faucet base URL: scheme must be http or https")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &HTTPFaucet{
		baseURL:    strings.TrimRight(parsedBaseURL.String(), "/"),
		httpClient: httpClient,
	}, nil
}

// BaseURL returns the resolved faucet base URL.
func (f *HTTPFaucet) BaseURL() string {
	return f.baseURL
}

// Fund requests a faucet credit for the target account. ECDSA accounts are
// funded through their EVM alias, ED25519 accounts need an account ID
// already (public faucets cannot credit a bare ED25519 key).
func (f *HTTPFaucet) Fund(
	ctx context.Context,
	target *account.Account,
	tinybar int64,
) (FundResult, error) {
	identifier, err := target.Identifier()
	if err != nil {
		return FundResult{}, fmt.Errorf("faucet funding requires an EVM alias or account ID: %w", err)
	}

	payload, err := json.Marshal(fundRequest{Address: identifier, Amount: tinybar})
	if err != nil {
		return FundResult{}, fmt.Errorf("failed to marshal faucet request: %w", err)
	}

	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		f.baseURL+"/api/v1/fund",
		bytes.NewReader(payload),
	)
	if err != nil {
		return FundResult{}, fmt.Errorf("failed to create faucet request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := f.httpClient.Do(request)
	if err != nil {
		return FundResult{}, fmt.Errorf("faucet request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return FundResult{}, fmt.Errorf("failed to read faucet response: %w", err)
	}

	if response.StatusCode == http.StatusTooManyRequests {
		return FundResult{}, fmt.Errorf("faucet rate limit reached: %s", strings.TrimSpace(string(body)))
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return FundResult{}, fmt.Errorf(
			"faucet request failed with status %d: %s",
			response.StatusCode,
			strings.TrimSpace(string(body)),
		)
	}

	var decoded fundResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return FundResult{}, fmt.Errorf("failed to decode faucet response: %w", err)
	}
	if decoded.Error != "" {
		return FundResult{}, fmt.Errorf("faucet rejected the request: %s", decoded.Error)
	}

	return FundResult{
		TransactionID: decoded.TransactionID,
		AccountID:     decoded.AccountID,
	}, nil
}
