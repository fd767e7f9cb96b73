package faucet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/account"
	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/mirror"
)

type stubFunder struct {
	result FundResult
	err    error
	calls  int
}

func (s *stubFunder) Fund(ctx context.Context, target *account.Account, tinybar int64) (FundResult, error) {
	s.calls++
	return s.result, s.err
}

func newMirrorClient(t *testing.T, baseURL string) *mirror.Client {
	t.Helper()
	client, err := mirror.NewClient(mirror.Config{Network: "testnet", BaseURL: baseURL})
	if err != nil {
		t.Fatalf("failed to create mirror client: %v", err)
	}
	return client
}

func TestFundAccountConfirmsThroughMirror(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 2 {
			http.Error(w, "{}", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"account": "0.0.8888",
			"balance": map[string]any{"balance": 1000000000},
		})
	}))
	defer server.Close()

	target, err := account.GenerateECDSA()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	funder := &stubFunder{result: FundResult{TransactionID: "0.0.2@1-1"}}
	result, err := FundAccount(
		context.Background(),
		funder,
		newMirrorClient(t, server.URL),
		target,
		1000000000,
		ConfirmOptions{MaxAttempts: 5, Interval: time.Millisecond},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if funder.calls != 1 {
		t.Fatalf("expected one funder call, got %d", funder.calls)
	}
	if result.AccountID != "0.0.8888" {
		t.Fatalf("unexpected account ID: %s", result.AccountID)
	}
	if target.AccountID == nil || target.AccountID.String() != "0.0.8888" {
		t.Fatal("expected resolved account ID to be recorded on the target")
	}
}

func TestFundAccountRejectsNonPositiveAmount(t *testing.T) {
	target, err := account.GenerateECDSA()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = FundAccount(
		context.Background(),
		&stubFunder{},
		newMirrorClient(t, "https://mirror.invalid"),
		target,
		0,
		ConfirmOptions{},
	)
	if err == nil {
		t.Fatal("expected error for non-positive amount")
	}
}

func TestFundAccountGivesUp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "{}", http.StatusNotFound)
	}))
	defer server.Close()

	target, err := account.GenerateECDSA()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = FundAccount(
		context.Background(),
		&stubFunder{},
		newMirrorClient(t, server.URL),
		target,
		100,
		ConfirmOptions{MaxAttempts: 2, Interval: time.Millisecond},
	)
	if err == nil {
		t.Fatal("expected error when the balance never appears")
	}
}

func TestHTTPFaucetFund(t *testing.T) {
	target, err := account.GenerateECDSA()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/fund" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var request struct {
			Address string `json:"address"`
			Amount  int64  `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if request.Address != target.EvmAddress {
			t.Fatalf("unexpected address: %s", request.Address)
		}
		if request.Amount != 1000000000 {
			t.Fatalf("unexpected amount: %d", request.Amount)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"transactionId": "0.0.2-1700000000-000000001",
			"accountId":     "0.0.8888",
		})
	}))
	defer server.Close()

	client, err := NewHTTPFaucet(HTTPConfig{Network: "testnet", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := client.Fund(context.Background(), target, 1000000000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TransactionID != "0.0.2-1700000000-000000001" {
		t.Fatalf("unexpected transaction ID: %s", result.TransactionID)
	}
	if result.AccountID != "0.0.8888" {
		t.Fatalf("unexpected account ID: %s", result.AccountID)
	}
}

func TestHTTPFaucetRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "try again later", http.StatusTooManyRequests)
	}))
	defer server.Close()

	target, err := account.GenerateECDSA()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client, err := NewHTTPFaucet(HTTPConfig{Network: "testnet", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Fund(context.Background(), target, 100); err == nil {
		t.Fatal("expected rate limit error")
	}
}

func TestHTTPFaucetRejectsErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "daily limit reached"})
	}))
	defer server.Close()

	target, err := account.GenerateECDSA()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client, err := NewHTTPFaucet(HTTPConfig{Network: "testnet", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Fund(context.Background(), target, 100); err == nil {
		t.Fatal("expected error from faucet error body")
	}
}

func TestNewHTTPFaucetMainnetWithoutURL(t *testing.T) {
	if _, err := NewHTTPFaucet(HTTPConfig{Network: "mainnet"}); err == nil {
		t.Fatal("expected error for mainnet without a faucet URL")
	}
}

func TestNewHTTPFaucetDefaultTestnetURL(t *testing.T) {
	client, err := NewHTTPFaucet(HTTPConfig{Network: "testnet"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.BaseURL() != "https://faucet.testnet.hedera.com" {
		t.Fatalf("unexpected base URL: %s", client.BaseURL())
	}
}

func TestHTTPFaucetFundWithoutIdentifier(t *testing.T) {
	target, err := account.GenerateED25519()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client, err := NewHTTPFaucet(HTTPConfig{Network: "testnet", BaseURL: "https://faucet.example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Fund(context.Background(), target, 100); err == nil {
		t.Fatal("expected error for ED25519 account without account ID")
	}
}
