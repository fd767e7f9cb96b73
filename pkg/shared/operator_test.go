package shared

import (
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func TestOperatorConfigFromEnv(t *testing.T) {
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.1234")
	t.Setenv("HEDERA_PRIVATE_KEY", "302e0201")
	t.Setenv("HEDERA_NETWORK", "testnet")

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.AccountID != "0.0.1234" {
		t.Fatalf("unexpected account ID: %s", config.AccountID)
	}
	if config.PrivateKey != "302e0201" {
		t.Fatalf("unexpected private key: %s", config.PrivateKey)
	}
	if config.Network != "testnet" {
		t.Fatalf("unexpected network: %s", config.Network)
	}
}

func TestOperatorConfigFromEnvFallbackNames(t *testing.T) {
	t.Setenv("HEDERA_ACCOUNT_ID", "")
	t.Setenv("HEDERA_PRIVATE_KEY", "")
	t.Setenv("OPERATOR_ID", "0.0.42")
	t.Setenv("OPERATOR_KEY", "abcd")

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.AccountID != "0.0.42" {
		t.Fatalf("unexpected account ID: %s", config.AccountID)
	}
	if config.Network != NetworkTestnet {
		t.Fatalf("expected testnet default, got %s", config.Network)
	}
}

func TestOperatorConfigFromEnvMissingAccount(t *testing.T) {
	t.Setenv("HEDERA_ACCOUNT_ID", "")
	t.Setenv("HEDERA_OPERATOR_ID", "")
	t.Setenv("OPERATOR_ID", "")
	t.Setenv("HEDERA_PRIVATE_KEY", "abcd")

	if _, err := OperatorConfigFromEnv(); err == nil {
		t.Fatal("expected error for missing account ID")
	}
}

func TestParsePrivateKeyEmpty(t *testing.T) {
	if _, err := ParsePrivateKey("   "); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestParsePrivateKeyGarbage(t *testing.T) {
	if _, err := ParsePrivateKey("not-a-key"); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func TestParsePrivateKeyEd25519(t *testing.T) {
	generated, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	parsed, err := ParsePrivateKey(generated.String())
	if err != nil {
		t.Fatalf("failed to parse generated key: %v", err)
	}
	if parsed.PublicKey().String() != generated.PublicKey().String() {
		t.Fatal("parsed key does not match generated key")
	}
}

func TestParsePrivateKeyECDSA(t *testing.T) {
	generated, err := hedera.PrivateKeyGenerateEcdsa()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	parsed, err := ParsePrivateKey(generated.String())
	if err != nil {
		t.Fatalf("failed to parse generated key: %v", err)
	}
	if parsed.PublicKey().String() != generated.PublicKey().String() {
		t.Fatal("parsed key does not match generated key")
	}
}

func TestIsValidEnvKey(t *testing.T) {
	valid := []string{"HEDERA_ACCOUNT_ID", "a", "KEY_2"}
	for _, key := range valid {
		if !isValidEnvKey(key) {
			t.Fatalf("expected %q to be valid", key)
		}
	}

	invalid := []string{"", "2KEY", "KEY-NAME", "KEY NAME"}
	for _, key := range invalid {
		if isValidEnvKey(key) {
			t.Fatalf("expected %q to be invalid", key)
		}
	}
}
