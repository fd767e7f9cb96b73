package packages

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func testPrivateKey(t *testing.T) string {
	t.Helper()
	key, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return key.String()
}

func TestNewClientValidation(t *testing.T) {
	key := testPrivateKey(t)

	if _, err := NewClient(ClientConfig{PrivateKey: key, Network: "testnet"}); err == nil {
		t.Fatalf("expected error for missing account ID")
	}
	if _, err := NewClient(ClientConfig{AccountID: "0.0.1234", Network: "testnet"}); err == nil {
		t.Fatalf("expected error for missing private key")
	}
	if _, err := NewClient(ClientConfig{AccountID: "0.0.1234", PrivateKey: key, Network: "lavanet"}); err == nil {
		t.Fatalf("expected error for unknown network")
	}
	if _, err := NewClient(ClientConfig{AccountID: "not-an-id", PrivateKey: key, Network: "testnet"}); err == nil {
		t.Fatalf("expected error for malformed account ID")
	}

	client, err := NewClient(ClientConfig{AccountID: "0.0.1234", PrivateKey: key, Network: "testnet"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if client.publisherID.String() != "0.0.1234" {
		t.Fatalf("unexpected publisher ID %s", client.publisherID.String())
	}
}

func TestResolveBytecodeRequiresInput(t *testing.T) {
	if _, err := resolveBytecode(PublishOptions{}); err == nil {
		t.Fatalf("expected error when no bytecode is provided")
	}
}

func TestResolveBytecodeHexString(t *testing.T) {
	resolved, err := resolveBytecode(PublishOptions{Bytecode: []byte("0x6080604052\n")})
	if err != nil {
		t.Fatalf("resolveBytecode returned error: %v", err)
	}
	if string(resolved) != "6080604052" {
		t.Fatalf("unexpected resolved bytecode %q", resolved)
	}
}

func TestResolveBytecodeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.bin")
	if err := os.WriteFile(path, []byte("6080604052"), 0o600); err != nil {
		t.Fatalf("failed to write bytecode file: %v", err)
	}

	resolved, err := resolveBytecode(PublishOptions{BytecodePath: path})
	if err != nil {
		t.Fatalf("resolveBytecode returned error: %v", err)
	}
	if string(resolved) != "6080604052" {
		t.Fatalf("unexpected resolved bytecode %q", resolved)
	}
}

func TestResolveBytecodeMissingFile(t *testing.T) {
	_, err := resolveBytecode(PublishOptions{BytecodePath: filepath.Join(t.TempDir(), "missing.bin")})
	if err == nil {
		t.Fatalf("expected error for missing bytecode file")
	}
	if !strings.Contains(err.Error(), "failed to read bytecode file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResolveBytecodeRawBytes(t *testing.T) {
	raw := []byte{0x60, 0x80, 0x60, 0x40, 0x52, 0xff}
	resolved, err := resolveBytecode(PublishOptions{Bytecode: raw})
	if err != nil {
		t.Fatalf("resolveBytecode returned error: %v", err)
	}
	// The file uploaded on-ledger carries hex text, so raw binary input
	// must come out hex encoded.
	if !bytes.Equal(resolved, []byte(hex.EncodeToString(raw))) {
		t.Fatalf("unexpected resolved bytecode %q", resolved)
	}
	if string(resolved) != "6080604052ff" {
		t.Fatalf("raw bytecode was not hex encoded")
	}
}
