package account

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"golang.org/x/crypto/sha3"
)

type KeyType string

const (
	KeyTypeED25519 KeyType = "ed25519"
	KeyTypeECDSA   KeyType = "ecdsa"
)

// Account is a locally generated keypair identity. It only gains an
// AccountID once the network has created the account, either through a
// faucet or through an operator-funded account create.
type Account struct {
	PrivateKey hedera.PrivateKey
	KeyType    KeyType

	// EvmAddress is set for ECDSA accounts. Public faucets credit this
	// alias before the account exists on the ledger.
	EvmAddress string

	AccountID *hedera.AccountID
}

// GenerateED25519 creates a new ED25519 account.
func GenerateED25519() (*Account, error) {
	privateKey, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ED25519 key: %w", err)
	}

	return &Account{
		PrivateKey: privateKey,
		KeyType:    KeyTypeED25519,
	}, nil
}

// GenerateECDSA creates a new secp256k1 account with a derived EVM address
// alias.
func GenerateECDSA() (*Account, error) {
	privateKey, err := hedera.PrivateKeyGenerateEcdsa()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ECDSA key: %w", err)
	}

	evmAddress, err := EvmAddressFromPublicKey(privateKey.PublicKey())
	if err != nil {
		return nil, err
	}

	return &Account{
		PrivateKey: privateKey,
		KeyType:    KeyTypeECDSA,
		EvmAddress: evmAddress,
	}, nil
}

// PublicKey returns the account's public key.
func (a *Account) PublicKey() hedera.PublicKey {
	return a.PrivateKey.PublicKey()
}

// SetAccountID records the ledger account ID once it is known.
func (a *Account) SetAccountID(accountID hedera.AccountID) {
	a.AccountID = &accountID
}

// Identifier returns the account ID when known, otherwise the EVM alias.
// The result is usable in mirror node queries either way.
func (a *Account) Identifier() (string, error) {
	if a.AccountID != nil {
		return a.AccountID.String(), nil
	}
	if a.EvmAddress != "" {
		return a.EvmAddress, nil
	}
	return "", fmt.Errorf("account has neither an account ID nor an EVM alias")
}

// EvmAddressFromPublicKey derives the EVM address alias of a secp256k1
// public key: the last 20 bytes of the Keccak-256 digest of the
// uncompressed public key without its 0x04 prefix.
func EvmAddressFromPublicKey(publicKey hedera.PublicKey) (string, error) {
	raw := publicKey.BytesRaw()
	if len(raw) != 33 {
		return "", fmt.Errorf("expected a compressed secp256k1 public key, got %d bytes", len(raw))
	}

	parsed, err := btcec.ParsePubKey(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse secp256k1 public key: %w", err)
	}

	uncompressed := parsed.SerializeUncompressed()

	digest := sha3.NewLegacyKeccak256()
	digest.Write(uncompressed[1:])
	hash := digest.Sum(nil)

	return "0x" + hex.EncodeToString(hash[len(hash)-20:]), nil
}
