package inscriptions

import (
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func testKey(t *testing.T) hedera.PrivateKey {
	t.Helper()
	key, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return key
}

func TestBuildReference(t *testing.T) {
	reference := BuildReference("0.0.123456")
	if reference != "hcs://1/0.0.123456" {
		t.Fatalf("unexpected reference: %s", reference)
	}
}

func TestBuildCollectionCreateTx(t *testing.T) {
	treasury, err := hedera.AccountIDFromString("0.0.1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transaction, err := BuildCollectionCreateTx(CollectionOptions{
		Name:        "Immutable Inscriptions Demo",
		Description: "Behold the power of inscriptions",
		MaxSupply:   100,
	}, treasury, testKey(t).PublicKey())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if transaction.GetTokenName() != "Immutable Inscriptions Demo" {
		t.Fatalf("unexpected token name: %s", transaction.GetTokenName())
	}
	if transaction.GetTokenSymbol() != defaultCollectionSymbol {
		t.Fatalf("unexpected symbol: %s", transaction.GetTokenSymbol())
	}
	if transaction.GetTokenType() != hedera.TokenTypeNonFungibleUnique {
		t.Fatal("expected a non-fungible token")
	}
	if transaction.GetMaxSupply() != 100 {
		t.Fatalf("unexpected max supply: %d", transaction.GetMaxSupply())
	}
	if transaction.GetTokenMemo() != "Behold the power of inscriptions" {
		t.Fatalf("unexpected memo: %s", transaction.GetTokenMemo())
	}
	if len(transaction.GetCustomFees()) != 0 {
		t.Fatal("expected no royalty fees by default")
	}
}

func TestBuildCollectionCreateTxWithRoyalty(t *testing.T) {
	treasury, err := hedera.AccountIDFromString("0.0.1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transaction, err := BuildCollectionCreateTx(CollectionOptions{
		Name:               "Royal",
		MaxSupply:          10,
		RoyaltyNumerator:   1,
		RoyaltyDenominator: 20,
	}, treasury, testKey(t).PublicKey())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transaction.GetCustomFees()) != 1 {
		t.Fatalf("expected one royalty fee, got %d", len(transaction.GetCustomFees()))
	}
}

func TestBuildCollectionCreateTxValidation(t *testing.T) {
	treasury, err := hedera.AccountIDFromString("0.0.1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key := testKey(t).PublicKey()

	if _, err := BuildCollectionCreateTx(CollectionOptions{MaxSupply: 10}, treasury, key); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := BuildCollectionCreateTx(CollectionOptions{Name: "x"}, treasury, key); err == nil {
		t.Fatal("expected error for non-positive max supply")
	}
	if _, err := BuildCollectionCreateTx(CollectionOptions{
		Name:             "x",
		MaxSupply:        10,
		RoyaltyNumerator: 1,
	}, treasury, key); err == nil {
		t.Fatal("expected error for royalty without denominator")
	}
	if _, err := BuildCollectionCreateTx(CollectionOptions{
		Name:               "x",
		MaxSupply:          10,
		RoyaltyNumerator:   1,
		RoyaltyDenominator: 10,
		RoyaltyPayee:       "not-an-account",
	}, treasury, key); err == nil {
		t.Fatal("expected error for invalid royalty payee")
	}
}

func TestBuildInscriptionTopicTx(t *testing.T) {
	transaction := BuildInscriptionTopicTx("abc:brotli:base64", testKey(t).PublicKey())
	if transaction.GetTopicMemo() != "abc:brotli:base64" {
		t.Fatalf("unexpected topic memo: %s", transaction.GetTopicMemo())
	}
}

func TestBuildMintWithReferenceTx(t *testing.T) {
	transaction, err := BuildMintWithReferenceTx("0.0.4321", "0.0.123456", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transaction.GetTokenID().String() != "0.0.4321" {
		t.Fatalf("unexpected token ID: %s", transaction.GetTokenID().String())
	}
	metadata := transaction.GetMetadatas()
	if len(metadata) != 1 {
		t.Fatal("expected one metadata entry")
	}
	if string(metadata[0]) != "hcs://1/0.0.123456" {
		t.Fatalf("unexpected metadata: %s", string(metadata[0]))
	}
}

func TestBuildMintWithReferenceTxValidation(t *testing.T) {
	if _, err := BuildMintWithReferenceTx("", "0.0.1", ""); err == nil {
		t.Fatal("expected error for missing token ID")
	}
	if _, err := BuildMintWithReferenceTx("bogus", "0.0.1", ""); err == nil {
		t.Fatal("expected error for invalid token ID")
	}
	if _, err := BuildMintWithReferenceTx("0.0.4321", "  ", ""); err == nil {
		t.Fatal("expected error for missing topic ID")
	}
}
