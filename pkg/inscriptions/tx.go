package inscriptions

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const defaultCollectionSymbol = "INSC"

// BuildReference returns the on-ledger reference stored as token metadata
// for an inscription topic.
func BuildReference(topicID string) string {
	return "hcs://1/" + topicID
}

// BuildCollectionCreateTx builds the non-fungible token create transaction
// backing a collection. The treasury account also holds the supply and
// admin keys.
func BuildCollectionCreateTx(
	options CollectionOptions,
	treasury hedera.AccountID,
	controlKey hedera.PublicKey,
) (*hedera.TokenCreateTransaction, error) {
	name := strings.TrimSpace(options.Name)
	if name == "" {
		return nil, fmt.Errorf("collection name is required")
	}
	if options.MaxSupply <= 0 {
		return nil, fmt.Errorf("collection max supply must be positive")
	}
	if len(options.Description) > 100 {
		return nil, fmt.Errorf("collection description cannot exceed 100 bytes")
	}

	symbol := strings.TrimSpace(options.Symbol)
	if symbol == "" {
		symbol = defaultCollectionSymbol
	}

	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(name).
		SetTokenSymbol(symbol).
		SetTokenType(hedera.TokenTypeNonFungibleUnique).
		SetSupplyType(hedera.TokenSupplyTypeFinite).
		SetMaxSupply(options.MaxSupply).
		SetTreasuryAccountID(treasury).
		SetSupplyKey(controlKey).
		SetAdminKey(controlKey)

	if strings.TrimSpace(options.Description) != "" {
		transaction.SetTokenMemo(strings.TrimSpace(options.Description))
	}

	if options.RoyaltyNumerator > 0 {
		if options.RoyaltyDenominator <= 0 {
			return nil, fmt.Errorf("royalty denominator must be positive")
		}

		payee := treasury
		if strings.TrimSpace(options.RoyaltyPayee) != "" {
			parsed, err := hedera.AccountIDFromString(strings.TrimSpace(options.RoyaltyPayee))
			if err != nil {
				return nil, fmt.Errorf("invalid royalty payee: %w", err)
			}
			payee = parsed
		}

		royalty := hedera.NewCustomRoyaltyFee().
			SetNumerator(options.RoyaltyNumerator).
			SetDenominator(options.RoyaltyDenominator).
			SetFeeCollectorAccountID(payee)
		transaction.SetCustomFees([]hedera.Fee{royalty})
	}

	return transaction, nil
}

// BuildInscriptionTopicTx builds the topic create transaction for a new
// inscription. The memo carries the payload checksum and format.
func BuildInscriptionTopicTx(memo string, controlKey hedera.PublicKey) *hedera.TopicCreateTransaction {
	return hedera.NewTopicCreateTransaction().
		SetTopicMemo(memo).
		SetAdminKey(controlKey).
		SetSubmitKey(controlKey)
}

// BuildChunkSubmitTx builds the message submit transaction for one payload
// chunk.
func BuildChunkSubmitTx(topicID hedera.TopicID, message []byte) *hedera.TopicMessageSubmitTransaction {
	return hedera.NewTopicMessageSubmitTransaction().
		SetTopicID(topicID).
		SetMessage(message)
}

// BuildMintWithReferenceTx builds the mint transaction whose metadata points
// at an inscription topic.
func BuildMintWithReferenceTx(
	collectionTokenID string,
	topicID string,
	transactionMemo string,
) (*hedera.TokenMintTransaction, error) {
	trimmedTokenID := strings.TrimSpace(collectionTokenID)
	if trimmedTokenID == "" {
		return nil, fmt.Errorf("collection token ID is required")
	}
	parsedTokenID, err := hedera.TokenIDFromString(trimmedTokenID)
	if err != nil {
		return nil, fmt.Errorf("invalid collection token ID: %w", err)
	}
	trimmedTopicID := strings.TrimSpace(topicID)
	if trimmedTopicID == "" {
		return nil, fmt.Errorf("inscription topic ID is required")
	}

	transaction := hedera.NewTokenMintTransaction().
		SetTokenID(parsedTokenID).
		SetMetadata([]byte(BuildReference(trimmedTopicID)))

	if strings.TrimSpace(transactionMemo) != "" {
		transaction.SetTransactionMemo(transactionMemo)
	}

	return transaction, nil
}
