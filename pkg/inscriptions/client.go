package inscriptions

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/account"
	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/mirror"
	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/shared"
)

// Client creates collections and mints inscription-backed tokens on behalf
// of a single creator account, which pays for and signs every transaction.
type Client struct {
	ledgerClient *hedera.Client
	mirrorClient *mirror.Client
	creatorID    hedera.AccountID
	creatorKey   hedera.PrivateKey
	network      string
}

// NewClient creates a new Client.
func NewClient(config ClientConfig) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(config.AccountID) == "" {
		return nil, fmt.Errorf("creator account ID is required")
	}
	if strings.TrimSpace(config.PrivateKey) == "" {
		return nil, fmt.Errorf("creator private key is required")
	}

	creatorID, err := hedera.AccountIDFromString(strings.TrimSpace(config.AccountID))
	if err != nil {
		return nil, fmt.Errorf("invalid creator account ID: %w", err)
	}
	creatorKey, err := shared.ParsePrivateKey(config.PrivateKey)
	if err != nil {
		return nil, err
	}

	ledgerClient, err := shared.NewLedgerClient(network)
	if err != nil {
		return nil, err
	}
	ledgerClient.SetOperator(creatorID, creatorKey)

	mirrorClient, err := mirror.NewClient(mirror.Config{
		Network: network,
		BaseURL: config.MirrorBaseURL,
		APIKey:  config.MirrorAPIKey,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		ledgerClient: ledgerClient,
		mirrorClient: mirrorClient,
		creatorID:    creatorID,
		creatorKey:   creatorKey,
		network:      network,
	}, nil
}

// NewClientForAccount creates a Client for a generated account that has
// already been funded and therefore has an account ID.
func NewClientForAccount(creator *account.Account, network string, mirrorBaseURL string) (*Client, error) {
	if creator == nil {
		return nil, fmt.Errorf("creator account is required")
	}
	if creator.AccountID == nil {
		return nil, fmt.Errorf("creator account has no account ID; fund it first")
	}

	return NewClient(ClientConfig{
		AccountID:     creator.AccountID.String(),
		PrivateKey:    creator.PrivateKey.String(),
		Network:       network,
		MirrorBaseURL: mirrorBaseURL,
	})
}

// MirrorClient returns the mirror node client used for readback.
func (c *Client) MirrorClient() *mirror.Client {
	return c.mirrorClient
}

// CreateCollection creates the non-fungible collection that minted
// inscriptions belong to.
func (c *Client) CreateCollection(
	ctx context.Context,
	options CollectionOptions,
) (CollectionResult, error) {
	transaction, err := BuildCollectionCreateTx(options, c.creatorID, c.creatorKey.PublicKey())
	if err != nil {
		return CollectionResult{}, err
	}

	response, err := transaction.Execute(c.ledgerClient)
	if err != nil {
		return CollectionResult{}, fmt.Errorf("failed to execute collection create transaction: %w", err)
	}

	receipt, err := response.GetReceipt(c.ledgerClient)
	if err != nil {
		return CollectionResult{}, fmt.Errorf("failed to get collection create receipt: %w", err)
	}
	if receipt.Status.String() != "SUCCESS" {
		return CollectionResult{}, fmt.Errorf("collection create failed with status %s", receipt.Status.String())
	}
	if receipt.TokenID == nil {
		return CollectionResult{}, fmt.Errorf("token ID missing in collection create receipt")
	}

	return CollectionResult{
		TokenID:       receipt.TokenID.String(),
		TransactionID: response.TransactionID.String(),
	}, nil
}

// MintToken inscribes the payload to a fresh topic and mints one serial
// whose metadata references it. The returned transaction ID is the mint's,
// which is the transaction whose cost the evaluator reports.
func (c *Client) MintToken(ctx context.Context, options MintOptions) (MintResult, error) {
	if strings.TrimSpace(options.CollectionTokenID) == "" {
		return MintResult{}, fmt.Errorf("collection token ID is required")
	}

	chunks, memo, err := EncodePayload(options.Data, EnvelopeMeta{
		Name:        options.Name,
		Description: options.Description,
		URI:         options.URI,
		MimeType:    options.MimeType,
	})
	if err != nil {
		return MintResult{}, err
	}

	topicID, err := c.createInscriptionTopic(memo)
	if err != nil {
		return MintResult{}, err
	}

	for index, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return MintResult{}, err
		}
		if err := c.submitChunk(topicID, chunk); err != nil {
			return MintResult{}, fmt.Errorf("failed to submit chunk %d of %d: %w", index+1, len(chunks), err)
		}
	}

	mintTx, err := BuildMintWithReferenceTx(options.CollectionTokenID, topicID.String(), "")
	if err != nil {
		return MintResult{}, err
	}

	response, err := mintTx.Execute(c.ledgerClient)
	if err != nil {
		return MintResult{}, fmt.Errorf("failed to execute mint transaction: %w", err)
	}

	receipt, err := response.GetReceipt(c.ledgerClient)
	if err != nil {
		return MintResult{}, fmt.Errorf("failed to get mint receipt: %w", err)
	}
	if receipt.Status.String() != "SUCCESS" {
		return MintResult{}, fmt.Errorf("mint failed with status %s", receipt.Status.String())
	}

	serial := int64(0)
	if len(receipt.SerialNumbers) > 0 {
		serial = receipt.SerialNumbers[0]
	}

	return MintResult{
		SerialNumber:  serial,
		TopicID:       topicID.String(),
		TransactionID: response.TransactionID.String(),
		Reference:     BuildReference(topicID.String()),
		MessageCount:  len(chunks),
	}, nil
}

// GetInscription reads an inscription back from its topic through the
// mirror node and verifies its checksum.
func (c *Client) GetInscription(ctx context.Context, topicID string) (Inscription, error) {
	if strings.TrimSpace(topicID) == "" {
		return Inscription{}, fmt.Errorf("topic ID is required")
	}

	topicInfo, err := c.mirrorClient.GetTopicInfo(ctx, topicID)
	if err != nil {
		return Inscription{}, err
	}

	messages, err := c.mirrorClient.GetTopicMessages(ctx, topicID, mirror.MessageQueryOptions{Order: "asc"})
	if err != nil {
		return Inscription{}, err
	}

	raw := make([][]byte, 0, len(messages))
	for _, message := range messages {
		payload, decodeErr := mirror.DecodeMessageData(message)
		if decodeErr != nil {
			return Inscription{}, decodeErr
		}
		raw = append(raw, payload)
	}

	data, meta, err := DecodePayload(raw, topicInfo.Memo)
	if err != nil {
		return Inscription{}, err
	}

	digest := sha256.Sum256(data)

	return Inscription{
		TopicID:  topicID,
		Data:     data,
		Meta:     meta,
		Checksum: hex.EncodeToString(digest[:]),
	}, nil
}

func (c *Client) createInscriptionTopic(memo string) (hedera.TopicID, error) {
	transaction := BuildInscriptionTopicTx(memo, c.creatorKey.PublicKey())

	response, err := transaction.Execute(c.ledgerClient)
	if err != nil {
		return hedera.TopicID{}, fmt.Errorf("failed to execute topic create transaction: %w", err)
	}

	receipt, err := response.GetReceipt(c.ledgerClient)
	if err != nil {
		return hedera.TopicID{}, fmt.Errorf("failed to get topic create receipt: %w", err)
	}
	if receipt.Status.String() != "SUCCESS" {
		return hedera.TopicID{}, fmt.Errorf("topic create failed with status %s", receipt.Status.String())
	}
	if receipt.TopicID == nil {
		return hedera.TopicID{}, fmt.Errorf("topic ID missing in topic create receipt")
	}

	return *receipt.TopicID, nil
}

func (c *Client) submitChunk(topicID hedera.TopicID, chunk []byte) error {
	response, err := BuildChunkSubmitTx(topicID, chunk).Execute(c.ledgerClient)
	if err != nil {
		return fmt.Errorf("failed to execute message submit transaction: %w", err)
	}

	receipt, err := response.GetReceipt(c.ledgerClient)
	if err != nil {
		return fmt.Errorf("failed to get message submit receipt: %w", err)
	}
	if receipt.Status.String() != "SUCCESS" {
		return fmt.Errorf("message submit failed with status %s", receipt.Status.String())
	}

	return nil
}
