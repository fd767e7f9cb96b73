package packages

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/shared"
)

// fileChunkSize is the largest contents slice accepted by a single file
// create or append transaction.
const fileChunkSize = 4096

const defaultCreateGas = 300000

type ClientConfig struct {
	AccountID  string
	PrivateKey string
	Network    string
}

// Client publishes contract packages on behalf of a single publisher
// account.
type Client struct {
	ledgerClient *hedera.Client
	publisherID  hedera.AccountID
	publisherKey hedera.PrivateKey
}

type PublishOptions struct {
	// BytecodePath points at a compiled bytecode file, either raw bytes
	// or a hex string as emitted by solc. Bytecode takes precedence when
	// both are set.
	BytecodePath string
	Bytecode     []byte

	Gas                   int64
	ConstructorParameters *hedera.ContractFunctionParameters
	Memo                  string
}

type PublishResult struct {
	FileID        string
	ContractID    string
	TransactionID string
}

// NewClient creates a new Client.
func NewClient(config ClientConfig) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(config.AccountID) == "" {
		return nil, fmt.Errorf("publisher account ID is required")
	}
	if strings.TrimSpace(config.PrivateKey) == "" {
		return nil, fmt.Errorf("publisher private key is required")
	}

	publisherID, err := hedera.AccountIDFromString(strings.TrimSpace(config.AccountID))
	if err != nil {
		return nil, fmt.Errorf("invalid publisher account ID: %w", err)
	}
	publisherKey, err := shared.ParsePrivateKey(config.PrivateKey)
	if err != nil {
		return nil, err
	}

	ledgerClient, err := shared.NewLedgerClient(network)
	if err != nil {
		return nil, err
	}
	ledgerClient.SetOperator(publisherID, publisherKey)

	return &Client{
		ledgerClient: ledgerClient,
		publisherID:  publisherID,
		publisherKey: publisherKey,
	}, nil
}

// Publish uploads the package bytecode through file transactions and
// executes the contract create. The returned transaction ID belongs to the
// contract create; its gas usage is queryable through the mirror node's
// contract results.
func (c *Client) Publish(ctx context.Context, options PublishOptions) (PublishResult, error) {
	bytecode, err := resolveBytecode(options)
	if err != nil {
		return PublishResult{}, err
	}

	fileID, err := c.uploadBytecode(ctx, bytecode)
	if err != nil {
		return PublishResult{}, err
	}

	gas := options.Gas
	if gas <= 0 {
		gas = defaultCreateGas
	}

	transaction := hedera.NewContractCreateTransaction().
		SetBytecodeFileID(fileID).
		SetGas(uint64(gas))
	if options.ConstructorParameters != nil {
		transaction.SetConstructorParameters(options.ConstructorParameters)
	}
	if strings.TrimSpace(options.Memo) != "" {
		transaction.SetContractMemo(strings.TrimSpace(options.Memo))
	}

	response, err := transaction.Execute(c.ledgerClient)
	if err != nil {
		return PublishResult{}, fmt.Errorf("failed to execute contract create transaction: %w", err)
	}

	receipt, err := response.GetReceipt(c.ledgerClient)
	if err != nil {
		return PublishResult{}, fmt.Errorf("failed to get contract create receipt: %w", err)
	}
	if receipt.Status.String() != "SUCCESS" {
		return PublishResult{}, fmt.Errorf("contract create failed with status %s", receipt.Status.String())
	}
	if receipt.ContractID == nil {
		return PublishResult{}, fmt.Errorf("contract ID missing in contract create receipt")
	}

	return PublishResult{
		FileID:        fileID.String(),
		ContractID:    receipt.ContractID.String(),
		TransactionID: response.TransactionID.String(),
	}, nil
}

func (c *Client) uploadBytecode(ctx context.Context, bytecode []byte) (hedera.FileID, error) {
	first := bytecode
	if len(first) > fileChunkSize {
		first = bytecode[:fileChunkSize]
	}

	createResponse, err := hedera.NewFileCreateTransaction().
		SetKeys(c.publisherKey.PublicKey()).
		SetContents(first).
		Execute(c.ledgerClient)
	if err != nil {
		return hedera.FileID{}, fmt.Errorf("failed to execute file create transaction: %w", err)
	}

	createReceipt, err := createResponse.GetReceipt(c.ledgerClient)
	if err != nil {
		return hedera.FileID{}, fmt.Errorf("failed to get file create receipt: %w", err)
	}
	if createReceipt.FileID == nil {
		return hedera.FileID{}, fmt.Errorf("file ID missing in file create receipt")
	}
	fileID := *createReceipt.FileID

	for offset := fileChunkSize; offset < len(bytecode); offset += fileChunkSize {
		if err := ctx.Err(); err != nil {
			return hedera.FileID{}, err
		}

		end := offset + fileChunkSize
		if end > len(bytecode) {
			end = len(bytecode)
		}

		appendResponse, appendErr := hedera.NewFileAppendTransaction().
			SetFileID(fileID).
			SetContents(bytecode[offset:end]).
			Execute(c.ledgerClient)
		if appendErr != nil {
			return hedera.FileID{}, fmt.Errorf("failed to execute file append transaction: %w", appendErr)
		}
		if _, receiptErr := appendResponse.GetReceipt(c.ledgerClient); receiptErr != nil {
			return hedera.FileID{}, fmt.Errorf("failed to get file append receipt: %w", receiptErr)
		}
	}

	return fileID, nil
}

func resolveBytecode(options PublishOptions) ([]byte, error) {
	raw := options.Bytecode
	if len(raw) == 0 {
		if strings.TrimSpace(options.BytecodePath) == "" {
			return nil, fmt.Errorf("either bytecode or a bytecode path is required")
		}
		loaded, err := os.ReadFile(options.BytecodePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read bytecode file: %w", err)
		}
		raw = loaded
	}

	// The uploaded file must carry the bytecode as hex text, which is what
	// the contract create consumes. solc output passes through with its
	// optional 0x prefix stripped; raw binary input gets hex encoded.
	trimmed := strings.TrimSpace(string(raw))
	withoutPrefix := strings.TrimPrefix(trimmed, "0x")
	if decoded, err := hex.DecodeString(withoutPrefix); err == nil && len(decoded) > 0 {
		return []byte(withoutPrefix), nil
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("bytecode is empty")
	}

	return []byte(hex.EncodeToString(raw)), nil
}
