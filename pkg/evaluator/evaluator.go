package evaluator

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/account"
	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/faucet"
	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/inscriptions"
	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/mirror"
	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/packages"
	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/shared"
)

const defaultFundAmount = 1_000_000_000

var defaultPayloadSizes = []int{0, 1024, 10 * 1024, 50 * 1024, 62 * 1024}

type Config struct {
	Network       string
	MirrorBaseURL string

	// FaucetBaseURL overrides the network's default faucet endpoint. When
	// Operator is set the faucet is bypassed and the account is created and
	// funded by the operator instead.
	FaucetBaseURL string
	Operator      *shared.OperatorConfig

	// FundAmount is the tinybar amount credited to the fresh account.
	FundAmount int64

	// PayloadSizes are the inscription payload sizes to mint and price,
	// in bytes.
	PayloadSizes []int

	CollectionName        string
	CollectionDescription string
	CollectionSymbol      string
	MaxSupply             int64

	// PackageBytecodePath, when set, publishes the contract package at
	// that path before the collection is created and reports its gas.
	PackageBytecodePath string

	// Output receives the size and cost rows. Defaults to stdout.
	Output io.Writer

	Logger *zerolog.Logger
}

// MintCost is the observed cost of minting one inscription.
type MintCost struct {
	PayloadSize   int
	SerialNumber  int64
	TopicID       string
	Reference     string
	TransactionID string
	MessageCount  int
	CostTinybar   int64
}

// Report summarizes a full evaluation run.
type Report struct {
	Account        string
	EvmAddress     string
	InitialBalance int64

	PackageFileID     string
	PackageContractID string
	PackageGasUsed    int64

	CollectionTokenID string
	CollectionCost    int64
	Mints             []MintCost
	TotalMintCost     int64
}

// Evaluator runs the full demo flow: generate a throwaway account, fund
// it, optionally publish a contract package, create a collection, then
// mint inscriptions of increasing size and report what each mint cost.
type Evaluator struct {
	config Config
	logger zerolog.Logger
	output io.Writer
}

// New creates a new Evaluator.
func New(config Config) (*Evaluator, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}
	config.Network = network

	if config.FundAmount <= 0 {
		config.FundAmount = defaultFundAmount
	}
	if len(config.PayloadSizes) == 0 {
		config.PayloadSizes = append([]int(nil), defaultPayloadSizes...)
	}
	for _, size := range config.PayloadSizes {
		if size < 0 {
			return nil, fmt.Errorf("payload sizes must be non-negative, got %d", size)
		}
	}
	if config.CollectionName == "" {
		config.CollectionName = "Immutable Inscriptions Demo"
	}
	if config.CollectionDescription == "" {
		config.CollectionDescription = "Inscription payloads of increasing size"
	}
	if config.MaxSupply <= 0 {
		config.MaxSupply = 100
	}

	output := config.Output
	if output == nil {
		output = os.Stdout
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}

	return &Evaluator{
		config: config,
		logger: logger,
		output: output,
	}, nil
}

type minter interface {
	CreateCollection(ctx context.Context, options inscriptions.CollectionOptions) (inscriptions.CollectionResult, error)
	MintToken(ctx context.Context, options inscriptions.MintOptions) (inscriptions.MintResult, error)
}

type publisher interface {
	Publish(ctx context.Context, options packages.PublishOptions) (packages.PublishResult, error)
}

// parts are the pieces Run assembles. The minter and publisher can only
// exist once the account has an ID, hence the constructors.
type parts struct {
	funder       faucet.Funder
	mirrorClient *mirror.Client
	newMinter    func(creator *account.Account) (minter, error)
	newPublisher func(creator *account.Account) (publisher, error)
}

// Run executes the evaluation against the configured network.
func (e *Evaluator) Run(ctx context.Context) (*Report, error) {
	mirrorClient, err := mirror.NewClient(mirror.Config{
		Network: e.config.Network,
		BaseURL: e.config.MirrorBaseURL,
	})
	if err != nil {
		return nil, err
	}

	var funder faucet.Funder
	if e.config.Operator != nil {
		operator := *e.config.Operator
		if operator.Network == "" {
			operator.Network = e.config.Network
		}
		funder, err = faucet.NewOperatorFunder(operator)
	} else {
		funder, err = faucet.NewHTTPFaucet(faucet.HTTPConfig{
			Network: e.config.Network,
			BaseURL: e.config.FaucetBaseURL,
		})
	}
	if err != nil {
		return nil, err
	}

	return e.run(ctx, parts{
		funder:       funder,
		mirrorClient: mirrorClient,
		newMinter: func(creator *account.Account) (minter, error) {
			return inscriptions.NewClientForAccount(creator, e.config.Network, e.config.MirrorBaseURL)
		},
		newPublisher: func(creator *account.Account) (publisher, error) {
			if creator.AccountID == nil {
				return nil, fmt.Errorf("publisher account has no account ID")
			}
			return packages.NewClient(packages.ClientConfig{
				AccountID:  creator.AccountID.String(),
				PrivateKey: creator.PrivateKey.String(),
				Network:    e.config.Network,
			})
		},
	})
}

func (e *Evaluator) run(ctx context.Context, parts parts) (*Report, error) {
	creator, err := e.generateAccount()
	if err != nil {
		return nil, err
	}

	report := &Report{EvmAddress: creator.EvmAddress}

	e.logger.Info().
		Str("network", e.config.Network).
		Str("evm_address", creator.EvmAddress).
		Str("key_type", string(creator.KeyType)).
		Msg("generated account")

	fundResult, err := faucet.FundAccount(
		ctx,
		parts.funder,
		parts.mirrorClient,
		creator,
		e.config.FundAmount,
		faucet.ConfirmOptions{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fund account: %w", err)
	}
	report.Account = fundResult.AccountID

	identifier, err := creator.Identifier()
	if err != nil {
		return nil, err
	}
	balance, err := parts.mirrorClient.GetAccountBalance(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to read funded balance: %w", err)
	}
	report.InitialBalance = balance

	e.logger.Info().
		Str("account", report.Account).
		Int64("balance", balance).
		Msg("funded account")

	if e.config.PackageBytecodePath != "" {
		if err := e.publishPackage(ctx, parts, creator, report); err != nil {
			return nil, err
		}
	}

	client, err := parts.newMinter(creator)
	if err != nil {
		return nil, err
	}

	collection, err := client.CreateCollection(ctx, inscriptions.CollectionOptions{
		Name:        e.config.CollectionName,
		Description: e.config.CollectionDescription,
		Symbol:      e.config.CollectionSymbol,
		MaxSupply:   e.config.MaxSupply,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}
	report.CollectionTokenID = collection.TokenID

	collectionRecord, err := parts.mirrorClient.WaitForTransaction(ctx, collection.TransactionID, mirror.WaitOptions{})
	if err != nil {
		return nil, err
	}
	report.CollectionCost = collectionRecord.ChargedTxFee

	e.logger.Info().
		Str("token_id", collection.TokenID).
		Int64("cost", collectionRecord.ChargedTxFee).
		Msg("created collection")

	for _, size := range e.config.PayloadSizes {
		cost, mintErr := e.mintAndPrice(ctx, parts, client, collection.TokenID, size)
		if mintErr != nil {
			return nil, mintErr
		}
		report.Mints = append(report.Mints, cost)
		report.TotalMintCost += cost.CostTinybar

		fmt.Fprintf(e.output, "%d -- %d\n", cost.PayloadSize, cost.CostTinybar)
	}

	return report, nil
}

func (e *Evaluator) generateAccount() (*account.Account, error) {
	// Operator-created accounts do not need an EVM alias; faucets credit
	// the alias before the account exists, so they require one.
	if e.config.Operator != nil {
		return account.GenerateED25519()
	}
	return account.GenerateECDSA()
}

func (e *Evaluator) publishPackage(
	ctx context.Context,
	parts parts,
	creator *account.Account,
	report *Report,
) error {
	publisherClient, err := parts.newPublisher(creator)
	if err != nil {
		return err
	}

	published, err := publisherClient.Publish(ctx, packages.PublishOptions{
		BytecodePath: e.config.PackageBytecodePath,
	})
	if err != nil {
		return fmt.Errorf("failed to publish package: %w", err)
	}
	report.PackageFileID = published.FileID
	report.PackageContractID = published.ContractID

	if _, err := parts.mirrorClient.WaitForTransaction(ctx, published.TransactionID, mirror.WaitOptions{}); err != nil {
		return err
	}

	result, err := parts.mirrorClient.GetContractResult(ctx, published.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to read contract result: %w", err)
	}
	report.PackageGasUsed = result.GasUsed

	e.logger.Info().
		Str("contract_id", published.ContractID).
		Int64("gas_used", result.GasUsed).
		Msg("published package")

	return nil
}

func (e *Evaluator) mintAndPrice(
	ctx context.Context,
	parts parts,
	client minter,
	tokenID string,
	size int,
) (MintCost, error) {
	payload, err := makePayload(size)
	if err != nil {
		return MintCost{}, err
	}

	minted, err := client.MintToken(ctx, inscriptions.MintOptions{
		CollectionTokenID: tokenID,
		Data:              payload,
		Name:              fmt.Sprintf("inscription-%d", size),
		Description:       fmt.Sprintf("%d byte inscription payload", size),
	})
	if err != nil {
		return MintCost{}, fmt.Errorf("failed to mint %d byte payload: %w", size, err)
	}

	record, err := parts.mirrorClient.WaitForTransaction(ctx, minted.TransactionID, mirror.WaitOptions{})
	if err != nil {
		return MintCost{}, err
	}

	e.logger.Info().
		Int("payload_size", size).
		Int64("serial", minted.SerialNumber).
		Str("topic_id", minted.TopicID).
		Int("messages", minted.MessageCount).
		Int64("cost", record.ChargedTxFee).
		Msg("minted inscription")

	return MintCost{
		PayloadSize:   size,
		SerialNumber:  minted.SerialNumber,
		TopicID:       minted.TopicID,
		Reference:     minted.Reference,
		TransactionID: minted.TransactionID,
		MessageCount:  minted.MessageCount,
		CostTinybar:   record.ChargedTxFee,
	}, nil
}

func makePayload(size int) ([]byte, error) {
	payload := make([]byte, size)
	if size > 0 {
		if _, err := rand.Read(payload); err != nil {
			return nil, fmt.Errorf("failed to generate payload: %w", err)
		}
	}
	return payload, nil
}
