package faucet

import (
	"context"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/account"
	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/shared"
)

// OperatorFunder creates and funds accounts from a configured operator.
// This is the funding path for networks without a public faucet and for
// local development networks, where the faucet is just a pre-funded
// operator account.
type OperatorFunder struct {
	ledgerClient *hedera.Client
}

// NewOperatorFunder creates a new OperatorFunder.
func NewOperatorFunder(operator shared.OperatorConfig) (*OperatorFunder, error) {
	operatorID, err := hedera.AccountIDFromString(operator.AccountID)
	if err != nil {
		return nil, fmt.Errorf("invalid operator account ID: %w", err)
	}
	operatorKey, err := shared.ParsePrivateKey(operator.PrivateKey)
	if err != nil {
		return nil, err
	}

	ledgerClient, err := shared.NewLedgerClient(operator.Network)
	if err != nil {
		return nil, err
	}
	ledgerClient.SetOperator(operatorID, operatorKey)

	return &OperatorFunder{ledgerClient: ledgerClient}, nil
}

// Fund creates the target account on the ledger with the requested initial
// balance, paid by the operator. The resulting account ID is recorded on
// the target.
func (f *OperatorFunder) Fund(
	ctx context.Context,
	target *account.Account,
	tinybar int64,
) (FundResult, error) {
	if tinybar <= 0 {
		return FundResult{}, fmt.Errorf("funding amount must be positive")
	}

	transaction := hedera.NewAccountCreateTransaction().
		SetKey(target.PublicKey()).
		SetInitialBalance(hedera.HbarFromTinybar(tinybar))

	response, err := transaction.Execute(f.ledgerClient)
	if err != nil {
		return FundResult{}, fmt.Errorf("failed to execute account create transaction: %w", err)
	}

	receipt, err := response.GetReceipt(f.ledgerClient)
	if err != nil {
		return FundResult{}, fmt.Errorf("failed to get account create receipt: %w", err)
	}
	if receipt.Status.String() != "SUCCESS" {
		return FundResult{}, fmt.Errorf("account create failed with status %s", receipt.Status.String())
	}
	if receipt.AccountID == nil {
		return FundResult{}, fmt.Errorf("account ID missing in account create receipt")
	}

	target.SetAccountID(*receipt.AccountID)

	return FundResult{
		TransactionID: response.TransactionID.String(),
		AccountID:     receipt.AccountID.String(),
	}, nil
}
