package faucet

import (
	"context"
	"fmt"
	"time"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/account"
	"github.com/hashgraph-online/inscriptions-evaluator-go/pkg/mirror"
)

func parseAccountID(raw string) (hedera.AccountID, error) {
	accountID, err := hedera.AccountIDFromString(raw)
	if err != nil {
		return hedera.AccountID{}, fmt.Errorf("mirror node returned an unparseable account ID %q: %w", raw, err)
	}
	return accountID, nil
}

// FundResult reports where the funding credit went.
type FundResult struct {
	TransactionID string
	AccountID     string
}

// Funder credits a locally generated account with spendable balance.
// HTTPFaucet talks to a faucet service; OperatorFunder creates and funds the
// account from a configured operator, which is what devnet faucets do
// internally.
type Funder interface {
	Fund(ctx context.Context, target *account.Account, tinybar int64) (FundResult, error)
}

// ConfirmOptions controls how long FundAccount waits for the credited
// balance to become visible on the mirror node.
type ConfirmOptions struct {
	MaxAttempts int
	Interval    time.Duration
}

// FundAccount funds the target and then blocks until the mirror node
// reports a balance and an account ID for it. The resolved account ID is
// recorded on the target.
func FundAccount(
	ctx context.Context,
	funder Funder,
	mirrorClient *mirror.Client,
	target *account.Account,
	tinybar int64,
	options ConfirmOptions,
) (FundResult, error) {
	if tinybar <= 0 {
		return FundResult{}, fmt.Errorf("funding amount must be positive")
	}

	result, err := funder.Fund(ctx, target, tinybar)
	if err != nil {
		return FundResult{}, err
	}

	maxAttempts := options.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 30
	}
	interval := options.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	identifier, err := target.Identifier()
	if err != nil {
		return FundResult{}, err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		info, infoErr := mirrorClient.GetAccount(ctx, identifier)
		if infoErr == nil && info.Account != "" && info.Balance.Balance > 0 {
			if target.AccountID == nil {
				accountID, parseErr := parseAccountID(info.Account)
				if parseErr != nil {
					return FundResult{}, parseErr
				}
				target.SetAccountID(accountID)
			}
			if result.AccountID == "" {
				result.AccountID = info.Account
			}
			return result, nil
		}
		if infoErr != nil && !mirror.IsNotFound(infoErr) {
			return FundResult{}, infoErr
		}

		select {
		case <-ctx.Done():
			return FundResult{}, ctx.Err()
		case <-time.After(interval):
		}
	}

	return FundResult{}, fmt.Errorf(
		"funded balance for %s did not appear on the mirror node within %d attempts",
		identifier,
		maxAttempts,
	)
}
