package mirror

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// WaitOptions controls how long WaitForTransaction polls the mirror node.
type WaitOptions struct {
	MaxAttempts int
	Interval    time.Duration
}

// GetTransaction fetches a transaction record by its transaction ID. Both the
// SDK format (0.0.x@seconds.nanos) and the REST format are accepted. Returns
// nil when the mirror node knows the ID but has no matching transaction.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*Transaction, error) {
	normalized := NormalizeTransactionID(transactionID)
	if normalized == "" {
		return nil, fmt.Errorf("transaction ID is required")
	}

	var response transactionsResponse
	path := fmt.Sprintf("/api/v1/transactions/%s", normalized)
	if err := c.getJSON(ctx, path, &response); err != nil {
		return nil, err
	}

	if len(response.Transactions) == 0 {
		return nil, nil
	}

	return &response.Transactions[0], nil
}

// WaitForTransaction polls the mirror node until the transaction appears and
// reached a result, then returns its record. A transaction whose result is
// not SUCCESS is returned together with an error.
func (c *Client) WaitForTransaction(
	ctx context.Context,
	transactionID string,
	options WaitOptions,
) (*Transaction, error) {
	maxAttempts := options.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 30
	}
	interval := options.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		transaction, err := c.GetTransaction(ctx, transactionID)
		if err != nil && !IsNotFound(err) {
			return nil, err
		}

		if err == nil && transaction != nil && transaction.Result != "" {
			if !strings.EqualFold(transaction.Result, "SUCCESS") {
				return transaction, fmt.Errorf(
					"transaction %s failed with result %s",
					NormalizeTransactionID(transactionID),
					transaction.Result,
				)
			}
			return transaction, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}

	return nil, fmt.Errorf(
		"transaction %s was not ingested by the mirror node within %d attempts",
		NormalizeTransactionID(transactionID),
		maxAttempts,
	)
}

// GetContractResult fetches the execution result of a contract transaction,
// including the gas actually consumed.
func (c *Client) GetContractResult(ctx context.Context, transactionID string) (*ContractResult, error) {
	normalized := NormalizeTransactionID(transactionID)
	if normalized == "" {
		return nil, fmt.Errorf("transaction ID is required")
	}

	var result ContractResult
	path := fmt.Sprintf("/api/v1/contracts/results/%s", normalized)
	if err := c.getJSON(ctx, path, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
