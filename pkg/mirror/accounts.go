package mirror

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// GetAccountBalance returns the tinybar balance of an account as reported by
// the mirror node. The account may be referenced by account ID or by EVM
// address alias.
func (c *Client) GetAccountBalance(ctx context.Context, account string) (int64, error) {
	normalized := strings.TrimSpace(account)
	if normalized == "" {
		return 0, fmt.Errorf("account is required")
	}

	var response balancesResponse
	path := fmt.Sprintf("/api/v1/balances?account.id=%s", url.QueryEscape(normalized))
	if err := c.getJSON(ctx, path, &response); err != nil {
		return 0, err
	}

	if len(response.Balances) == 0 {
		return 0, fmt.Errorf("account %s has no balance record", normalized)
	}

	return response.Balances[0].Balance, nil
}

// GetAccount fetches account details by account ID or alias.
func (c *Client) GetAccount(ctx context.Context, account string) (AccountInfo, error) {
	var accountInfo AccountInfo
	normalized := strings.TrimSpace(account)
	if normalized == "" {
		return accountInfo, fmt.Errorf("account is required")
	}

	path := fmt.Sprintf("/api/v1/accounts/%s", normalized)
	if err := c.getJSON(ctx, path, &accountInfo); err != nil {
		return accountInfo, err
	}

	return accountInfo, nil
}
