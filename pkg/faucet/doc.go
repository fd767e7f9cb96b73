// Package faucet funds freshly generated accounts. Funding can go through a
// faucet service over REST (testnet, previewnet) or through an
// operator-funded account create (mainnet, local networks). FundAccount
// wraps either path and confirms the credit through the mirror node before
// returning.
package faucet
