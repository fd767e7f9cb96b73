// Package shared provides the environment plumbing used by every client in
// the evaluator: network name normalization, Hedera client construction,
// operator configuration loaded from the environment (with .env discovery),
// and the default mirror node and faucet endpoints per network.
package shared
