// Package mirror implements a read-only client for the Hedera mirror node
// REST API. The evaluator relies on it for everything the consensus nodes do
// not answer directly: waiting until a transaction has been ingested,
// reading the fee a transaction was actually charged, querying account
// balances, contract execution results, and inscription topic messages.
package mirror
