// Package evaluator measures what inscriptions of increasing size cost
// to mint.
//
// A run generates a throwaway account, funds it through a faucet or an
// operator, optionally publishes a contract package, creates a collection
// and then mints one inscription per configured payload size, printing a
// "size -- cost" row for each once the mint's record is visible on the
// mirror node.
package evaluator
