// The Inscriptions Evaluator for Go measures what inscribed NFTs cost on
// the Hedera public ledger. It generates a throwaway account, funds it
// through a faucet or an operator, optionally publishes a smart contract
// package, creates a non-fungible collection, and then mints tokens whose
// metadata references on-ledger inscription payloads of increasing size,
// reporting the fee charged for each mint.
//
// # Packages
//
//   - pkg/account: local keypair generation and EVM address aliases
//   - pkg/faucet: HTTP faucet and operator-backed account funding
//   - pkg/mirror: mirror node REST client with transaction polling
//   - pkg/inscriptions: payload codec, collection creation, token minting
//   - pkg/packages: contract bytecode upload and contract creation
//   - pkg/evaluator: the end-to-end evaluation flow
//
// # Installation
//
//	go get github.com/hashgraph-online/inscriptions-evaluator-go@latest
package inscriptions_evaluator_go
