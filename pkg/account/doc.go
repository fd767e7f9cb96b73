// Package account generates the keypair identities the evaluator funds and
// mints with. ECDSA accounts carry a derived EVM address alias so that
// public faucets can credit them before the account exists on the ledger.
package account
