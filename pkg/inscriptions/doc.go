// Package inscriptions creates token collections whose minted serials are
// backed by payloads inscribed on the public ledger. Each mint writes the
// payload to a fresh consensus topic as brotli-compressed, base64-encoded
// chunk messages, then mints one serial whose metadata is the hcs://1/
// reference to that topic. The topic memo carries the payload checksum so
// readers can verify what they reassemble.
package inscriptions
