package inscriptions

type ClientConfig struct {
	AccountID     string
	PrivateKey    string
	Network       string
	MirrorBaseURL string
	MirrorAPIKey  string
}

// CollectionOptions describes a new inscription collection. The creator
// account becomes the collection treasury and holds the supply key.
type CollectionOptions struct {
	Name               string
	Description        string
	Symbol             string
	MaxSupply          int64
	RoyaltyNumerator   int64
	RoyaltyDenominator int64
	RoyaltyPayee       string
	URI                string
}

type CollectionResult struct {
	TokenID       string
	TransactionID string
}

// MintOptions describes a single token mint. Data is the inscription
// payload; it may be empty, in which case the inscription still exists but
// carries no content bytes.
type MintOptions struct {
	CollectionTokenID string
	Data              []byte
	MimeType          string
	Name              string
	Description       string
	URI               string
}

type MintResult struct {
	SerialNumber  int64
	TopicID       string
	TransactionID string
	Reference     string
	MessageCount  int
}

// Inscription is a payload read back from its topic.
type Inscription struct {
	TopicID  string
	Data     []byte
	Meta     EnvelopeMeta
	Checksum string
}
