package mirror

type Transaction struct {
	ChargedTxFee       int64      `json:"charged_tx_fee"`
	ConsensusTimestamp string     `json:"consensus_timestamp"`
	EntityID           *string    `json:"entity_id"`
	MaxFee             string     `json:"max_fee"`
	MemoBase64         string     `json:"memo_base64"`
	Name               string     `json:"name"`
	Node               string     `json:"node"`
	Result             string     `json:"result"`
	TransactionID      string     `json:"transaction_id"`
	Transfers          []Transfer `json:"transfers"`
}

type Transfer struct {
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

type ContractResult struct {
	ContractID   string `json:"contract_id"`
	GasLimit     int64  `json:"gas_limit"`
	GasUsed      int64  `json:"gas_used"`
	Result       string `json:"result"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

type AccountInfo struct {
	Account    string         `json:"account"`
	EvmAddress string         `json:"evm_address"`
	Key        map[string]any `json:"key"`
	Balance    struct {
		Balance   int64  `json:"balance"`
		Timestamp string `json:"timestamp"`
	} `json:"balance"`
	Memo string `json:"memo"`
}

type TopicInfo struct {
	AdminKey         map[string]any `json:"admin_key"`
	AutoRenewAccount string         `json:"auto_renew_account"`
	AutoRenewPeriod  int64          `json:"auto_renew_period"`
	CreatedTimestamp string         `json:"created_timestamp"`
	Deleted          bool           `json:"deleted"`
	Memo             string         `json:"memo"`
	SubmitKey        map[string]any `json:"submit_key"`
	TopicID          string         `json:"topic_id"`
}

type TopicMessage struct {
	ConsensusTimestamp string `json:"consensus_timestamp"`
	Message            string `json:"message"`
	PayerAccountID     string `json:"payer_account_id"`
	RunningHash        string `json:"running_hash"`
	SequenceNumber     int64  `json:"sequence_number"`
	TopicID            string `json:"topic_id"`
}

type transactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	Links        struct {
		Next string `json:"next"`
	} `json:"links"`
}

type topicMessagesResponse struct {
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
	Messages []TopicMessage `json:"messages"`
}

type balancesResponse struct {
	Timestamp string `json:"timestamp"`
	Balances  []struct {
		Account string `json:"account"`
		Balance int64  `json:"balance"`
	} `json:"balances"`
}
