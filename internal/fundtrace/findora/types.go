package findora

import "time"

type (
	// Metrics records ledger call outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveTruncated()
	}
)

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

type txSearchResponse struct {
	Result *txSearchResult `json:"result"`
	Error  *rpcError       `json:"error"`
}

type txSearchResult struct {
	Txs        []rawTx `json:"txs"`
	TotalCount string  `json:"total_count"`
}

type rawTx struct {
	Hash     string `json:"hash"`
	Height   string `json:"height"`
	TxResult struct {
		Code uint32 `json:"code"`
	} `json:"tx_result"`
	Tx string `json:"tx"`
}

type validatorsResponse struct {
	Result *struct {
		BlockHeight string `json:"block_height"`
	} `json:"result"`
	Error *rpcError `json:"error"`
}

// pageTx is a tx_search entry with its height parsed and body still encoded.
type pageTx struct {
	height uint64
	code   uint32
	hash   string
	body   string
}
