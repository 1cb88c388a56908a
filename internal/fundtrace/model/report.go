package model

// AddrKind classifies a recipient for reporting.
type AddrKind string

const (
	// KindNormal is an ordinary account.
	KindNormal AddrKind = "Normal"
	// KindFeeOrBurn is the fee/burn sink.
	KindFeeOrBurn AddrKind = "FeeOrBurn"
	// KindStakingOrEvmConversion is the staking and EVM conversion sink.
	KindStakingOrEvmConversion AddrKind = "StakingOrEvmConversion"
	// KindReserved is one of the seed addresses.
	KindReserved AddrKind = "Reserved"
)

// Receiver aggregates the outputs a recipient received during one round.
type Receiver struct {
	Address                       Address  `json:"addr"`
	Kind                          AddrKind `json:"kind"`
	TotalCnt                      uint64   `json:"total_cnt"`
	ConfidentialCnt               uint64   `json:"confidential_cnt"`
	NonConfidentialAmount         uint64   `json:"non_confidential_amount"`
	NonConfidentialAmountReadable string   `json:"non_confidential_amount_readable"`
}

// RoundReport is the result of one breadth-first expansion step.
type RoundReport struct {
	ReceiverCnt                   uint64     `json:"receiver_cnt"`
	TotalCnt                      uint64     `json:"total_cnt"`
	ConfidentialCnt               uint64     `json:"confidential_cnt"`
	NonConfidentialAmountReadable string     `json:"non_confidential_amount_readable"`
	Entries                       []Receiver `json:"entries"`
}

// Report holds round reports in traversal order.
type Report []RoundReport
