// Package model defines domain models for outbound fund tracing.
package model

// Address is a bech32 encoded account address.
type Address string

// AssetCode identifies an asset type on the ledger.
type AssetCode [32]byte

// OperationKind tags the operation variants relevant to tracing.
type OperationKind uint8

const (
	// OperationIgnored covers every operation that carries no recipient data.
	OperationIgnored OperationKind = iota
	// OperationTransferAsset moves existing records to new owners.
	OperationTransferAsset
	// OperationIssueAsset mints new records to owners.
	OperationIssueAsset
)

// String returns the wire tag of the operation kind.
func (k OperationKind) String() string {
	switch k {
	case OperationTransferAsset:
		return "TransferAsset"
	case OperationIssueAsset:
		return "IssueAsset"
	default:
		return "Ignored"
	}
}

// OutputAmount is either a plain value or a confidential commitment.
type OutputAmount struct {
	Confidential bool
	Value        uint64
}

// AssetType is either a plain asset code or a confidential commitment.
type AssetType struct {
	Confidential bool
	Code         AssetCode
}

// Output is a single transfer or issuance record.
type Output struct {
	PublicKey []byte
	Amount    OutputAmount
	AssetType AssetType
}

// Operation is one operation of a transaction. Only TransferAsset and IssueAsset carry outputs.
type Operation struct {
	Kind    OperationKind
	Name    string
	Outputs []Output
}

// Transaction is the decoded body of a ledger transaction.
type Transaction struct {
	Operations []Operation
}

// Tx is a transaction together with its inclusion height.
type Tx struct {
	Height      uint64
	Hash        string
	Transaction Transaction
}
