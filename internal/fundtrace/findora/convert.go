package findora

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
)

const (
	tagTransferAsset   = "TransferAsset"
	tagIssueAsset      = "IssueAsset"
	tagNonConfidential = "NonConfidential"
	tagConfidential    = "Confidential"
)

type wireTransaction struct {
	Body struct {
		Operations []json.RawMessage `json:"operations"`
	} `json:"body"`
}

type wireRecord struct {
	Amount    json.RawMessage `json:"amount"`
	AssetType json.RawMessage `json:"asset_type"`
	PublicKey json.RawMessage `json:"public_key"`
}

type wireTransferAsset struct {
	Body struct {
		Transfer struct {
			Outputs []wireRecord `json:"outputs"`
		} `json:"transfer"`
	} `json:"body"`
}

type wireIssueAsset struct {
	Body struct {
		// Each record is a (TxOutput, Option<OwnerMemo>) pair.
		Records [][]json.RawMessage `json:"records"`
	} `json:"body"`
}

type wireTxOutput struct {
	Record wireRecord `json:"record"`
}

// DecodeTransaction decodes the base64 encoded JSON body returned by tx_search.
func DecodeTransaction(encoded string) (model.Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("base64 decode tx: %w", err)
	}
	return ParseTransaction(raw)
}

// ParseTransaction decodes a JSON transaction body. Operations other than TransferAsset and
// IssueAsset are kept as OperationIgnored without outputs.
func ParseTransaction(raw []byte) (model.Transaction, error) {
	var wire wireTransaction
	if err := json.Unmarshal(raw, &wire); err != nil {
		return model.Transaction{}, fmt.Errorf("unmarshal tx: %w", err)
	}

	ops := make([]model.Operation, 0, len(wire.Body.Operations))
	for idx, rawOp := range wire.Body.Operations {
		op, err := convertOperation(rawOp)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("operation %d: %w", idx, err)
		}
		ops = append(ops, op)
	}
	return model.Transaction{Operations: ops}, nil
}

func convertOperation(raw json.RawMessage) (model.Operation, error) {
	// Unit variants are encoded as a bare string.
	var unit string
	if err := json.Unmarshal(raw, &unit); err == nil {
		return model.Operation{Kind: model.OperationIgnored, Name: unit}, nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(raw, &tagged); err != nil {
		return model.Operation{}, fmt.Errorf("unmarshal operation: %w", err)
	}
	if len(tagged) != 1 {
		return model.Operation{}, fmt.Errorf("operation has %d tags, want 1", len(tagged))
	}

	for name, body := range tagged {
		switch name {
		case tagTransferAsset:
			var transfer wireTransferAsset
			if err := json.Unmarshal(body, &transfer); err != nil {
				return model.Operation{}, fmt.Errorf("unmarshal %s: %w", name, err)
			}
			outputs, err := convertRecords(transfer.Body.Transfer.Outputs)
			if err != nil {
				return model.Operation{}, fmt.Errorf("%s: %w", name, err)
			}
			return model.Operation{Kind: model.OperationTransferAsset, Name: name, Outputs: outputs}, nil
		case tagIssueAsset:
			var issue wireIssueAsset
			if err := json.Unmarshal(body, &issue); err != nil {
				return model.Operation{}, fmt.Errorf("unmarshal %s: %w", name, err)
			}
			records := make([]wireRecord, 0, len(issue.Body.Records))
			for idx, pair := range issue.Body.Records {
				if len(pair) == 0 {
					return model.Operation{}, fmt.Errorf("%s record %d is empty", name, idx)
				}
				var out wireTxOutput
				if err := json.Unmarshal(pair[0], &out); err != nil {
					return model.Operation{}, fmt.Errorf("unmarshal %s record %d: %w", name, idx, err)
				}
				records = append(records, out.Record)
			}
			outputs, err := convertRecords(records)
			if err != nil {
				return model.Operation{}, fmt.Errorf("%s: %w", name, err)
			}
			return model.Operation{Kind: model.OperationIssueAsset, Name: name, Outputs: outputs}, nil
		default:
			return model.Operation{Kind: model.OperationIgnored, Name: name}, nil
		}
	}
	return model.Operation{}, errors.New("unreachable")
}

func convertRecords(records []wireRecord) ([]model.Output, error) {
	outputs := make([]model.Output, 0, len(records))
	for idx, rec := range records {
		out, err := convertRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", idx, err)
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

func convertRecord(rec wireRecord) (model.Output, error) {
	pubKey, err := decodeBytes(rec.PublicKey)
	if err != nil {
		return model.Output{}, fmt.Errorf("public key: %w", err)
	}
	if len(pubKey) != PublicKeyLength {
		return model.Output{}, fmt.Errorf("public key has %d bytes, want %d", len(pubKey), PublicKeyLength)
	}
	amount, err := decodeAmount(rec.Amount)
	if err != nil {
		return model.Output{}, fmt.Errorf("amount: %w", err)
	}
	assetType, err := decodeAssetType(rec.AssetType)
	if err != nil {
		return model.Output{}, fmt.Errorf("asset type: %w", err)
	}
	return model.Output{PublicKey: pubKey, Amount: amount, AssetType: assetType}, nil
}

// splitVariant splits an externally tagged {"Tag": value} object.
func splitVariant(raw json.RawMessage) (string, json.RawMessage, error) {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(raw, &tagged); err != nil {
		return "", nil, err
	}
	if len(tagged) != 1 {
		return "", nil, fmt.Errorf("variant has %d tags, want 1", len(tagged))
	}
	for tag, value := range tagged {
		return tag, value, nil
	}
	return "", nil, errors.New("unreachable")
}

func decodeAmount(raw json.RawMessage) (model.OutputAmount, error) {
	tag, value, err := splitVariant(raw)
	if err != nil {
		return model.OutputAmount{}, err
	}
	switch tag {
	case tagConfidential:
		return model.OutputAmount{Confidential: true}, nil
	case tagNonConfidential:
		n, err := decodeUint64(value)
		if err != nil {
			return model.OutputAmount{}, err
		}
		return model.OutputAmount{Value: n}, nil
	default:
		return model.OutputAmount{}, fmt.Errorf("unknown amount variant %q", tag)
	}
}

func decodeAssetType(raw json.RawMessage) (model.AssetType, error) {
	tag, value, err := splitVariant(raw)
	if err != nil {
		return model.AssetType{}, err
	}
	switch tag {
	case tagConfidential:
		return model.AssetType{Confidential: true}, nil
	case tagNonConfidential:
		b, err := decodeBytes(value)
		if err != nil {
			return model.AssetType{}, err
		}
		var code model.AssetCode
		if len(b) != len(code) {
			return model.AssetType{}, fmt.Errorf("asset code has %d bytes, want %d", len(b), len(code))
		}
		copy(code[:], b)
		return model.AssetType{Code: code}, nil
	default:
		return model.AssetType{}, fmt.Errorf("unknown asset type variant %q", tag)
	}
}

// decodeUint64 accepts a JSON number or a decimal string.
func decodeUint64(raw json.RawMessage) (uint64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseUint(s, 10, 64)
	}
	var n uint64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, err
	}
	return n, nil
}

var byteEncodings = []*base64.Encoding{
	base64.URLEncoding,
	base64.RawURLEncoding,
	base64.StdEncoding,
	base64.RawStdEncoding,
}

// decodeBytes accepts a base64 string in any common alphabet or a JSON array of bytes.
func decodeBytes(raw json.RawMessage) ([]byte, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var ints []int
		if err := json.Unmarshal(raw, &ints); err != nil {
			return nil, err
		}
		out := make([]byte, len(ints))
		for i, v := range ints {
			if v < 0 || v > 0xff {
				return nil, fmt.Errorf("byte %d out of range: %d", i, v)
			}
			out[i] = byte(v)
		}
		return out, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	for _, enc := range byteEncodings {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%q is not base64", s)
}
