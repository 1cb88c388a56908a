package tracer

import (
	"bytes"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/classify"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
)

var (
	burnKey     = bytes.Repeat([]byte{0x00}, 32)
	stakingKey  = bytes.Repeat([]byte{0x01}, 32)
	nativeAsset model.AssetCode
	otherAsset  = model.AssetCode{0x42}
)

// hexEncoder names a key after its first byte, which is all the tests vary.
type hexEncoder struct{}

func (hexEncoder) Encode(pubKey []byte) (model.Address, error) {
	if len(pubKey) != 32 {
		return "", fmt.Errorf("bad key length %d", len(pubKey))
	}
	return addrOf(pubKey[0]), nil
}

func key(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func addrOf(b byte) model.Address {
	return model.Address(fmt.Sprintf("fra%02x", b))
}

func newTestClassifier(reserved ...model.Address) *classify.Classifier {
	return classify.New(classify.Config{
		BurnKey:     burnKey,
		StakingKey:  stakingKey,
		NativeAsset: nativeAsset,
		Reserved:    reserved,
	})
}

func plainOut(to byte, amount uint64) model.Output {
	return model.Output{
		PublicKey: key(to),
		Amount:    model.OutputAmount{Value: amount},
		AssetType: model.AssetType{Code: nativeAsset},
	}
}

func confidentialOut(to byte) model.Output {
	return model.Output{
		PublicKey: key(to),
		Amount:    model.OutputAmount{Confidential: true},
		AssetType: model.AssetType{Confidential: true},
	}
}

func transfer(hash string, outs ...model.Output) model.Tx {
	return model.Tx{
		Height: 1,
		Hash:   hash,
		Transaction: model.Transaction{Operations: []model.Operation{{
			Kind:    model.OperationTransferAsset,
			Name:    "TransferAsset",
			Outputs: outs,
		}}},
	}
}
