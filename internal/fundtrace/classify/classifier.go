// Package classify assigns reporting kinds and amount visibility to transaction outputs.
package classify

import (
	"bytes"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
)

// Config holds the fixed reference keys and addresses used for classification.
type Config struct {
	BurnKey     []byte
	StakingKey  []byte
	NativeAsset model.AssetCode
	Reserved    []model.Address
}

// Result is the classification of one output.
type Result struct {
	Kind         model.AddrKind
	Confidential bool
	Amount       uint64
}

// Classifier is a pure function of an output, its recipient address and the reference set.
type Classifier struct {
	burnKey     []byte
	stakingKey  []byte
	nativeAsset model.AssetCode
	reserved    map[model.Address]struct{}
}

// New constructs a Classifier.
func New(cfg Config) *Classifier {
	reserved := make(map[model.Address]struct{}, len(cfg.Reserved))
	for _, addr := range cfg.Reserved {
		reserved[addr] = struct{}{}
	}
	return &Classifier{
		burnKey:     append([]byte(nil), cfg.BurnKey...),
		stakingKey:  append([]byte(nil), cfg.StakingKey...),
		nativeAsset: cfg.NativeAsset,
		reserved:    reserved,
	}
}

// Classify returns the recipient kind and the counted amount of an output.
func (c *Classifier) Classify(out model.Output, recipient model.Address) Result {
	confidential, amount := c.Amount(out)
	return Result{
		Kind:         c.Kind(out.PublicKey, recipient),
		Confidential: confidential,
		Amount:       amount,
	}
}

// Kind returns the reporting kind of a recipient. Sink keys take precedence over the reserved set.
func (c *Classifier) Kind(pubKey []byte, recipient model.Address) model.AddrKind {
	switch {
	case len(c.burnKey) > 0 && bytes.Equal(pubKey, c.burnKey):
		return model.KindFeeOrBurn
	case len(c.stakingKey) > 0 && bytes.Equal(pubKey, c.stakingKey):
		return model.KindStakingOrEvmConversion
	}
	if _, ok := c.reserved[recipient]; ok {
		return model.KindReserved
	}
	return model.KindNormal
}

// Amount reports whether an output counts as confidential and, if not, its value.
// Only plain amounts of the native asset are counted; anything else is reported as confidential.
func (c *Classifier) Amount(out model.Output) (confidential bool, value uint64) {
	if out.AssetType.Confidential || out.AssetType.Code != c.nativeAsset || out.Amount.Confidential {
		return true, 0
	}
	return false, out.Amount.Value
}
