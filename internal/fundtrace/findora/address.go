package findora

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
)

// AddressCodec converts public keys to bech32 addresses and back.
type AddressCodec struct {
	hrp string
}

// NewAddressCodec constructs a codec for the fra prefix.
func NewAddressCodec() *AddressCodec {
	return &AddressCodec{hrp: AddressHRP}
}

// Encode returns the address of a public key.
func (c *AddressCodec) Encode(pubKey []byte) (model.Address, error) {
	data, err := bech32.ConvertBits(pubKey, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert public key bits: %w", err)
	}
	addr, err := bech32.Encode(c.hrp, data)
	if err != nil {
		return "", fmt.Errorf("bech32 encode: %w", err)
	}
	return model.Address(addr), nil
}

// Decode returns the public key an address encodes.
func (c *AddressCodec) Decode(addr model.Address) ([]byte, error) {
	hrp, data, err := bech32.Decode(string(addr))
	if err != nil {
		return nil, fmt.Errorf("bech32 decode %s: %w", addr, err)
	}
	if hrp != c.hrp {
		return nil, fmt.Errorf("address %s has prefix %q, want %q", addr, hrp, c.hrp)
	}
	key, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("convert address %s bits: %w", addr, err)
	}
	if len(key) != PublicKeyLength {
		return nil, fmt.Errorf("address %s decodes to %d bytes, want %d", addr, len(key), PublicKeyLength)
	}
	return key, nil
}
