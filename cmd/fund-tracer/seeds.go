package main

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/findora"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/service/tracer"
)

type addressCodec interface {
	Decode(addr model.Address) ([]byte, error)
	Encode(pubKey []byte) (model.Address, error)
}

// parseSeeds validates the target addresses and rewrites them in canonical form, so the
// indexer query and the visited set see one spelling per key. No targets selects the
// reserved address set.
func parseSeeds(targets []string, codec addressCodec) ([]model.Address, error) {
	if targets == nil {
		return tracer.NormalizeAddresses(findora.ReservedAddresses), nil
	}

	addrs := make([]model.Address, 0, len(targets))
	for _, target := range targets {
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}
		pubKey, err := codec.Decode(model.Address(target))
		if err != nil {
			return nil, fmt.Errorf("invalid address %s: %w", target, err)
		}
		canonical, err := codec.Encode(pubKey)
		if err != nil {
			return nil, fmt.Errorf("encode address %s: %w", target, err)
		}
		addrs = append(addrs, canonical)
	}
	addrs = tracer.NormalizeAddresses(addrs)
	if len(addrs) == 0 {
		return nil, tracer.ErrEmptyAddressList
	}
	return addrs, nil
}

func red(msg string) string {
	return "\x1b[31;01m" + msg + "\x1b[00m"
}
