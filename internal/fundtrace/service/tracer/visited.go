package tracer

import (
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
)

// visitedSet holds addresses already used as a round source. It only grows.
type visitedSet map[model.Address]struct{}

func (v visitedSet) add(addrs ...model.Address) {
	for _, addr := range addrs {
		v[addr] = struct{}{}
	}
}

func (v visitedSet) contains(addr model.Address) bool {
	_, ok := v[addr]
	return ok
}

// unvisited returns the frontier members that have not been a source yet, in input order.
func (v visitedSet) unvisited(frontier []model.Address) []model.Address {
	out := make([]model.Address, 0, len(frontier))
	for _, addr := range frontier {
		if !v.contains(addr) {
			out = append(out, addr)
		}
	}
	return out
}

// NormalizeAddresses returns the sorted, de-duplicated, non-empty addresses.
func NormalizeAddresses(addrs []model.Address) []model.Address {
	seen := make(map[model.Address]struct{}, len(addrs))
	out := make([]model.Address, 0, len(addrs))
	for _, addr := range addrs {
		if addr == "" {
			continue
		}
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
