package tracer

import (
	"fmt"
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/classify"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/pkg/safe"
)

// accumulator folds classified outputs per recipient public key.
type accumulator struct {
	entries map[string]*model.Receiver
}

func newAccumulator() *accumulator {
	return &accumulator{entries: make(map[string]*model.Receiver)}
}

func (a *accumulator) add(pubKey []byte, recipient model.Address, res classify.Result) error {
	key := string(pubKey)
	entry, ok := a.entries[key]
	if !ok {
		// Kind is fixed on first sight.
		entry = &model.Receiver{Address: recipient, Kind: res.Kind}
		a.entries[key] = entry
	}

	total, err := safe.AddUint64(entry.TotalCnt, 1)
	if err != nil {
		return fmt.Errorf("total count of %s: %w", recipient, err)
	}
	entry.TotalCnt = total

	if res.Confidential {
		entry.ConfidentialCnt++
		return nil
	}
	sum, err := safe.AddUint64(entry.NonConfidentialAmount, res.Amount)
	if err != nil {
		return fmt.Errorf("amount of %s: %w", recipient, err)
	}
	entry.NonConfidentialAmount = sum
	return nil
}

// result builds the round report and the next frontier. Entries are ordered by amount
// descending, then by address.
func (a *accumulator) result() roundResult {
	entries := make([]model.Receiver, 0, len(a.entries))
	frontier := make([]model.Address, 0, len(a.entries))
	var totalCnt, confidentialCnt uint64
	for _, entry := range a.entries {
		entries = append(entries, *entry)
		frontier = append(frontier, entry.Address)
		totalCnt += entry.TotalCnt
		confidentialCnt += entry.ConfidentialCnt
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].NonConfidentialAmount != entries[j].NonConfidentialAmount {
			return entries[i].NonConfidentialAmount > entries[j].NonConfidentialAmount
		}
		return entries[i].Address < entries[j].Address
	})

	return roundResult{
		report: model.RoundReport{
			ReceiverCnt:     uint64(len(entries)),
			TotalCnt:        totalCnt,
			ConfidentialCnt: confidentialCnt,
			Entries:         entries,
		},
		frontier: NormalizeAddresses(frontier),
	}
}
