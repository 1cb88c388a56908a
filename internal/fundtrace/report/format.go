// Package report post-processes a completed trace report for display.
package report

import (
	"math/big"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits of reported amounts.
const Decimals = 6

// FormatAmount renders a fixed-point amount as a decimal string without trailing zeros,
// e.g. 1_500_000 -> "1.5" and 0 -> "0".
func FormatAmount(amount uint64) string {
	return formatBig(new(big.Int).SetUint64(amount))
}

func formatBig(v *big.Int) string {
	return decimal.NewFromBigInt(v, -Decimals).String()
}

// Finalize re-derives per-round counters from the entries and fills every readable amount.
// Raw sums are never changed, so calling it again yields the same report.
func Finalize(r model.Report) model.Report {
	for i := range r {
		round := &r[i]

		var total, confidential uint64
		sum := new(big.Int)
		for j := range round.Entries {
			entry := &round.Entries[j]
			total += entry.TotalCnt
			confidential += entry.ConfidentialCnt
			sum.Add(sum, new(big.Int).SetUint64(entry.NonConfidentialAmount))
			entry.NonConfidentialAmountReadable = FormatAmount(entry.NonConfidentialAmount)
		}

		round.ReceiverCnt = uint64(len(round.Entries))
		round.TotalCnt = total
		round.ConfidentialCnt = confidential
		round.NonConfidentialAmountReadable = formatBig(sum)
	}
	return r
}
