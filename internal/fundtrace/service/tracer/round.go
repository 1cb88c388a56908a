package tracer

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/pkg/workerpool"
	"go.uber.org/zap"
)

type roundResult struct {
	report   model.RoundReport
	frontier []model.Address
}

type sourceHistory struct {
	source model.Address
	txs    []model.Tx
}

type roundAggregator struct {
	source      LedgerSource
	encoder     AddressEncoder
	classifier  OutputClassifier
	metrics     TracerMetrics
	workerCount int
	logger      *zap.Logger
}

// run expands one round. Sources must already exclude visited addresses.
func (a *roundAggregator) run(ctx context.Context, sources []model.Address, sinceHeight uint64) (roundResult, error) {
	histories, err := workerpool.Map(ctx, a.workerCount, sources, func(ctx context.Context, addr model.Address) (sourceHistory, error) {
		started := time.Now()
		txs, err := a.source.FetchRecentOutgoing(ctx, addr, sinceHeight)
		a.metrics.ObserveFetch(err)
		if err != nil {
			return sourceHistory{}, fmt.Errorf("fetch outgoing of %s: %w", addr, err)
		}
		a.logger.Debug("fetched outgoing history",
			zap.String("address", string(addr)),
			zap.Int("tx_count", len(txs)),
			zap.Duration("duration", time.Since(started)),
		)
		return sourceHistory{source: addr, txs: txs}, nil
	})
	if err != nil {
		return roundResult{}, err
	}

	acc := newAccumulator()
	for _, h := range histories {
		if err := a.merge(acc, h); err != nil {
			return roundResult{}, err
		}
	}
	return acc.result(), nil
}

func (a *roundAggregator) merge(acc *accumulator, h sourceHistory) error {
	for _, tx := range h.txs {
		for _, op := range tx.Transaction.Operations {
			if op.Kind != model.OperationTransferAsset && op.Kind != model.OperationIssueAsset {
				continue
			}
			for idx, out := range op.Outputs {
				recipient, err := a.encoder.Encode(out.PublicKey)
				if err != nil {
					return fmt.Errorf("encode recipient of tx %s output %d: %w", tx.Hash, idx, err)
				}
				if recipient == h.source {
					continue
				}
				if err := acc.add(out.PublicKey, recipient, a.classifier.Classify(out, recipient)); err != nil {
					return fmt.Errorf("tx %s output %d: %w", tx.Hash, idx, err)
				}
			}
		}
	}
	return nil
}
