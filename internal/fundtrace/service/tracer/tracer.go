// Package tracer follows outgoing funds breadth-first from a set of seed addresses.
package tracer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
	"go.uber.org/zap"
)

// ErrEmptyAddressList is returned when no usable seed address is supplied.
var ErrEmptyAddressList = errors.New("empty address list")

// Tracer runs depth-bounded breadth-first traces over outgoing transfers.
type Tracer struct {
	cfg     Config
	source  LedgerSource
	metrics TracerMetrics
	round   *roundAggregator
	logger  *zap.Logger
}

// NewTracer builds a Tracer from its collaborators; every dependency is required.
func NewTracer(
	cfg Config,
	source LedgerSource,
	encoder AddressEncoder,
	classifier OutputClassifier,
	metrics TracerMetrics,
	logger *zap.Logger,
) (*Tracer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.New("ledger source is required")
	}
	if encoder == nil {
		return nil, errors.New("address encoder is required")
	}
	if classifier == nil {
		return nil, errors.New("output classifier is required")
	}
	if metrics == nil {
		return nil, errors.New("tracer metrics is required")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkerCount
	}

	return &Tracer{
		cfg:     cfg,
		source:  source,
		metrics: metrics,
		round: &roundAggregator{
			source:      source,
			encoder:     encoder,
			classifier:  classifier,
			metrics:     metrics,
			workerCount: cfg.Workers,
			logger:      logger.Named("round"),
		},
		logger: logger,
	}, nil
}

// Trace runs up to Depth rounds starting from seeds. Depth zero yields an empty report for any
// seeds. On failure the rounds completed so far are returned together with the error.
func (t *Tracer) Trace(ctx context.Context, seeds []model.Address) (model.Report, error) {
	report := model.Report{}
	if t.cfg.Depth == 0 {
		return report, nil
	}
	frontier := NormalizeAddresses(seeds)
	if len(frontier) == 0 {
		return report, ErrEmptyAddressList
	}

	latest, err := t.source.LatestHeight(ctx)
	if err != nil {
		return report, fmt.Errorf("latest height: %w", err)
	}
	sinceHeight := StartHeight(latest, t.cfg.DaysWithin, t.cfg.BlockIntervalSeconds)
	t.logger.Info("trace started",
		zap.Int("seed_count", len(frontier)),
		zap.Uint("depth", t.cfg.Depth),
		zap.Uint64("latest_height", latest),
		zap.Uint64("since_height", sinceHeight),
	)

	visited := visitedSet{}
	for depth := t.cfg.Depth; depth > 0; depth-- {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		sources := visited.unvisited(frontier)
		if len(sources) == 0 {
			t.logger.Info("frontier exhausted", zap.Int("round", len(report)))
			break
		}

		started := time.Now()
		res, err := t.round.run(ctx, sources, sinceHeight)
		t.metrics.ObserveRound(err, len(sources), len(res.report.Entries), started)
		if err != nil {
			t.logger.Error("round failed", zap.Int("round", len(report)), zap.Error(err))
			return report, fmt.Errorf("round %d: %w", len(report), err)
		}
		visited.add(sources...)
		report = append(report, res.report)
		frontier = res.frontier

		t.logger.Info("round finished",
			zap.Int("round", len(report)-1),
			zap.Int("source_count", len(sources)),
			zap.Uint64("receiver_count", res.report.ReceiverCnt),
			zap.Duration("duration", time.Since(started)),
		)
	}
	return report, nil
}
