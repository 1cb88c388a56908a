package tracer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/classify"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerSource provides the chain height and per-address outgoing history.
	LedgerSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchRecentOutgoing(ctx context.Context, addr model.Address, sinceHeight uint64) ([]model.Tx, error)
	}
	// AddressEncoder turns a recipient public key into its account address.
	AddressEncoder interface {
		Encode(pubKey []byte) (model.Address, error)
	}
	// OutputClassifier assigns the reporting kind and counted amount of an output.
	OutputClassifier interface {
		Classify(out model.Output, recipient model.Address) classify.Result
	}
	// TracerMetrics records round and fetch outcomes.
	TracerMetrics interface {
		ObserveRound(err error, sources, receivers int, started time.Time)
		ObserveFetch(err error)
	}
)
