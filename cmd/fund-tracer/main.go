package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/classify"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/findora"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/report"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/service/tracer"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	DaysWithin   uint64        `short:"d" long:"days-within" env:"FINQ_DAYS_WITHIN" description:"only trace transactions from the last N days" default:"7"`
	Depth        uint          `short:"r" long:"recursive-depth" env:"FINQ_RECURSIVE_DEPTH" description:"number of rounds to trace" default:"2"`
	TargetAddrs  []string      `short:"t" long:"target-addr" description:"seed address, repeatable; defaults to the reserved address set"`
	Localhost    bool          `long:"localhost" description:"query a node on localhost"`
	ServerURL    string        `long:"server-url" env:"FINQ_SERVER_URL" description:"ledger server URL" default:"https://prod-mainnet.prod.findora.org"`
	RPCPort      int           `long:"rpc-port" env:"FINQ_RPC_PORT" description:"tendermint RPC port" default:"26657"`
	HTTPTimeout  time.Duration `long:"http-timeout" env:"FINQ_HTTP_TIMEOUT" description:"HTTP timeout for ledger requests" default:"30s"`
	Workers      int           `long:"workers" env:"FINQ_WORKERS" description:"parallel address fetches per round" default:"4"`
	RPS          int           `long:"rps" env:"FINQ_RPS" description:"ledger request rate limit, 0 disables" default:"20"`
	Retries      int           `long:"retries" env:"FINQ_RETRIES" description:"retries of the first history page" default:"2"`
	RetryBackoff time.Duration `long:"retry-backoff" env:"FINQ_RETRY_BACKOFF" description:"base retry backoff" default:"500ms"`
	MetricsAddr  string        `long:"metrics-addr" env:"FINQ_METRICS_ADDR" description:"address for metrics server, empty disables it"`
	Output       string        `long:"output" env:"FINQ_OUTPUT" description:"report format" choice:"json" choice:"dump" default:"json"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	seeds, err := parseSeeds(cfg.TargetAddrs, findora.NewAddressCodec())
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return
	}

	if err := run(ctx, cfg, seeds, os.Stdout, logger); err != nil {
		logger.Fatal("fund tracer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, seeds []model.Address, out io.Writer, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	serverURL := cfg.ServerURL
	if cfg.Localhost {
		serverURL = findora.LocalServerURL
	}
	endpoint := findora.Endpoint(serverURL, cfg.RPCPort)
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parse ledger endpoint: %w", err)
	}

	client, err := findora.NewClient(
		endpoint,
		&http.Client{Timeout: cfg.HTTPTimeout},
		metrics.NewLedgerClient(parsed.Host),
		logger.Named("ledger"),
		findora.Options{
			PageSize:     findora.DefaultPageSize,
			RPS:          cfg.RPS,
			Retries:      cfg.Retries,
			RetryBackoff: cfg.RetryBackoff,
		},
	)
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}

	classifier := classify.New(classify.Config{
		BurnKey:     findora.BurnPublicKey[:],
		StakingKey:  findora.StakingPublicKey[:],
		NativeAsset: findora.NativeAsset,
		Reserved:    findora.ReservedAddresses,
	})

	svc, err := tracer.NewTracer(
		tracer.Config{
			Depth:                cfg.Depth,
			DaysWithin:           cfg.DaysWithin,
			BlockIntervalSeconds: findora.BlockIntervalSeconds,
			Workers:              cfg.Workers,
		},
		client,
		findora.NewAddressCodec(),
		classifier,
		metrics.NewTracer(),
		logger.Named("tracer"),
	)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}

	rep, traceErr := svc.Trace(ctx, seeds)
	if err := writeReport(out, cfg.Output, report.Finalize(rep)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if traceErr != nil {
		return fmt.Errorf("trace: %w", traceErr)
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
