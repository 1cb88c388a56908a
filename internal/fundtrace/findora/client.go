package findora

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/pkg/safe"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var (
	// ErrUnexpectedStatus is returned for non-200 indexer responses.
	ErrUnexpectedStatus = errors.New("unexpected http status")
	// ErrMalformedResponse is returned when a response carries no result.
	ErrMalformedResponse = errors.New("malformed response")
)

// Options tunes request pacing and retries of a Client.
type Options struct {
	PageSize     int
	RPS          int
	Retries      int
	RetryBackoff time.Duration
}

// Client queries a tendermint indexer for account transaction history.
type Client struct {
	endpoint     string
	httpClient   *http.Client
	limiter      ratelimit.Limiter
	metrics      Metrics
	logger       *zap.Logger
	pageSize     int
	retries      int
	retryBackoff time.Duration
	sleep        func(context.Context, time.Duration) error
}

// Endpoint joins a server URL and RPC port, e.g. https://host + 26657 -> https://host:26657.
func Endpoint(serverURL string, port int) string {
	return strings.TrimRight(serverURL, "/") + ":" + strconv.Itoa(port)
}

// NewClient constructs a Client for an endpoint such as http://localhost:26657.
func NewClient(endpoint string, httpClient *http.Client, metrics Metrics, logger *zap.Logger, opts Options) (*Client, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("endpoint scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("endpoint missing host")
	}
	if metrics == nil {
		return nil, errors.New("ledger client metrics is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}

	limiter := ratelimit.NewUnlimited()
	if opts.RPS > 0 {
		limiter = ratelimit.New(opts.RPS)
	}

	return &Client{
		endpoint:     strings.TrimRight(endpoint, "/"),
		httpClient:   httpClient,
		limiter:      limiter,
		metrics:      metrics,
		logger:       logger.With(zap.String("endpoint", parsed.Host)),
		pageSize:     opts.PageSize,
		retries:      opts.Retries,
		retryBackoff: opts.RetryBackoff,
		sleep:        clock.SleepWithContext,
	}, nil
}

// LatestHeight returns the current chain height reported by the validators endpoint.
func (c *Client) LatestHeight(ctx context.Context) (uint64, error) {
	var res validatorsResponse
	err := c.retry(ctx, "validators", func() error {
		res = validatorsResponse{}
		return c.get(ctx, "validators", c.endpoint+"/validators?per_page=1", &res)
	})
	if err != nil {
		return 0, fmt.Errorf("query latest height: %w", err)
	}
	if res.Result == nil {
		return 0, fmt.Errorf("query latest height: %w%s", ErrMalformedResponse, describe(res.Error))
	}
	height, err := safe.ParseUint64("block_height", res.Result.BlockHeight)
	if err != nil {
		return 0, fmt.Errorf("query latest height: %w", err)
	}
	return height, nil
}

// FetchRecentOutgoing returns the successful transactions sent by addr above sinceHeight,
// newest first. Pages after the first that fail are treated as the end of the history.
func (c *Client) FetchRecentOutgoing(ctx context.Context, addr model.Address, sinceHeight uint64) ([]model.Tx, error) {
	logger := c.logger.With(zap.String("address", string(addr)))

	var first *txSearchResult
	err := c.retry(ctx, "tx_search", func() error {
		var err error
		first, err = c.searchPage(ctx, addr, 1)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("tx_search %s page 1: %w", addr, err)
	}
	total, err := safe.ParseUint64("total_count", first.TotalCount)
	if err != nil {
		return nil, fmt.Errorf("tx_search %s page 1: %w", addr, err)
	}
	collected, err := parsePage(first.Txs)
	if err != nil {
		return nil, fmt.Errorf("tx_search %s page 1: %w", addr, err)
	}

	for page := 2; len(collected) > 0; page++ {
		received, err := safe.Uint64(len(collected))
		if err != nil {
			return nil, err
		}
		oldest := collected[len(collected)-1].height
		if received >= total || oldest <= sinceHeight {
			break
		}

		res, err := c.searchPage(ctx, addr, page)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logger.Warn("tx_search page failed, truncating history",
				zap.Int("page", page),
				zap.Uint64("received", received),
				zap.Uint64("total", total),
				zap.Error(err),
			)
			c.metrics.ObserveTruncated()
			break
		}
		part, err := parsePage(res.Txs)
		if err != nil {
			return nil, fmt.Errorf("tx_search %s page %d: %w", addr, page, err)
		}
		if len(part) == 0 {
			break
		}
		collected = append(collected, part...)
	}

	txs := make([]model.Tx, 0, len(collected))
	for _, ptx := range collected {
		if ptx.code != 0 || ptx.height <= sinceHeight {
			continue
		}
		body, err := DecodeTransaction(ptx.body)
		if err != nil {
			// Undecodable bodies (e.g. EVM txs) carry nothing to trace.
			logger.Debug("treating undecodable tx as empty",
				zap.String("hash", ptx.hash),
				zap.Uint64("height", ptx.height),
				zap.Error(err),
			)
			body = model.Transaction{}
		}
		txs = append(txs, model.Tx{Height: ptx.height, Hash: ptx.hash, Transaction: body})
	}

	logger.Debug("fetched outgoing txs",
		zap.Uint64("total", total),
		zap.Int("received", len(collected)),
		zap.Int("kept", len(txs)),
	)
	return txs, nil
}

func (c *Client) searchPage(ctx context.Context, addr model.Address, page int) (*txSearchResult, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(c.pageSize))
	q.Set("query", fmt.Sprintf(`"addr.from.%s='y'"`, addr))
	q.Set("order_by", `"desc"`)
	q.Set("page", strconv.Itoa(page))

	var res txSearchResponse
	if err := c.get(ctx, "tx_search", c.endpoint+"/tx_search?"+q.Encode(), &res); err != nil {
		return nil, err
	}
	if res.Result == nil {
		return nil, fmt.Errorf("%w%s", ErrMalformedResponse, describe(res.Error))
	}
	return res.Result, nil
}

func (c *Client) get(ctx context.Context, operation, u string, out any) (err error) {
	c.limiter.Take()

	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: %w %d: %s", operation, ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

func (c *Client) retry(ctx context.Context, operation string, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if attempt >= c.retries || ctx.Err() != nil {
			return err
		}
		delay := clock.Backoff(c.retryBackoff, attempt+1)
		c.logger.Warn("ledger request failed, retrying",
			zap.String("operation", operation),
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)
		if err := c.sleep(ctx, delay); err != nil {
			return err
		}
	}
}

func parsePage(txs []rawTx) ([]pageTx, error) {
	out := make([]pageTx, 0, len(txs))
	for _, tx := range txs {
		height, err := safe.ParseUint64("height", tx.Height)
		if err != nil {
			return nil, fmt.Errorf("tx %s: %w", tx.Hash, err)
		}
		out = append(out, pageTx{
			height: height,
			code:   tx.TxResult.Code,
			hash:   tx.Hash,
			body:   tx.Tx,
		})
	}
	return out, nil
}

func describe(e *rpcError) string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf(": rpc error %d: %s %s", e.Code, e.Message, e.Data)
}
