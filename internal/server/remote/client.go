// Package remote talks to the image analysis and recipe HTTP services.
// Every call is a single attempt: failures come back as
// *common.RemoteServiceError and are never retried here.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/freshify/internal/common"
	"github.com/dmitrijs2005/freshify/internal/logging"
	"github.com/dmitrijs2005/freshify/internal/server/metrics"
)

const maxErrorBody = 4 << 10

// Options are shared by both clients. A nil Limiter means no rate limit.
type Options struct {
	Timeout    time.Duration
	Limiter    *rate.Limiter
	Metrics    *metrics.Metrics
	Logger     logging.Logger
	HTTPClient *http.Client
}

// NewLimiter returns a limiter for perSecond requests with the given burst.
// Non-positive rates disable limiting.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

type poster struct {
	service string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	metrics *metrics.Metrics
	logger  logging.Logger
}

func newPoster(service, baseURL string, o Options) *poster {
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	limiter := o.Limiter
	if limiter == nil {
		limiter = NewLimiter(0, 0)
	}
	logger := o.Logger
	if logger == nil {
		logger = logging.Nop{}
	}
	return &poster{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		limiter: limiter,
		metrics: o.Metrics,
		logger:  logger.With("module", "remote", "service", service),
	}
}

// errorBody is how the services report a failure.
type errorBody struct {
	Error string `json:"error"`
}

func (p *poster) fail(msg string, err error) error {
	return &common.RemoteServiceError{Service: p.service, Message: msg, Err: err}
}

func (p *poster) post(ctx context.Context, path string, in, out any) (err error) {
	start := time.Now()
	defer func() {
		p.metrics.ObserveRemote(p.service, time.Since(start), err)
		if err != nil {
			p.logger.Warn(ctx, "remote call failed", "path", path, "error", err)
		}
	}()

	if err := p.limiter.Wait(ctx); err != nil {
		return p.fail("rate limiter", err)
	}

	body, err := json.Marshal(in)
	if err != nil {
		return p.fail("encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return p.fail("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "freshify/1.0")

	resp, err := p.http.Do(req)
	if err != nil {
		return p.fail("", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			return p.fail(fmt.Sprintf("status %d: %s", resp.StatusCode, eb.Error), nil)
		}
		return p.fail(fmt.Sprintf("status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return p.fail("malformed response", err)
	}
	return nil
}
