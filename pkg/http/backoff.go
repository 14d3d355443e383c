package http

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"
)

// BackoffConfig controls how failed requests are retried.
type BackoffConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	// RetryOn lists the statuses worth retrying. Empty means 429 and any 5xx.
	RetryOn []int
}

// DefaultBackoff retries twice, starting at 200ms.
func DefaultBackoff() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:   2,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2,
	}
}

func (b *BackoffConfig) delay(attempt int) time.Duration {
	multiplier := b.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	d := time.Duration(float64(b.InitialDelay) * math.Pow(multiplier, float64(attempt)))
	if b.MaxDelay > 0 && d > b.MaxDelay {
		d = b.MaxDelay
	}
	return d
}

func (b *BackoffConfig) shouldRetry(status int, err error) bool {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return false
	}
	var statusErr *StatusError
	if err != nil && !errors.As(err, &statusErr) {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	if len(b.RetryOn) == 0 {
		return status == http.StatusTooManyRequests || status >= 500
	}
	for _, s := range b.RetryOn {
		if s == status {
			return true
		}
	}
	return false
}

// doRequestWithBackoff runs doRequest, retrying according to the request or client backoff.
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if backoff == nil {
		backoff = hc.backoff
	}

	fullURL := hc.buildURL(path)
	bodyLog := describeBody(body)
	hc.logger.LogRequest(method, fullURL, headers, bodyLog)

	attempt := 0
	for {
		start := time.Now()
		success, failure, status, respBody, err := hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
		latency := time.Since(start).Milliseconds()

		if err == nil {
			hc.logger.LogResponseSuccess(method, fullURL, headers, bodyLog, status, respBody, latency)
			return success, failure, status, nil
		}

		if backoff == nil || attempt >= backoff.MaxRetries || !backoff.shouldRetry(status, err) {
			hc.logger.LogResponseError(method, fullURL, headers, bodyLog, status, respBody, latency, err)
			return success, failure, status, err
		}

		attempt++
		hc.logger.LogRequestRetry(method, fullURL, headers, bodyLog, status, respBody, latency, err, attempt, backoff.MaxRetries)

		timer := time.NewTimer(backoff.delay(attempt - 1))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, nil, status, ctx.Err()
		case <-timer.C:
		}
	}
}

func describeBody(body any) string {
	switch b := body.(type) {
	case nil:
		return ""
	case string:
		return b
	case []byte:
		return string(b)
	default:
		return "<structured>"
	}
}
