package http

import (
	"go-weather/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status)
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}
func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
}
func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}
func (noopLogger) LogRequestRetry(string, string, map[string]string, string, int, string, int64, error, int, int) {
}

// ZapLogger writes outbound calls through pkg/log. Query strings and bodies are left out.
type ZapLogger struct {
	Name string
}

func (z ZapLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	log.Debug("outbound request", zap.String("client", z.Name), zap.String("method", method), zap.String("url", url))
}

func (z ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Debug("outbound response",
		zap.String("client", z.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (z ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64, err error) {
	log.Warn("outbound request failed",
		zap.String("client", z.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

func (z ZapLogger) LogRequestRetry(method, url string, _ map[string]string, _ string, httpStatus int, _ string, _ int64, err error, retryCount, maxRetries int) {
	log.Info("outbound request retry",
		zap.String("client", z.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err))
}
