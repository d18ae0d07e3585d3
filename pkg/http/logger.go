package http

import (
	"go.uber.org/zap"
	"weather-view/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) LogRequest(string, string, map[string]string) {}

func (NopLogger) LogResponseSuccess(string, string, map[string]string, int, string, int64) {}

func (NopLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {}

// ZapLogger writes outbound calls through pkg/log. Response bodies are only logged at debug level.
type ZapLogger struct {
	Name string
}

func (z ZapLogger) LogRequest(method, url string, _ map[string]string) {
	log.Debug("outbound request",
		zap.String("client", z.Name),
		zap.String("method", method),
		zap.String("url", url))
}

func (z ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, httpStatus int, responseBody string, latency int64) {
	log.Info("outbound response",
		zap.String("client", z.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
	log.Debug("outbound response body", zap.String("client", z.Name), zap.String("body", responseBody))
}

func (z ZapLogger) LogResponseError(method, url string, _ map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Error("outbound request failed",
		zap.String("client", z.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}
