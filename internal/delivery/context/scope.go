// Package context carries request-scoped values (request id, logger) from the
// delivery layer down to the use cases and out again through published events.
package context

import (
	"context"
	"log/slog"
	"unicode"

	"github.com/labstack/echo/v4"
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
)

// HeaderRequestID is echoed back on every response and forwarded with sales events.
const HeaderRequestID = "X-Request-Id"

const maxRequestIDLength = 64

// ValidRequestID reports whether a caller-supplied id is safe to log and echo back.
func ValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

// EchoRequestID returns the id the scope middleware stored on c, or "".
func EchoRequestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)

	return id
}

func setEchoRequestID(c echo.Context, id string) {
	c.Set("request_id", id)
}

// RequestID returns the request id carried by ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// Logger returns the request-scoped logger, falling back when ctx has none.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Bind stores the request id and logger on both the echo context and the
// request's context.Context so handlers and use cases see the same scope.
func Bind(c echo.Context, requestID string, logger *slog.Logger) {
	setEchoRequestID(c, requestID)

	ctx := WithLogger(WithRequestID(c.Request().Context(), requestID), logger)
	c.SetRequest(c.Request().WithContext(ctx))
}
