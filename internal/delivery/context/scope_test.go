package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"3f2b7c1e-live", true},
		{"", false},
		{strings.Repeat("a", 65), false},
		{"has space", false},
		{"line\nbreak", false},
		{"émoji", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidRequestID(tt.id), "%q", tt.id)
	}
}

func TestBind(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	logger := slog.New(slog.DiscardHandler)

	assert.Empty(t, EchoRequestID(c))

	Bind(c, "req-7", logger)

	assert.Equal(t, "req-7", EchoRequestID(c))
	assert.Equal(t, "req-7", RequestID(c.Request().Context()))
	assert.Same(t, logger, Logger(c.Request().Context(), nil))
}

func TestLoggerFallback(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, Logger(context.Background(), fallback))
	assert.Empty(t, RequestID(context.Background()))
}
