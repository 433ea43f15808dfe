package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"livesales/config"
	deliverycontext "livesales/internal/delivery/context"
	"livesales/internal/domain/entitlement"
	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogBuffer() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func TestRequestScope_CarriesAccountFields(t *testing.T) {
	logger, buf := newLogBuffer()
	tracker := entitlement.NewTracker(entity.Account{IsPro: true, CurrencySymbol: "€"}, entitlement.Limits{MaxFreeOrders: 10, MaxFreeExports: 1})

	e := echo.New()
	e.Use(NewRequestScopeMiddleware(logger, tracker).Process)
	e.GET("/orders", func(c echo.Context) error {
		deliverycontext.Logger(c.Request().Context(), nil).Info("listing")

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(deliverycontext.HeaderRequestID, "live-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "live-42", rec.Header().Get(deliverycontext.HeaderRequestID))
	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "live-42", lines[0]["request_id"])
	assert.Equal(t, "pro", lines[0]["plan"])
	assert.Equal(t, "€", lines[0]["currency"])
}

func TestRequestScope_ReplacesUnsafeRequestID(t *testing.T) {
	logger, _ := newLogBuffer()

	e := echo.New()
	e.Use(NewRequestScopeMiddleware(logger, nil).Process)
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = deliverycontext.RequestID(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderRequestID, "two words")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.NotEqual(t, "two words", seen)
	assert.True(t, deliverycontext.ValidRequestID(seen))
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderRequestID))
}

func TestLogger_StatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		debug      bool
		handler    echo.HandlerFunc
		wantLogged bool
		wantStatus float64
		wantLevel  string
	}{
		{
			name:       "debug logs success with route",
			debug:      true,
			handler:    func(c echo.Context) error { return c.String(http.StatusCreated, "ok") },
			wantLogged: true,
			wantStatus: http.StatusCreated,
			wantLevel:  "INFO",
		},
		{
			name:       "domain error status",
			debug:      true,
			handler:    func(echo.Context) error { return domainerrors.ErrOrderLimitReached },
			wantLogged: true,
			wantStatus: float64(domainerrors.ErrOrderLimitReached.HTTPCode()),
			wantLevel:  "WARN",
		},
		{
			name:       "quiet mode skips client errors",
			handler:    func(echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) },
			wantLogged: false,
		},
		{
			name:       "quiet mode keeps server errors",
			handler:    func(echo.Context) error { return domainerrors.NewDatabaseExecuteError(assert.AnError, "boom") },
			wantLogged: true,
			wantStatus: http.StatusInternalServerError,
			wantLevel:  "ERROR",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newLogBuffer()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			e.Use(NewRequestScopeMiddleware(logger, nil).Process)
			e.Use(NewLoggerMiddleware(logger, cfg).Handle)
			e.POST("/catalogs/:id", tt.handler)

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/catalogs/abc", nil))

			lines := logLines(t, buf)
			if !tt.wantLogged {
				assert.Empty(t, lines)

				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantStatus, lines[0]["status"])
			assert.Equal(t, tt.wantLevel, lines[0]["level"])
			assert.Equal(t, "/catalogs/:id", lines[0]["route"])
			assert.NotEmpty(t, lines[0]["request_id"])
		})
	}
}
