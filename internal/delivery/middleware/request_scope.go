package middleware

import (
	"log/slog"

	deliverycontext "livesales/internal/delivery/context"
	"livesales/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountSource reports the seller account at the moment a request arrives.
type AccountSource interface {
	Snapshot() entity.Account
}

// RequestScopeMiddleware assigns every request an id and a child logger. When an
// AccountSource is set the logger also carries the plan and currency, so a line
// like "Order created" can be read without looking up the account.
type RequestScopeMiddleware struct {
	logger   *slog.Logger
	accounts AccountSource
}

// NewRequestScopeMiddleware builds the middleware. accounts may be nil.
func NewRequestScopeMiddleware(logger *slog.Logger, accounts AccountSource) *RequestScopeMiddleware {
	return &RequestScopeMiddleware{
		logger:   logger,
		accounts: accounts,
	}
}

func (m *RequestScopeMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderRequestID)
		if !deliverycontext.ValidRequestID(requestID) {
			requestID = uuid.NewString()
		}
		c.Response().Header().Set(deliverycontext.HeaderRequestID, requestID)

		deliverycontext.Bind(c, requestID, m.logger.With(m.attrs(requestID)...))

		return next(c)
	}
}

func (m *RequestScopeMiddleware) attrs(requestID string) []any {
	attrs := []any{slog.String("request_id", requestID)}
	if m.accounts == nil {
		return attrs
	}

	account := m.accounts.Snapshot()
	plan := "free"
	if account.IsPro {
		plan = "pro"
	}

	return append(attrs, slog.String("plan", plan), slog.String("currency", account.CurrencySymbol))
}
