package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "livesales/internal/delivery/api/middleware"
	"livesales/internal/delivery/api/router/handler"
	"livesales/internal/delivery/api/validator"
	"livesales/internal/delivery/middleware"
	"livesales/internal/domain/analytics"
	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/repository"
	"livesales/internal/domain/service"
	mockUsecase "livesales/internal/mocks/usecase"
	"livesales/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo      *echo.Echo
	platform  *mockUsecase.MockPlatformUsecase
	catalog   *mockUsecase.MockCatalogUsecase
	order     *mockUsecase.MockOrderUsecase
	analytics *mockUsecase.MockAnalyticsUsecase
	account   *mockUsecase.MockAccountUsecase
	backup    *mockUsecase.MockBackupUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	api := &testAPI{
		echo:      echo.New(),
		platform:  mockUsecase.NewMockPlatformUsecase(t),
		catalog:   mockUsecase.NewMockCatalogUsecase(t),
		order:     mockUsecase.NewMockOrderUsecase(t),
		analytics: mockUsecase.NewMockAnalyticsUsecase(t),
		account:   mockUsecase.NewMockAccountUsecase(t),
		backup:    mockUsecase.NewMockBackupUsecase(t),
	}

	api.echo.Use(middleware.NewRequestScopeMiddleware(logger, nil).Process)
	api.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	api.echo.Validator = validator.New()

	NewRouter(RouterParams{
		PlatformHandler:  handler.NewPlatformHandler(handler.PlatformHandlerParams{PlatformUC: api.platform, Logger: logger}),
		CatalogHandler:   handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: api.catalog, Logger: logger}),
		OrderHandler:     handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: api.order, Logger: logger}),
		AnalyticsHandler: handler.NewAnalyticsHandler(handler.AnalyticsHandlerParams{AnalyticsUC: api.analytics, Logger: logger}),
		AccountHandler:   handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: api.account, Logger: logger}),
		BackupHandler:    handler.NewBackupHandler(handler.BackupHandlerParams{BackupUC: api.backup, Logger: logger}),
	}).RegisterRoutes(api.echo)

	return api
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	assert.NotEmpty(t, env.Meta.RequestID)

	return env
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()

	assert.Equal(t, status, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, code, env.Error.Code)

	return env
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	assertErrorCode(t, api.do(http.MethodGet, "/api/v1/nope", ""), http.StatusNotFound, "HTTP_ERROR")
}

func TestPlatforms(t *testing.T) {
	t.Run("list renders color attributes", func(t *testing.T) {
		api := newTestAPI(t)
		api.platform.EXPECT().ListPlatforms(mock.Anything).Return(entity.DefaultPlatforms(), nil)

		rec := api.do(http.MethodGet, "/api/v1/platforms", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []map[string]any
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		require.Len(t, got, len(entity.DefaultPlatforms()))
		assert.Contains(t, got[0], "attributes")
	})

	t.Run("create", func(t *testing.T) {
		api := newTestAPI(t)
		created := entity.Platform{ID: uuid.New(), Name: "Shopee", Icon: "bag", Color: entity.ColorOrange, IsCustom: true}
		api.platform.EXPECT().
			CreateCustomPlatform(mock.Anything, &usecase.CreatePlatformInput{Name: "Shopee", Icon: "bag", Color: entity.ColorOrange}).
			Return(&created, nil)

		rec := api.do(http.MethodPost, "/api/v1/platforms", `{"name":"Shopee","icon":"bag","color":"orange"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), created.ID.String())
	})

	t.Run("create rejects unknown color", func(t *testing.T) {
		api := newTestAPI(t)

		env := assertErrorCode(t, api.do(http.MethodPost, "/api/v1/platforms", `{"name":"Shopee","color":"mauve"}`),
			http.StatusBadRequest, "VALIDATION_ERROR")
		assert.Contains(t, env.Error.Message, "color")
	})

	t.Run("name taken carries details", func(t *testing.T) {
		api := newTestAPI(t)
		api.platform.EXPECT().CreateCustomPlatform(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrPlatformNameTaken.WithDetailsf("name %q", "TikTok"))

		env := assertErrorCode(t, api.do(http.MethodPost, "/api/v1/platforms", `{"name":"TikTok"}`),
			http.StatusConflict, "PLATFORM_NAME_TAKEN")
		assert.Equal(t, `name "TikTok"`, env.Error.Details)
	})

	t.Run("delete", func(t *testing.T) {
		api := newTestAPI(t)
		id := uuid.New()
		api.platform.EXPECT().DeleteCustomPlatform(mock.Anything, id).Return(nil)

		rec := api.do(http.MethodDelete, "/api/v1/platforms/"+id.String(), "")
		assert.Equal(t, http.StatusOK, rec.Code)

		assertErrorCode(t, api.do(http.MethodDelete, "/api/v1/platforms/not-a-uuid", ""), http.StatusBadRequest, "INVALID_ID")
	})

	t.Run("built-in is not deletable", func(t *testing.T) {
		api := newTestAPI(t)
		id := entity.BuiltinPlatformID(entity.PlatformTikTok)
		api.platform.EXPECT().DeleteCustomPlatform(mock.Anything, id).Return(domainerrors.ErrPlatformNotDeletable)

		env := assertErrorCode(t, api.do(http.MethodDelete, "/api/v1/platforms/"+id.String(), ""),
			http.StatusForbidden, "PLATFORM_NOT_DELETABLE")
		assert.Nil(t, env.Error.Details)
	})
}

func TestCatalogs(t *testing.T) {
	t.Run("update product applies defaults", func(t *testing.T) {
		api := newTestAPI(t)
		catalogID, productID := uuid.New(), uuid.New()
		api.catalog.EXPECT().
			UpdateProduct(mock.Anything, catalogID, mock.MatchedBy(func(in entity.ProductInput) bool {
				return in.ID == productID &&
					in.Name == "Mug" &&
					in.Price.Equal(decimal.RequireFromString("12.5")) &&
					in.Stock == 4 &&
					in.LowStockThreshold == entity.DefaultLowStockThreshold &&
					in.CriticalStockThreshold == 1 &&
					in.DiscountType == entity.DiscountNone
			})).
			Return(&entity.Product{ID: productID, Name: "Mug"}, nil)

		rec := api.do(http.MethodPut, "/api/v1/catalogs/"+catalogID.String()+"/products/"+productID.String(),
			`{"name":"Mug","price":12.5,"stock":4,"critical_stock_threshold":1}`)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("update product rejects negative stock", func(t *testing.T) {
		api := newTestAPI(t)

		assertErrorCode(t, api.do(http.MethodPut, "/api/v1/catalogs/"+uuid.NewString()+"/products/"+uuid.NewString(),
			`{"name":"Mug","price":1,"stock":-1}`), http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("create requires a name", func(t *testing.T) {
		api := newTestAPI(t)

		assertErrorCode(t, api.do(http.MethodPost, "/api/v1/catalogs", `{}`), http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("add slot to full catalog", func(t *testing.T) {
		api := newTestAPI(t)
		id := uuid.New()
		api.catalog.EXPECT().AddSlot(mock.Anything, id).Return(nil, domainerrors.ErrCatalogFull)

		assertErrorCode(t, api.do(http.MethodPost, "/api/v1/catalogs/"+id.String()+"/slots", ""),
			http.StatusConflict, "CATALOG_FULL")
	})

	t.Run("lookup", func(t *testing.T) {
		api := newTestAPI(t)
		found := &usecase.ProductLookup{CatalogID: uuid.New(), Product: entity.Product{ID: uuid.New(), Name: "Mug"}}
		api.catalog.EXPECT().LookupProduct(mock.Anything, "4006381333931").Return(found, nil)

		rec := api.do(http.MethodGet, "/api/v1/products/lookup?code=4006381333931", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), found.CatalogID.String())

		assertErrorCode(t, api.do(http.MethodGet, "/api/v1/products/lookup", ""), http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("label is png", func(t *testing.T) {
		api := newTestAPI(t)
		id := uuid.New()
		png := []byte{0x89, 'P', 'N', 'G'}
		api.catalog.EXPECT().GenerateProductLabel(mock.Anything, id).Return(png, nil)

		rec := api.do(http.MethodGet, "/api/v1/products/"+id.String()+"/label", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("stock alerts", func(t *testing.T) {
		api := newTestAPI(t)
		api.catalog.EXPECT().StockAlerts(mock.Anything).Return([]analytics.StockAlert{{Level: entity.StockCritical}}, nil)

		rec := api.do(http.MethodGet, "/api/v1/products/stock-alerts", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"level":"critical"`)
	})
}

func TestCreateOrder(t *testing.T) {
	platformID := entity.BuiltinPlatformID(entity.PlatformTikTok)

	t.Run("manual entry", func(t *testing.T) {
		api := newTestAPI(t)
		stored := &entity.Order{ID: uuid.New(), ProductName: "Scarf", Quantity: 2}
		api.order.EXPECT().
			CreateOrder(mock.Anything, mock.MatchedBy(func(in *usecase.CreateOrderInput) bool {
				return in.ProductID == nil &&
					in.ProductName == "Scarf" &&
					in.PricePerUnit != nil && in.PricePerUnit.Equal(decimal.RequireFromString("19.99")) &&
					in.PlatformID == platformID &&
					in.Source == entity.SourceWhatsApp &&
					in.PaymentStatus == entity.PaymentPending &&
					in.Quantity == 2
			})).
			Return(stored, nil)

		rec := api.do(http.MethodPost, "/api/v1/orders", `{
			"product_name": "Scarf",
			"price_per_unit": "19.99",
			"platform_id": "`+platformID.String()+`",
			"buyer_name": "Dana",
			"source": "WhatsApp",
			"payment_status": "pending",
			"quantity": 2
		}`)

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, string(decode(t, rec).Data), stored.ID.String())
	})

	t.Run("invalid bodies", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"missing quantity", `{"product_name":"A","platform_id":"` + platformID.String() + `"}`},
			{"zero quantity", `{"product_name":"A","platform_id":"` + platformID.String() + `","quantity":0}`},
			{"no product", `{"platform_id":"` + platformID.String() + `","quantity":1}`},
			{"bad platform", `{"product_name":"A","platform_id":"tiktok","quantity":1}`},
			{"unknown source", `{"product_name":"A","platform_id":"` + platformID.String() + `","quantity":1,"source":"Fax"}`},
			{"unknown payment status", `{"product_name":"A","platform_id":"` + platformID.String() + `","quantity":1,"payment_status":"maybe"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				api := newTestAPI(t)
				assertErrorCode(t, api.do(http.MethodPost, "/api/v1/orders", tt.body), http.StatusBadRequest, "VALIDATION_ERROR")
			})
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		api := newTestAPI(t)

		assertErrorCode(t, api.do(http.MethodPost, "/api/v1/orders", `{"quantity":`), http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("free tier exhausted", func(t *testing.T) {
		api := newTestAPI(t)
		api.order.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOrderLimitReached)

		assertErrorCode(t, api.do(http.MethodPost, "/api/v1/orders",
			`{"product_name":"A","price_per_unit":1,"platform_id":"`+platformID.String()+`","quantity":1}`),
			http.StatusPaymentRequired, "ORDER_LIMIT_REACHED")
	})

	t.Run("unexpected failure is hidden", func(t *testing.T) {
		api := newTestAPI(t)
		api.order.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, errors.New("disk on fire"))

		env := assertErrorCode(t, api.do(http.MethodPost, "/api/v1/orders",
			`{"product_name":"A","price_per_unit":1,"platform_id":"`+platformID.String()+`","quantity":1}`),
			http.StatusInternalServerError, "INTERNAL_ERROR")
		assert.NotContains(t, env.Error.Message, "disk")
	})
}

func TestListOrders(t *testing.T) {
	t.Run("filters from query", func(t *testing.T) {
		api := newTestAPI(t)
		platformID := uuid.New()
		wantTo := time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC)
		api.order.EXPECT().
			ListOrders(mock.Anything, mock.MatchedBy(func(f repository.OrderFilter) bool {
				return f.PlatformID != nil && *f.PlatformID == platformID &&
					f.From != nil && f.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) &&
					f.To != nil && f.To.Equal(wantTo) &&
					f.Fulfilled != nil && !*f.Fulfilled &&
					f.PaymentStatus == entity.PaymentPaid &&
					f.Limit == 10 && f.Offset == 20
			})).
			Return([]entity.Order{}, nil)

		rec := api.do(http.MethodGet, "/api/v1/orders?platform_id="+platformID.String()+
			"&from=2026-03-01&to=2026-03-31&fulfilled=false&payment_status=paid&limit=10&offset=20", "")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
	})

	t.Run("bad query", func(t *testing.T) {
		for _, q := range []string{"fulfilled=perhaps", "from=yesterday", "limit=ten", "platform_id=1"} {
			api := newTestAPI(t)
			assertErrorCode(t, api.do(http.MethodGet, "/api/v1/orders?"+q, ""), http.StatusBadRequest, "INVALID_QUERY")
		}
	})
}

func TestOrderStatusAndExport(t *testing.T) {
	t.Run("patch status", func(t *testing.T) {
		api := newTestAPI(t)
		id := uuid.New()
		api.order.EXPECT().
			UpdateOrderStatus(mock.Anything, id, mock.MatchedBy(func(in *usecase.UpdateOrderStatusInput) bool {
				return in.PaymentStatus != nil && *in.PaymentStatus == entity.PaymentPaid && in.IsFulfilled == nil
			})).
			Return(&entity.Order{ID: id, PaymentStatus: entity.PaymentPaid}, nil)

		rec := api.do(http.MethodPatch, "/api/v1/orders/"+id.String()+"/status", `{"payment_status":"paid"}`)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("order not found", func(t *testing.T) {
		api := newTestAPI(t)
		id := uuid.New()
		api.order.EXPECT().GetOrder(mock.Anything, id).Return(nil, domainerrors.ErrOrderNotFound)

		assertErrorCode(t, api.do(http.MethodGet, "/api/v1/orders/"+id.String(), ""), http.StatusNotFound, "ORDER_NOT_FOUND")
	})

	t.Run("export is a csv attachment", func(t *testing.T) {
		api := newTestAPI(t)
		api.order.EXPECT().ExportOrdersCSV(mock.Anything, repository.OrderFilter{}).
			Return(&usecase.OrderExport{Filename: "orders-20260314-183000.csv", Content: []byte("order_id\n"), Orders: 0}, nil)

		rec := api.do(http.MethodGet, "/api/v1/orders/export", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, `attachment; filename="orders-20260314-183000.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, "order_id\n", rec.Body.String())
	})

	t.Run("export limit", func(t *testing.T) {
		api := newTestAPI(t)
		api.order.EXPECT().ExportOrdersCSV(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrExportLimitReached)

		assertErrorCode(t, api.do(http.MethodGet, "/api/v1/orders/export", ""), http.StatusPaymentRequired, "EXPORT_LIMIT_REACHED")
	})
}

func TestAnalytics(t *testing.T) {
	t.Run("custom range implied by dates", func(t *testing.T) {
		api := newTestAPI(t)
		api.analytics.EXPECT().
			Dashboard(mock.Anything, mock.MatchedBy(func(q usecase.AnalyticsQuery) bool {
				return q.Period == analytics.PeriodCustom &&
					q.Range != nil &&
					q.Range.Start.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) &&
					q.Range.End.Equal(time.Date(2026, 3, 2, 23, 59, 59, 999999999, time.UTC)) &&
					q.PlatformID == nil
			})).
			Return(&analytics.Dashboard{Period: analytics.PeriodCustom}, nil)

		rec := api.do(http.MethodGet, "/api/v1/analytics/dashboard?start=2026-03-01&end=2026-03-02", "")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("period and platform", func(t *testing.T) {
		api := newTestAPI(t)
		platformID := uuid.New()
		api.analytics.EXPECT().
			PlatformBreakdown(mock.Anything, usecase.AnalyticsQuery{Period: analytics.PeriodWeek, PlatformID: &platformID}).
			Return([]analytics.PlatformStat{}, nil)

		rec := api.do(http.MethodGet, "/api/v1/analytics/platforms?period=WEEK&platform_id="+platformID.String(), "")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("top products limit", func(t *testing.T) {
		api := newTestAPI(t)
		api.analytics.EXPECT().TopProducts(mock.Anything, usecase.AnalyticsQuery{Period: analytics.PeriodAll}, 3).
			Return([]analytics.ProductStat{}, nil)

		assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/v1/analytics/products?limit=3", "").Code)
		assertErrorCode(t, api.do(http.MethodGet, "/api/v1/analytics/products?limit=-1", ""), http.StatusBadRequest, "INVALID_QUERY")
	})

	t.Run("daily and sources", func(t *testing.T) {
		api := newTestAPI(t)
		api.analytics.EXPECT().DailySeries(mock.Anything, usecase.AnalyticsQuery{Period: analytics.PeriodMonth}).
			Return([]analytics.DailyRevenue{}, nil)
		api.analytics.EXPECT().SourceBreakdown(mock.Anything, usecase.AnalyticsQuery{Period: analytics.PeriodToday}).
			Return([]analytics.SourceStat{}, nil)

		assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/v1/analytics/daily?period=month", "").Code)
		assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/v1/analytics/sources?period=today", "").Code)
	})

	t.Run("best day without sales", func(t *testing.T) {
		api := newTestAPI(t)
		api.analytics.EXPECT().BestDayThisMonth(mock.Anything, (*uuid.UUID)(nil)).Return(nil, nil)

		rec := api.do(http.MethodGet, "/api/v1/analytics/best-day", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", string(decode(t, rec).Data))
	})

	t.Run("bad queries", func(t *testing.T) {
		for _, q := range []string{"period=fortnight", "start=2026-03-01", "start=2026-03-05&end=2026-03-01", "platform_id=x"} {
			api := newTestAPI(t)
			assertErrorCode(t, api.do(http.MethodGet, "/api/v1/analytics/dashboard?"+q, ""), http.StatusBadRequest, "INVALID_QUERY")
		}
	})
}

func TestAccount(t *testing.T) {
	remaining := 5
	ent := &usecase.Entitlements{MaxFreeOrders: 20, RemainingFreeOrders: &remaining, CanAddOrder: true, CurrencySymbol: "$"}

	t.Run("get", func(t *testing.T) {
		api := newTestAPI(t)
		api.account.EXPECT().GetEntitlements(mock.Anything).Return(ent, nil)

		rec := api.do(http.MethodGet, "/api/v1/account", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"remaining_free_orders":5`)
	})

	t.Run("upgrade and currency", func(t *testing.T) {
		api := newTestAPI(t)
		api.account.EXPECT().UpgradeToPro(mock.Anything).Return(&usecase.Entitlements{IsPro: true}, nil)
		api.account.EXPECT().SetCurrencySymbol(mock.Anything, "€").Return(&usecase.Entitlements{CurrencySymbol: "€"}, nil)

		assert.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/v1/account/upgrade", "").Code)
		assert.Equal(t, http.StatusOK, api.do(http.MethodPut, "/api/v1/account/currency", `{"symbol":"€"}`).Code)
		assertErrorCode(t, api.do(http.MethodPut, "/api/v1/account/currency", `{}`), http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("reset", func(t *testing.T) {
		api := newTestAPI(t)
		api.account.EXPECT().ResetAllData(mock.Anything, false).Return(ent, nil).Once()
		api.account.EXPECT().ResetAllData(mock.Anything, true).Return(ent, nil).Once()

		assert.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/v1/account/reset", "").Code)
		assert.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/v1/account/reset", `{"delete_account":true}`).Code)
	})
}

func TestBackup(t *testing.T) {
	t.Run("export is a json attachment", func(t *testing.T) {
		api := newTestAPI(t)
		doc := []byte(`{"orders":[],"catalogs":[],"platforms":[],"exportDate":"2026-01-01T00:00:00Z"}`)
		api.backup.EXPECT().ExportBackup(mock.Anything).Return(doc, nil)

		rec := api.do(http.MethodGet, "/api/v1/backup", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `filename="livesales-backup-`)
		assert.JSONEq(t, string(doc), rec.Body.String())
	})

	t.Run("restore passes the raw body", func(t *testing.T) {
		api := newTestAPI(t)
		body := `{"orders":[],"catalogs":[],"platforms":[],"exportDate":1}`
		api.backup.EXPECT().RestoreBackup(mock.Anything, []byte(body)).Return(&usecase.RestoreResult{Platforms: 5}, nil)

		rec := api.do(http.MethodPost, "/api/v1/backup/restore", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"orders":0,"catalogs":0,"platforms":5}`, string(decode(t, rec).Data))
	})

	t.Run("corrupt restore", func(t *testing.T) {
		api := newTestAPI(t)
		api.backup.EXPECT().RestoreBackup(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrCorruptBackup.WithDetailsf("missing key %q", "orders"))

		env := assertErrorCode(t, api.do(http.MethodPost, "/api/v1/backup/restore", `{}`),
			http.StatusUnprocessableEntity, "CORRUPT_BACKUP")
		assert.Equal(t, `missing key "orders"`, env.Error.Details)

		assertErrorCode(t, api.do(http.MethodPost, "/api/v1/backup/restore", ""), http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("snapshots", func(t *testing.T) {
		api := newTestAPI(t)
		info := &service.SnapshotInfo{Name: "nightly", Size: 42}
		api.backup.EXPECT().SaveSnapshot(mock.Anything, "nightly").Return(info, nil)
		api.backup.EXPECT().ListSnapshots(mock.Anything).Return([]service.SnapshotInfo{*info}, nil)
		api.backup.EXPECT().RestoreSnapshot(mock.Anything, "nightly").Return(&usecase.RestoreResult{}, nil)
		api.backup.EXPECT().DeleteSnapshot(mock.Anything, "nightly").Return(nil)
		api.backup.EXPECT().DeleteSnapshot(mock.Anything, "gone").Return(domainerrors.ErrBackupNotFound)

		assert.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/v1/backup/snapshots", `{"name":"nightly"}`).Code)
		assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/v1/backup/snapshots", "").Code)
		assert.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/v1/backup/snapshots/nightly/restore", "").Code)
		assert.Equal(t, http.StatusOK, api.do(http.MethodDelete, "/api/v1/backup/snapshots/nightly", "").Code)
		assertErrorCode(t, api.do(http.MethodDelete, "/api/v1/backup/snapshots/gone", ""), http.StatusNotFound, "BACKUP_NOT_FOUND")
	})
}
