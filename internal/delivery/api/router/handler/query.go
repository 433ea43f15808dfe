package handler

import (
	"strconv"
	"strings"
	"time"

	"livesales/internal/domain/analytics"
	"livesales/internal/domain/entity"
	"livesales/internal/domain/repository"
	"livesales/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Errorf("invalid %s", name)
	}

	return id, nil
}

func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Errorf("invalid %s %q", name, raw)
	}

	return &id, nil
}

// queryTime accepts RFC 3339 or a bare date. A bare date used as an upper bound covers the
// whole day.
func queryTime(c echo.Context, name string, upper bool) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, errors.Errorf("invalid %s %q, want RFC 3339 or YYYY-MM-DD", name, raw)
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}

	return &t, nil
}

func queryBool(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.Errorf("invalid %s %q", name, raw)
	}

	return &b, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Errorf("invalid %s %q", name, raw)
	}

	return n, nil
}

func orderFilterFromQuery(c echo.Context) (repository.OrderFilter, error) {
	var (
		filter repository.OrderFilter
		err    error
	)
	if filter.PlatformID, err = queryUUID(c, "platform_id"); err != nil {
		return filter, err
	}
	if filter.From, err = queryTime(c, "from", false); err != nil {
		return filter, err
	}
	if filter.To, err = queryTime(c, "to", true); err != nil {
		return filter, err
	}
	if filter.Fulfilled, err = queryBool(c, "fulfilled"); err != nil {
		return filter, err
	}
	if filter.Limit, err = queryInt(c, "limit", 0); err != nil {
		return filter, err
	}
	if filter.Offset, err = queryInt(c, "offset", 0); err != nil {
		return filter, err
	}
	filter.PaymentStatus = entity.PaymentStatus(strings.TrimSpace(c.QueryParam("payment_status")))

	return filter, nil
}

func analyticsQueryFromRequest(c echo.Context) (usecase.AnalyticsQuery, error) {
	var q usecase.AnalyticsQuery

	period, err := analytics.ParsePeriod(c.QueryParam("period"))
	if err != nil {
		return q, err
	}
	q.Period = period

	start, err := queryTime(c, "start", false)
	if err != nil {
		return q, err
	}
	end, err := queryTime(c, "end", true)
	if err != nil {
		return q, err
	}
	switch {
	case start != nil && end != nil:
		if start.After(*end) {
			return q, errors.New("start must not be after end")
		}
		q.Range = &analytics.DateRange{Start: *start, End: *end}
		if q.Period == analytics.PeriodAll && c.QueryParam("period") == "" {
			q.Period = analytics.PeriodCustom
		}
	case start != nil || end != nil:
		return q, errors.New("start and end must be given together")
	}

	if q.PlatformID, err = queryUUID(c, "platform_id"); err != nil {
		return q, err
	}

	return q, nil
}
