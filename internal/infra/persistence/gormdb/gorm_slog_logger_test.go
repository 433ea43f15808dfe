package gormdb

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	l := newGormSlogLogger(base, false, 0).(*gormSlogLogger)
	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)
	assert.Equal(t, logger.Warn, l.level)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	debug := newGormSlogLogger(base, true, time.Hour)
	debug.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), `"sql":"SELECT 1"`)
}
