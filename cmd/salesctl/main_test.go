package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/infra/backup"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func writeBackup(t *testing.T) string {
	t.Helper()

	platform := entity.DefaultPlatforms()[0]
	mk := func(name string, qty int, price string, ts time.Time) entity.Order {
		o, err := entity.NewOrder(entity.OrderInput{
			ProductName:  name,
			Platform:     platform,
			Quantity:     qty,
			PricePerUnit: decimal.RequireFromString(price),
			Timestamp:    ts,
		})
		require.NoError(t, err)

		return o
	}

	snapshot := entity.Snapshot{
		Orders: []entity.Order{
			mk("Mug", 2, "10.00", testNow.Add(-time.Hour)),
			mk("Shirt", 1, "25.50", testNow.AddDate(0, 0, -3)),
			mk("Mug", 1, "10.00", testNow.AddDate(0, -2, 0)),
		},
		Catalogs:  []entity.ProductCatalog{},
		Platforms: entity.DefaultPlatforms(),
	}

	data, err := backup.NewCodec("1.0.0").Serialize(snapshot, testNow)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func TestRun_Validate(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"validate", "-file", writeBackup(t)}, &out, testNow))

	assert.Contains(t, out.String(), "ok: 3 orders, 0 catalogs, 3 platforms")
	assert.Contains(t, out.String(), "app version: 1.0.0")
	assert.Regexp(t, `sha256 [0-9a-f]{64}`, out.String())
}

func TestRun_ValidateCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"orders": []}`), 0o600))

	err := run([]string{"validate", "-file", path}, &bytes.Buffer{}, testNow)
	assert.ErrorIs(t, err, domainerrors.ErrCorruptBackup)
}

func TestRun_Summary(t *testing.T) {
	path := writeBackup(t)

	tests := []struct {
		name    string
		args    []string
		revenue string
		orders  string
	}{
		{"all", []string{"-file", path}, "55.50", "3"},
		{"week", []string{"-file", path, "-period", "week"}, "45.50", "2"},
		{"today", []string{"-file", path, "-period", "today", "-tz", "UTC"}, "20.00", "1"},
		{"custom range", []string{"-file", path, "-from", "2026-03-12", "-to", "2026-03-12"}, "25.50", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(append([]string{"summary"}, tt.args...), &out, testNow))

			assert.Regexp(t, `revenue\s+`+tt.revenue, out.String())
			assert.Regexp(t, `orders\s+`+tt.orders+`\n`, out.String())
		})
	}
}

func TestRun_SummaryBadFlags(t *testing.T) {
	path := writeBackup(t)

	for _, args := range [][]string{
		{"summary", "-file", path, "-period", "fortnight"},
		{"summary", "-file", path, "-tz", "Mars/Olympus"},
		{"summary", "-file", path, "-from", "2026-03-12"},
		{"summary", "-file", path, "-from", "2026-03-12", "-to", "2026-03-01"},
		{"summary"},
	} {
		assert.Error(t, run(args, &bytes.Buffer{}, testNow), args)
	}
}

func TestRun_Top(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"top", "-file", writeBackup(t), "-limit", "1"}, &out, testNow))

	assert.Contains(t, out.String(), "RANK")
	assert.Regexp(t, `1\s+Mug\s+3\s+30.00`, out.String())
	assert.NotContains(t, out.String(), "Shirt")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"frobnicate"}, &out, testNow))
	assert.Contains(t, out.String(), "usage: salesctl")

	assert.Error(t, run(nil, &bytes.Buffer{}, testNow))
}
