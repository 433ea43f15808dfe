package entity

import (
	"testing"

	domainerrors "livesales/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlatforms_StableIDs(t *testing.T) {
	first := DefaultPlatforms()
	second := DefaultPlatforms()

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	for _, p := range first {
		assert.False(t, p.IsCustom)
		assert.Equal(t, BuiltinPlatformID(p.Name), p.ID)
	}
}

func TestValidatePlatformName(t *testing.T) {
	existing := append(DefaultPlatforms(), Platform{Name: "Shopee", IsCustom: true})

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid", "Lazada", nil},
		{"empty", "   ", domainerrors.ErrPlatformNameInvalid},
		{"reserved", "all", domainerrors.ErrPlatformNameInvalid},
		{"reserved padded", "  ALL ", domainerrors.ErrPlatformNameInvalid},
		{"builtin clash", "tiktok", domainerrors.ErrPlatformNameTaken},
		{"custom clash", "SHOPEE", domainerrors.ErrPlatformNameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlatformName(tt.input, existing)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCustomPlatform(t *testing.T) {
	p, err := NewCustomPlatform(" Lazada ", "", "neon", DefaultPlatforms())
	require.NoError(t, err)

	assert.Equal(t, "Lazada", p.Name)
	assert.True(t, p.IsCustom)
	assert.Equal(t, ColorGray, p.Color)
	assert.NoError(t, p.CanDelete())
	assert.ErrorIs(t, DefaultPlatforms()[0].CanDelete(), domainerrors.ErrPlatformNotDeletable)
}

func TestColorAttributes_FallsBackToGray(t *testing.T) {
	assert.Equal(t, ColorAttributes(ColorGray), ColorAttributes("unknown"))
	assert.Equal(t, "#E1306C", ColorAttributes(ColorPink).Hex)
}
