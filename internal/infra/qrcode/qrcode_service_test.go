package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProductLabel(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateProductLabel(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateProductLabel_NilID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateProductLabel(uuid.Nil)
	assert.Error(t, err)
}

func TestQRCodeService_GenerateProductLabel_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "H")

		qrBytes, err := service.GenerateProductLabel(uuid.New())
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ParseProductLabel(t *testing.T) {
	service := NewQRCodeService(256, "M")
	productID := uuid.New()

	payload, err := json.Marshal(QRCodeData{ProductID: productID.String(), Type: labelType})
	require.NoError(t, err)

	parsedID, err := service.ParseProductLabel(string(payload))
	require.NoError(t, err)
	assert.Equal(t, productID, parsedID)
}

func TestQRCodeService_ParseProductLabel_Errors(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{"invalid json", "4006381333931", "failed to unmarshal QR code data"},
		{"wrong type", `{"product_id":"` + uuid.NewString() + `","type":"subscription"}`, "invalid QR code type"},
		{"bad uuid", `{"product_id":"not-a-uuid","type":"product"}`, "failed to parse product ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseProductLabel(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
