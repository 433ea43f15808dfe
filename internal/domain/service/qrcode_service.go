package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for product label QR code generation and parsing
type QRCodeService interface {
	// GenerateProductLabel renders a PNG QR code identifying the product
	GenerateProductLabel(productID uuid.UUID) ([]byte, error)

	// ParseProductLabel extracts the product ID from a scanned label payload
	ParseProductLabel(qrData string) (uuid.UUID, error)
}
