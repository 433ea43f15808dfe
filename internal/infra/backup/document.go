package backup

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// referenceDate is the epoch the mobile client uses for numeric dates.
var referenceDate = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// Timestamp is written as an RFC 3339 string and read from either an RFC 3339 string or
// a number of seconds since 2001-01-01T00:00:00Z.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return errors.New("date is null")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "failed to decode date string")
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return errors.Wrapf(err, "invalid date %q", s)
		}
		t.Time = parsed

		return nil
	}

	secs, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return errors.Wrapf(err, "invalid numeric date %s", data)
	}
	whole := int64(secs)
	frac := time.Duration((secs - float64(whole)) * float64(time.Second))
	t.Time = referenceDate.Add(time.Duration(whole) * time.Second).Add(frac)

	return nil
}

// Money is written as a bare JSON number and read from a number or a numeric string.
type Money struct {
	decimal.Decimal
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}

// document is the top-level backup object. Pointer fields distinguish a missing key from
// an empty collection.
type document struct {
	Orders     *[]orderRecord    `json:"orders"`
	Catalogs   *[]catalogRecord  `json:"catalogs"`
	Platforms  *[]platformRecord `json:"platforms"`
	ExportDate *Timestamp        `json:"exportDate"`
	AppVersion string            `json:"appVersion,omitempty"`
}

type platformRecord struct {
	ID       *uuid.UUID `json:"id"`
	Name     string     `json:"name"`
	Icon     string     `json:"icon"`
	Color    string     `json:"color"`
	IsCustom bool       `json:"isCustom"`
}

type productRecord struct {
	ID                     *uuid.UUID `json:"id"`
	Name                   string     `json:"name"`
	Price                  Money      `json:"price"`
	Stock                  int        `json:"stock"`
	LowStockThreshold      *int       `json:"lowStockThreshold,omitempty"`
	CriticalStockThreshold *int       `json:"criticalStockThreshold,omitempty"`
	DiscountType           string     `json:"discountType,omitempty"`
	DiscountValue          *Money     `json:"discountValue,omitempty"`
	Barcode                string     `json:"barcode,omitempty"`
	ImageData              []byte     `json:"imageData,omitempty"`
}

type catalogRecord struct {
	ID       *uuid.UUID      `json:"id"`
	Name     string          `json:"name"`
	Products []productRecord `json:"products"`
}

// orderRecord holds every field an order has carried across app versions. Fields added
// after the first release are pointers so applyOrderDefaults can tell absent from zero.
type orderRecord struct {
	ID           *uuid.UUID      `json:"id"`
	ProductID    *uuid.UUID      `json:"productId,omitempty"`
	ProductName  string          `json:"productName"`
	Barcode      string          `json:"barcode,omitempty"`
	BuyerName    string          `json:"buyerName"`
	Platform     *platformRecord `json:"platform"`
	Quantity     *int            `json:"quantity"`
	PricePerUnit *Money          `json:"pricePerUnit"`
	Timestamp    *Timestamp      `json:"timestamp"`

	PhoneNumber       *string `json:"phoneNumber,omitempty"`
	Address           *string `json:"address,omitempty"`
	CustomerNotes     *string `json:"customerNotes,omitempty"`
	OrderSourceRaw    *string `json:"orderSourceRaw,omitempty"`
	LegacyOrderSource *string `json:"orderSource,omitempty"`
	WasDiscounted     *bool   `json:"wasDiscounted,omitempty"`
	PaymentStatus     *string `json:"paymentStatus,omitempty"`
	IsFulfilled       *bool   `json:"isFulfilled,omitempty"`
}
