// Package backup encodes the user's data set as a portable JSON document and keeps
// snapshots of it in a blob bucket.
package backup

import (
	"encoding/json"
	"strings"
	"time"

	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Codec converts between a Snapshot and the backup document.
type Codec struct {
	appVersion string
}

var _ service.BackupCodec = (*Codec)(nil)

// NewCodec returns a codec that stamps documents with appVersion. An empty version is omitted.
func NewCodec(appVersion string) *Codec {
	return &Codec{appVersion: appVersion}
}

// Serialize writes the snapshot as an indented JSON document.
func (c *Codec) Serialize(snapshot entity.Snapshot, exportedAt time.Time) ([]byte, error) {
	orders := make([]orderRecord, 0, len(snapshot.Orders))
	for _, o := range snapshot.Orders {
		orders = append(orders, encodeOrder(o))
	}
	catalogs := make([]catalogRecord, 0, len(snapshot.Catalogs))
	for _, cat := range snapshot.Catalogs {
		catalogs = append(catalogs, encodeCatalog(cat))
	}
	platforms := make([]platformRecord, 0, len(snapshot.Platforms))
	for _, p := range snapshot.Platforms {
		platforms = append(platforms, encodePlatform(p))
	}

	doc := document{
		Orders:     &orders,
		Catalogs:   &catalogs,
		Platforms:  &platforms,
		ExportDate: &Timestamp{Time: exportedAt},
		AppVersion: c.appVersion,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode backup document")
	}

	return data, nil
}

// Deserialize parses a backup document. Missing or malformed top-level keys and invalid
// records fail with ErrCorruptBackup; absent optional order fields take their defaults.
func (c *Codec) Deserialize(data []byte) (*service.DecodedBackup, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, corrupt("document is not valid JSON: %v", err)
	}

	switch {
	case doc.Orders == nil:
		return nil, corrupt("missing key %q", "orders")
	case doc.Catalogs == nil:
		return nil, corrupt("missing key %q", "catalogs")
	case doc.Platforms == nil:
		return nil, corrupt("missing key %q", "platforms")
	case doc.ExportDate == nil:
		return nil, corrupt("missing key %q", "exportDate")
	}

	out := &service.DecodedBackup{
		Snapshot: entity.Snapshot{
			Orders:    make([]entity.Order, 0, len(*doc.Orders)),
			Catalogs:  make([]entity.ProductCatalog, 0, len(*doc.Catalogs)),
			Platforms: make([]entity.Platform, 0, len(*doc.Platforms)),
		},
		ExportedAt: doc.ExportDate.Time,
		AppVersion: doc.AppVersion,
	}

	for i, rec := range *doc.Platforms {
		p, err := decodePlatform(rec)
		if err != nil {
			return nil, corrupt("platforms[%d]: %v", i, err)
		}
		out.Platforms = append(out.Platforms, p)
	}
	for i, rec := range *doc.Catalogs {
		cat, err := decodeCatalog(rec)
		if err != nil {
			return nil, corrupt("catalogs[%d]: %v", i, err)
		}
		out.Catalogs = append(out.Catalogs, cat)
	}
	for i, rec := range *doc.Orders {
		o, err := decodeOrder(rec)
		if err != nil {
			return nil, corrupt("orders[%d]: %v", i, err)
		}
		out.Orders = append(out.Orders, o)
	}

	return out, nil
}

func corrupt(format string, args ...any) error {
	return domainerrors.ErrCorruptBackup.WithDetailsf(format, args...)
}

func encodePlatform(p entity.Platform) platformRecord {
	id := p.ID

	return platformRecord{ID: &id, Name: p.Name, Icon: p.Icon, Color: string(p.Color), IsCustom: p.IsCustom}
}

func decodePlatform(rec platformRecord) (entity.Platform, error) {
	if rec.ID == nil || *rec.ID == uuid.Nil {
		return entity.Platform{}, errors.New("platform id is required")
	}
	if strings.TrimSpace(rec.Name) == "" {
		return entity.Platform{}, errors.New("platform name is required")
	}
	color := entity.ColorTag(rec.Color)
	if !color.IsValid() {
		color = entity.ColorGray
	}

	return entity.Platform{ID: *rec.ID, Name: rec.Name, Icon: rec.Icon, Color: color, IsCustom: rec.IsCustom}, nil
}

func encodeCatalog(c entity.ProductCatalog) catalogRecord {
	id := c.ID
	products := make([]productRecord, 0, len(c.Products))
	for _, p := range c.Products {
		pid := p.ID
		low, critical := p.LowStockThreshold, p.CriticalStockThreshold
		products = append(products, productRecord{
			ID:                     &pid,
			Name:                   p.Name,
			Price:                  Money{p.Price},
			Stock:                  p.Stock,
			LowStockThreshold:      &low,
			CriticalStockThreshold: &critical,
			DiscountType:           string(p.DiscountType),
			DiscountValue:          &Money{p.DiscountValue},
			Barcode:                p.Barcode,
			ImageData:              p.ImageData,
		})
	}

	return catalogRecord{ID: &id, Name: c.Name, Products: products}
}

func decodeCatalog(rec catalogRecord) (entity.ProductCatalog, error) {
	if rec.ID == nil {
		return entity.ProductCatalog{}, errors.New("catalog id is required")
	}
	if len(rec.Products) > entity.MaxCatalogSlots {
		return entity.ProductCatalog{}, errors.Errorf("catalog has %d products, at most %d allowed", len(rec.Products), entity.MaxCatalogSlots)
	}

	products := make([]entity.Product, 0, len(rec.Products))
	for i, pr := range rec.Products {
		if pr.ID == nil {
			return entity.ProductCatalog{}, errors.Errorf("products[%d]: id is required", i)
		}
		in := entity.ProductInput{
			ID:                     *pr.ID,
			Name:                   pr.Name,
			Price:                  pr.Price.Decimal,
			Stock:                  pr.Stock,
			LowStockThreshold:      entity.DefaultLowStockThreshold,
			CriticalStockThreshold: entity.DefaultCriticalStockThreshold,
			DiscountType:           entity.DiscountType(pr.DiscountType),
			Barcode:                pr.Barcode,
			ImageData:              pr.ImageData,
		}
		if pr.LowStockThreshold != nil {
			in.LowStockThreshold = *pr.LowStockThreshold
		}
		if pr.CriticalStockThreshold != nil {
			in.CriticalStockThreshold = *pr.CriticalStockThreshold
		}
		if pr.DiscountValue != nil {
			in.DiscountValue = pr.DiscountValue.Decimal
		}
		p, err := entity.NewProduct(in)
		if err != nil {
			return entity.ProductCatalog{}, errors.Wrapf(err, "products[%d]", i)
		}
		products = append(products, p)
	}

	return entity.ProductCatalog{ID: *rec.ID, Name: rec.Name, Products: products}, nil
}

func encodeOrder(o entity.Order) orderRecord {
	id, productID := o.ID, o.ProductID
	platform := encodePlatform(o.Platform)
	quantity := o.Quantity
	source := string(o.Source)
	status := string(o.PaymentStatus)
	phone, address := o.PhoneNumber, o.Address
	discounted, fulfilled := o.WasDiscounted, o.IsFulfilled

	rec := orderRecord{
		ID:             &id,
		ProductName:    o.ProductName,
		Barcode:        o.Barcode,
		BuyerName:      o.BuyerName,
		Platform:       &platform,
		Quantity:       &quantity,
		PricePerUnit:   &Money{o.PricePerUnit},
		Timestamp:      &Timestamp{Time: o.Timestamp},
		PhoneNumber:    &phone,
		Address:        &address,
		CustomerNotes:  o.CustomerNotes,
		OrderSourceRaw: &source,
		WasDiscounted:  &discounted,
		PaymentStatus:  &status,
		IsFulfilled:    &fulfilled,
	}
	if productID != uuid.Nil {
		rec.ProductID = &productID
	}

	return rec
}

// applyOrderDefaults fills every field that older app versions did not write. It is the
// only place schema evolution of orders is handled.
func applyOrderDefaults(rec *orderRecord) {
	if rec.OrderSourceRaw == nil {
		rec.OrderSourceRaw = rec.LegacyOrderSource
	}
	if rec.OrderSourceRaw == nil || *rec.OrderSourceRaw == "" {
		rec.OrderSourceRaw = ptr(string(entity.SourceLiveStream))
	}
	if !entity.OrderSource(*rec.OrderSourceRaw).IsValid() {
		rec.OrderSourceRaw = ptr(string(entity.SourceOther))
	}
	if rec.PhoneNumber == nil {
		rec.PhoneNumber = ptr("")
	}
	if rec.Address == nil {
		rec.Address = ptr("")
	}
	if rec.WasDiscounted == nil {
		rec.WasDiscounted = ptr(false)
	}
	if rec.PaymentStatus == nil || *rec.PaymentStatus == "" {
		rec.PaymentStatus = ptr(string(entity.PaymentUnset))
	}
	if rec.IsFulfilled == nil {
		rec.IsFulfilled = ptr(false)
	}
}

func decodeOrder(rec orderRecord) (entity.Order, error) {
	switch {
	case rec.ID == nil:
		return entity.Order{}, errors.New("order id is required")
	case rec.Platform == nil:
		return entity.Order{}, errors.New("order platform is required")
	case rec.Quantity == nil:
		return entity.Order{}, errors.New("order quantity is required")
	case rec.PricePerUnit == nil:
		return entity.Order{}, errors.New("order pricePerUnit is required")
	case rec.Timestamp == nil:
		return entity.Order{}, errors.New("order timestamp is required")
	}

	platform, err := decodePlatform(*rec.Platform)
	if err != nil {
		return entity.Order{}, err
	}

	applyOrderDefaults(&rec)

	in := entity.OrderInput{
		ID:            *rec.ID,
		ProductName:   rec.ProductName,
		Barcode:       rec.Barcode,
		BuyerName:     rec.BuyerName,
		PhoneNumber:   *rec.PhoneNumber,
		Address:       *rec.Address,
		CustomerNotes: rec.CustomerNotes,
		Source:        entity.OrderSource(*rec.OrderSourceRaw),
		Platform:      platform,
		Quantity:      *rec.Quantity,
		PricePerUnit:  rec.PricePerUnit.Decimal,
		WasDiscounted: *rec.WasDiscounted,
		PaymentStatus: entity.PaymentStatus(*rec.PaymentStatus),
		IsFulfilled:   *rec.IsFulfilled,
		Timestamp:     rec.Timestamp.Time,
	}
	if rec.ProductID != nil {
		in.ProductID = *rec.ProductID
	}

	return entity.NewOrder(in)
}

func ptr[T any](v T) *T {
	return &v
}
