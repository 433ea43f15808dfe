package entity

import (
	"strings"

	domainerrors "livesales/internal/domain/errors"

	"github.com/google/uuid"
)

// Catalog slot limits.
const (
	MaxCatalogSlots     = 12
	InitialCatalogSlots = 4
)

// ProductCatalog is an ordered set of product slots shown as quick-add buttons during a live sale.
type ProductCatalog struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

// NewProductCatalog creates a catalog with the initial empty slots.
func NewProductCatalog(name string) ProductCatalog {
	products := make([]Product, 0, MaxCatalogSlots)
	for range InitialCatalogSlots {
		products = append(products, EmptyProduct())
	}

	return ProductCatalog{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(name),
		Products: products,
	}
}

// AddSlot appends an empty slot and returns it.
func (c *ProductCatalog) AddSlot() (Product, error) {
	if len(c.Products) >= MaxCatalogSlots {
		return Product{}, domainerrors.ErrCatalogFull.WithDetailsf("catalog holds at most %d products", MaxCatalogSlots)
	}
	slot := EmptyProduct()
	c.Products = append(c.Products, slot)

	return slot, nil
}

// RemoveSlot deletes the slot holding productID.
func (c *ProductCatalog) RemoveSlot(productID uuid.UUID) error {
	for i, p := range c.Products {
		if p.ID == productID {
			c.Products = append(c.Products[:i], c.Products[i+1:]...)

			return nil
		}
	}

	return domainerrors.ErrProductNotFound.WithDetailsf("product %s", productID)
}

// ReplaceProduct swaps the slot with the same ID for product.
func (c *ProductCatalog) ReplaceProduct(product Product) error {
	for i, p := range c.Products {
		if p.ID == product.ID {
			c.Products[i] = product

			return nil
		}
	}

	return domainerrors.ErrProductNotFound.WithDetailsf("product %s", product.ID)
}

// FindProduct returns the slot with the given ID.
func (c ProductCatalog) FindProduct(productID uuid.UUID) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == productID {
			return p, true
		}
	}

	return Product{}, false
}

// FindByBarcode returns the first configured product with a matching barcode.
func (c ProductCatalog) FindByBarcode(barcode string) (Product, bool) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return Product{}, false
	}
	for _, p := range c.Products {
		if !p.IsEmpty() && p.Barcode == barcode {
			return p, true
		}
	}

	return Product{}, false
}

// ConfiguredProducts returns the slots that are not empty, in slot order.
func (c ProductCatalog) ConfiguredProducts() []Product {
	out := make([]Product, 0, len(c.Products))
	for _, p := range c.Products {
		if !p.IsEmpty() {
			out = append(out, p)
		}
	}

	return out
}

// Equal compares the catalog and every slot by value.
func (c ProductCatalog) Equal(other ProductCatalog) bool {
	if c.ID != other.ID || c.Name != other.Name || len(c.Products) != len(other.Products) {
		return false
	}
	for i := range c.Products {
		if !c.Products[i].Equal(other.Products[i]) {
			return false
		}
	}

	return true
}
