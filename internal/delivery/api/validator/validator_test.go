package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string  `json:"name" validate:"required"`
	Color  string  `json:"color" validate:"omitempty,color_tag"`
	Source string  `json:"source" validate:"omitempty,order_source"`
	Status *string `json:"status" validate:"omitempty,payment_status"`
	Kind   string  `json:"kind" validate:"omitempty,discount_type"`
	Count  int     `json:"count" validate:"gte=1"`
}

func TestValidate(t *testing.T) {
	v := New()
	paid := "paid"

	require.NoError(t, v.Validate(&sample{Name: "a", Color: "teal", Source: "TikTok DM", Status: &paid, Count: 1}))
	require.NoError(t, v.Validate(&sample{Name: "a", Count: 1}))

	bogus := "later"
	err := v.Validate(&sample{Color: "mauve", Source: "Fax", Status: &bogus, Kind: "bogo", Count: 0})
	require.Error(t, err)
	for _, want := range []string{
		"name failed required",
		"color failed color_tag",
		"source failed order_source",
		"status failed payment_status",
		"kind failed discount_type",
		"count failed gte=1",
	} {
		assert.Contains(t, err.Error(), want)
	}
}
