package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestModelNames tests the permitted enumeration members and their order
func TestModelNames(t *testing.T) {
	assert.Equal(t, []string{"alexnet", "resnet", "lenet"}, ModelNames())
}

// TestModelMessage tests the per-member messages
func TestModelMessage(t *testing.T) {
	assert.Equal(t, "Deep Learning FTW!", ModelAlexNet.Message())
	assert.Equal(t, "LeCNN all the images", ModelLeNet.Message())
	assert.Equal(t, "Have some residuals", ModelResNet.Message())
}

// TestPriceWithTax tests the tax-inclusive price computation
func TestPriceWithTax(t *testing.T) {
	price := 35.4
	tax := 3.2

	t.Run("WithTax", func(t *testing.T) {
		item := Item{Name: "Gadget", Price: &price, Tax: &tax}
		total, ok := item.PriceWithTax()
		assert.True(t, ok)
		assert.InDelta(t, 38.6, total, 1e-9)
	})

	t.Run("WithoutTax", func(t *testing.T) {
		item := Item{Name: "Gadget", Price: &price}
		_, ok := item.PriceWithTax()
		assert.False(t, ok)
	})

	t.Run("WithoutPrice", func(t *testing.T) {
		item := Item{Name: "Gadget", Tax: &tax}
		_, ok := item.PriceWithTax()
		assert.False(t, ok)
	})
}
