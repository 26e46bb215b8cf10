package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProduct(id uint, price float64) Product {
	return Product{
		ID:            id,
		Name:          "product",
		Price:         price,
		OriginalPrice: price,
	}
}

func TestCartAddItem(t *testing.T) {
	t.Run("appends new item", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct(1, 10), 2)

		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("increments existing item", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct(1, 10), 2)
		cart.AddItem(testProduct(1, 10), 3)

		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("quantity below one defaults to one", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct(1, 10), 0)

		assert.Equal(t, 1, cart.Count())
	})
}

func TestCartCount(t *testing.T) {
	cart := &Cart{}
	assert.Equal(t, 0, cart.Count())

	cart.AddItem(testProduct(1, 10), 2)
	cart.AddItem(testProduct(2, 5), 1)
	assert.Equal(t, 3, cart.Count())

	cart.RemoveItem(1)
	assert.Equal(t, 1, cart.Count())

	cart.RemoveItem(2)
	assert.Equal(t, 0, cart.Count())
	assert.GreaterOrEqual(t, cart.Count(), 0)
}

func TestCartSetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		qty       int
		wantItems int
		wantCount int
	}{
		{name: "positive quantity replaces", qty: 7, wantItems: 1, wantCount: 7},
		{name: "zero removes the item", qty: 0, wantItems: 0, wantCount: 0},
		{name: "negative removes the item", qty: -5, wantItems: 0, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{}
			cart.AddItem(testProduct(1, 10), 2)
			cart.SetQuantity(1, tt.qty)

			assert.Len(t, cart.Items, tt.wantItems)
			assert.Equal(t, tt.wantCount, cart.Count())
		})
	}

	t.Run("unknown product is a no-op", func(t *testing.T) {
		cart := &Cart{}
		cart.AddItem(testProduct(1, 10), 2)
		cart.SetQuantity(99, 5)

		assert.Equal(t, 2, cart.Count())
	})
}

func TestCartSubtotalCommutative(t *testing.T) {
	// {A:2,B:1} then {A:1} must equal {A:3,B:1} added directly.
	a := testProduct(1, 12.50)
	b := testProduct(2, 4.25)

	first := &Cart{}
	first.AddItem(a, 2)
	first.AddItem(b, 1)
	first.AddItem(a, 1)

	second := &Cart{}
	second.AddItem(a, 3)
	second.AddItem(b, 1)

	assert.InDelta(t, first.Subtotal(), second.Subtotal(), 1e-9)
	assert.InDelta(t, 3*12.50+4.25, first.Subtotal(), 1e-9)
}

func TestCartClear(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct(1, 10), 2)
	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.Count())
	assert.Zero(t, cart.Subtotal())
}
