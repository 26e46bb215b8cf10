package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]Review{}))

	reviews := []Review{{Rating: 5}, {Rating: 3}, {Rating: 4}}
	assert.InDelta(t, 4.0, AverageRating(reviews), 1e-9)

	assert.InDelta(t, 2.5, AverageRating([]Review{{Rating: 2}, {Rating: 3}}), 1e-9)
}

func TestProductNormalize(t *testing.T) {
	t.Run("discount above original clamps", func(t *testing.T) {
		p := Product{OriginalPrice: 10, DiscountedPrice: 15}
		p.Normalize()

		assert.Equal(t, 10.0, p.DiscountedPrice)
		assert.Equal(t, 10.0, p.Price)
	})

	t.Run("price mirrors discounted price", func(t *testing.T) {
		p := Product{OriginalPrice: 30, DiscountedPrice: 24}
		p.Normalize()

		assert.Equal(t, 24.0, p.Price)
		assert.LessOrEqual(t, p.DiscountedPrice, p.OriginalPrice)
	})

	t.Run("missing original falls back to discounted", func(t *testing.T) {
		p := Product{DiscountedPrice: 12}
		p.Normalize()

		assert.Equal(t, 12.0, p.OriginalPrice)
		assert.Equal(t, 12.0, p.Price)
	})
}
