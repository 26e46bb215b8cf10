package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryFeeFor(t *testing.T) {
	settings := StoreSettings{Key: SettingsKey, DeliveryFee: 5, FreeDeliveryThreshold: 50}

	assert.Equal(t, 5.0, settings.DeliveryFeeFor(49.99))
	assert.Equal(t, 0.0, settings.DeliveryFeeFor(50))
	assert.Equal(t, 0.0, settings.DeliveryFeeFor(120))

	// Threshold of zero means the waiver is disabled.
	noWaiver := StoreSettings{DeliveryFee: 5, FreeDeliveryThreshold: 0}
	assert.Equal(t, 5.0, noWaiver.DeliveryFeeFor(1000))
}

func TestPromoApply(t *testing.T) {
	tests := []struct {
		name         string
		promo        PromoCode
		subtotal     float64
		fee          float64
		wantSubtotal float64
		wantFee      float64
	}{
		{
			name:         "percentage",
			promo:        PromoCode{Code: "SAVE10", Type: PromoPercentage, Value: 10},
			subtotal:     100, fee: 5,
			wantSubtotal: 90, wantFee: 5,
		},
		{
			name:         "fixed",
			promo:        PromoCode{Code: "FLAT5", Type: PromoFixed, Value: 5},
			subtotal:     20, fee: 5,
			wantSubtotal: 15, wantFee: 5,
		},
		{
			name:         "fixed floors at zero",
			promo:        PromoCode{Code: "FLAT5", Type: PromoFixed, Value: 5},
			subtotal:     4, fee: 5,
			wantSubtotal: 0, wantFee: 5,
		},
		{
			name:         "free delivery",
			promo:        PromoCode{Code: "SHIPFREE", Type: PromoFreeDelivery},
			subtotal:     30, fee: 5,
			wantSubtotal: 30, wantFee: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, fee := tt.promo.Apply(tt.subtotal, tt.fee)
			assert.InDelta(t, tt.wantSubtotal, subtotal, 1e-9)
			assert.InDelta(t, tt.wantFee, fee, 1e-9)
		})
	}
}

func TestFindPromo(t *testing.T) {
	codes := []PromoCode{
		{Code: "SAVE10", Type: PromoPercentage, Value: 10},
		{Code: "FLAT5", Type: PromoFixed, Value: 5},
	}

	promo, err := FindPromo(codes, "FLAT5")
	require.NoError(t, err)
	assert.Equal(t, PromoFixed, promo.Type)

	// Matching is case-sensitive and exact.
	_, err = FindPromo(codes, "flat5")
	assert.ErrorIs(t, err, ErrPromoNotFound)

	_, err = FindPromo(codes, "NOPE")
	assert.ErrorIs(t, err, ErrPromoNotFound)
}
