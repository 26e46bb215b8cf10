package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus(" Shipped ")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, status)

	_, err = ParseOrderStatus("teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		wantErr error
	}{
		{name: "forward step", from: OrderStatusProcessing, to: OrderStatusShipped},
		{name: "forward skip", from: OrderStatusProcessing, to: OrderStatusDelivered},
		{name: "cancel from processing", from: OrderStatusProcessing, to: OrderStatusCanceled},
		{name: "cancel from out for delivery", from: OrderStatusOutForDelivery, to: OrderStatusCanceled},
		{name: "regression rejected", from: OrderStatusDelivered, to: OrderStatusProcessing, wantErr: ErrInvalidTransition},
		{name: "shipped back to processing rejected", from: OrderStatusShipped, to: OrderStatusProcessing, wantErr: ErrInvalidTransition},
		{name: "same status rejected", from: OrderStatusShipped, to: OrderStatusShipped, wantErr: ErrInvalidTransition},
		{name: "delivered is terminal", from: OrderStatusDelivered, to: OrderStatusCanceled, wantErr: ErrInvalidTransition},
		{name: "canceled is terminal", from: OrderStatusCanceled, to: OrderStatusShipped, wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSnapshotCartItems(t *testing.T) {
	items := []CartItem{
		{ProductID: 1, ProductName: "Mug", ProductImage: "/uploads/mug.png", ProductPrice: 10, Quantity: 2},
		{ProductID: 2, ProductName: "Card", ProductPrice: 3.5, Quantity: 1},
	}

	snapshot := SnapshotCartItems(items)
	require.Len(t, snapshot, 2)
	assert.Equal(t, "Mug", snapshot[0].ProductName)
	assert.Equal(t, 10.0, snapshot[0].UnitPrice)
	assert.Equal(t, 2, snapshot[0].Quantity)

	// Snapshot isolation: mutating the cart line afterwards must not
	// reach the order line.
	items[0].ProductPrice = 20
	items[0].ProductName = "Renamed"
	assert.Equal(t, 10.0, snapshot[0].UnitPrice)
	assert.Equal(t, "Mug", snapshot[0].ProductName)
}

func TestSnapshotAddress(t *testing.T) {
	addr := Address{
		ID:         7,
		UserID:     "u1",
		Name:       "Home",
		Line:       "12 Rose St",
		City:       "Pune",
		State:      "MH",
		PostalCode: "411001",
		Country:    "IN",
		Phone:      "999",
	}

	shipping := SnapshotAddress(addr)
	assert.Equal(t, "Home", shipping.Name)
	assert.Equal(t, "12 Rose St", shipping.Line)

	// The copy holds no reference back to the address row.
	addr.Line = "moved"
	assert.Equal(t, "12 Rose St", shipping.Line)
}
