package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusProcessing     OrderStatus = "processing"       // placed, being prepared
	OrderStatusShipped        OrderStatus = "shipped"          // handed to the carrier
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery" // on the last leg
	OrderStatusDelivered      OrderStatus = "delivered"        // customer received it
	OrderStatusCanceled       OrderStatus = "canceled"         // terminal, from any non-terminal state
)

// statusRank orders the forward progression. Canceled and unknown
// statuses deliberately have no rank.
var statusRank = map[OrderStatus]int{
	OrderStatusProcessing:     0,
	OrderStatusShipped:        1,
	OrderStatusOutForDelivery: 2,
	OrderStatusDelivered:      3,
}

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// ParseOrderStatus maps a request string to a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(strings.TrimSpace(s))) {
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusOutForDelivery:
		return OrderStatusOutForDelivery, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCanceled:
		return OrderStatusCanceled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// ValidateTransition rejects regressions and any move out of a terminal
// state. Forward skips (processing → delivered) are allowed; canceling
// is allowed from every non-terminal state.
func ValidateTransition(from, to OrderStatus) error {
	if from == OrderStatusCanceled || from == OrderStatusDelivered {
		return ErrInvalidTransition
	}
	if to == OrderStatusCanceled {
		return nil
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return ErrInvalidStatus
	}
	toRank, ok := statusRank[to]
	if !ok {
		return ErrInvalidStatus
	}
	if toRank <= fromRank {
		return ErrInvalidTransition
	}
	return nil
}

// Order is a receipt: created once at checkout, after which only Status
// may change. Line items and the shipping address are copies, never
// references into the live catalog or address book.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderRef      string          `gorm:"uniqueIndex" json:"order_ref"`
	UserID        string          `gorm:"index;not null" json:"user_id"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Shipping      ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping"`
	Subtotal      float64         `json:"subtotal"`
	DeliveryFee   float64         `json:"delivery_fee"`
	Total         float64         `json:"total"`
	PromoCode     string          `json:"promo_code,omitempty"`
	PaymentMethod string          `json:"payment_method"` // e.g. "cod", "card" (mock)
	Status        OrderStatus     `gorm:"type:VARCHAR(20);default:'processing'" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
}

// ShippingAddress is the copy of the chosen address embedded in the
// order row.
type ShippingAddress struct {
	Name       string `json:"name"`
	Line       string `json:"line"`
	Area       string `json:"area"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// SnapshotAddress copies an address-book entry into order form.
func SnapshotAddress(a Address) ShippingAddress {
	return ShippingAddress{
		Name:       a.Name,
		Line:       a.Line,
		Area:       a.Area,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

// SnapshotCartItems converts cart lines into order lines. Prices come
// from the cart snapshot, not the live product table.
func SnapshotCartItems(items []CartItem) []OrderItem {
	out := make([]OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			UnitPrice:    item.ProductPrice,
			Quantity:     item.Quantity,
		})
	}
	return out
}
