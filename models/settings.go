package models

import "errors"

// SettingsKey is the primary key of the single store-settings row.
const SettingsKey = "store"

// Featured list bounds, matching what the homepage renders.
const (
	MaxFeaturedProducts   = 8
	MaxFeaturedCategories = 5
)

// StoreSettings is a keyed singleton.
type StoreSettings struct {
	Key                   string  `gorm:"primaryKey" json:"key"`
	DeliveryFee           float64 `json:"delivery_fee"`
	FreeDeliveryThreshold float64 `json:"free_delivery_threshold"`
}

type PromoType string

const (
	PromoPercentage   PromoType = "percentage"
	PromoFixed        PromoType = "fixed"
	PromoFreeDelivery PromoType = "free_delivery"
)

var ErrPromoNotFound = errors.New("promo code not found")

type PromoCode struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Code     string    `gorm:"uniqueIndex;not null" json:"code"` // matched case-sensitively
	Type     PromoType `gorm:"type:VARCHAR(20);not null" json:"type"`
	Value    float64   `json:"value"`
	Position int       `json:"position"`
}

// FeaturedProduct and FeaturedCategory are the admin-curated homepage
// lists, ordered by Position.
type FeaturedProduct struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProductID uint `gorm:"uniqueIndex" json:"product_id"`
	Position  int  `json:"position"`
}

type FeaturedCategory struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CategoryID uint `gorm:"uniqueIndex" json:"category_id"`
	Position   int  `json:"position"`
}

// DeliveryFeeFor resolves the fee for a subtotal: free once the
// threshold is configured (> 0) and reached, otherwise the flat fee.
func (s StoreSettings) DeliveryFeeFor(subtotal float64) float64 {
	if s.FreeDeliveryThreshold > 0 && subtotal >= s.FreeDeliveryThreshold {
		return 0
	}
	return s.DeliveryFee
}

// Apply evaluates one promo code against a subtotal and delivery fee
// and returns the adjusted pair. Percentage discounts the subtotal,
// Fixed subtracts with a floor at 0, FreeDelivery zeroes the fee.
func (p PromoCode) Apply(subtotal, deliveryFee float64) (float64, float64) {
	switch p.Type {
	case PromoPercentage:
		subtotal = subtotal * (1 - p.Value/100)
	case PromoFixed:
		subtotal -= p.Value
		if subtotal < 0 {
			subtotal = 0
		}
	case PromoFreeDelivery:
		deliveryFee = 0
	}
	return subtotal, deliveryFee
}

// FindPromo looks a code up by exact string match. No stacking: the
// checkout applies at most one code.
func FindPromo(codes []PromoCode, code string) (PromoCode, error) {
	for _, p := range codes {
		if p.Code == code {
			return p, nil
		}
	}
	return PromoCode{}, ErrPromoNotFound
}
