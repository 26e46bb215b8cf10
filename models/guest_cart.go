package models

import "time"

// GuestUser is a short-lived anonymous identity so shoppers can fill a
// cart before logging in.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GuestCart mirrors Cart but is keyed by guest id. Its items are merged
// into the user cart at login.
type GuestCart struct {
	CartID    uint            `gorm:"primaryKey" json:"cart_id"`
	GuestID   string          `gorm:"uniqueIndex" json:"guest_id"` // one cart per guest
	Items     []GuestCartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type GuestCartItem struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	CartID               uint      `gorm:"index" json:"cart_id"`
	ProductID            uint      `json:"product_id"`
	ProductName          string    `json:"product_name"`
	ProductImage         string    `json:"product_image"`
	ProductPrice         float64   `json:"product_price"`
	ProductOriginalPrice float64   `json:"product_original_price"`
	ProductStock         int       `json:"product_stock"`
	Quantity             int       `json:"quantity"`
	AddedAt              time.Time `json:"added_at"`
}
