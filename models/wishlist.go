package models

import "time"

// WishlistItem is set membership: one row per (user, product).
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_wishlist_user_product,unique;not null" json:"user_id"`
	ProductID uint      `gorm:"index:idx_wishlist_user_product,unique;not null" json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}
