package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string         `gorm:"not null" json:"name"`
	ShortDescription string         `json:"short_description"`
	LongDescription  string         `json:"long_description"`
	Price            float64        `gorm:"not null" json:"price"`
	OriginalPrice    float64        `json:"original_price"`
	DiscountedPrice  float64        `json:"discounted_price"`
	Stock            int            `json:"stock"`
	Images           []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	CategoryName     string         `gorm:"index" json:"category_name"`
	DeliveryEstimate string         `json:"delivery_estimate"` // e.g. "3-5 days"
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
	Position  int    `json:"position"`
}

// Normalize clamps the discounted price to the original price and
// mirrors it into Price. Applied on every create/update so the three
// price fields can never disagree.
func (p *Product) Normalize() {
	if p.OriginalPrice <= 0 {
		p.OriginalPrice = p.DiscountedPrice
	}
	if p.DiscountedPrice <= 0 || p.DiscountedPrice > p.OriginalPrice {
		p.DiscountedPrice = p.OriginalPrice
	}
	p.Price = p.DiscountedPrice
}

// MainImage returns the first image URL, or "" when none exist.
func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
