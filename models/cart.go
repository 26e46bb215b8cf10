package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem snapshots the product fields it needs at add time. A later
// product edit changes future carts, not this line.
type CartItem struct {
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

// Count is the sum of item quantities, recomputed on every call.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal is Σ price×quantity over all items, recomputed on every call.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.ProductPrice * float64(item.Quantity)
	}
	return sum
}

// AddItem increments the quantity when the product is already in the
// cart, otherwise appends a new line built from the product snapshot.
func (c *Cart) AddItem(p Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		CartID:               c.CartID,
		ProductID:            p.ID,
		ProductName:          p.Name,
		ProductImage:         p.MainImage(),
		ProductPrice:         p.Price,
		ProductOriginalPrice: p.OriginalPrice,
		ProductStock:         p.Stock,
		Quantity:             qty,
		AddedAt:              time.Now(),
	})
}

// SetQuantity replaces an item's quantity. Zero or negative removes the
// line entirely; an unknown product id is a no-op.
func (c *Cart) SetQuantity(productID uint, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			return
		}
	}
}

// RemoveItem drops the matching line; no-op when absent.
func (c *Cart) RemoveItem(productID uint) {
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}
