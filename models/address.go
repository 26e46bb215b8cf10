package models

import "time"

// Address belongs to one user. Orders copy the fields they need at
// checkout, so editing or deleting an address never rewrites history.
type Address struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string    `gorm:"index;not null" json:"user_id"`
	Name       string    `gorm:"not null" json:"name"`
	Line       string    `json:"line"` // house / building / street
	Area       string    `json:"area"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
}
