package models

import "time"

// Farmer is a registered buyer, identified by Aadhaar number.
type Farmer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Aadhaar   string    `gorm:"uniqueIndex;size:12;not null" json:"aadhaar"`
	Name      string    `gorm:"not null" json:"name"`
	Village   string    `gorm:"not null" json:"village"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Orders []Order `gorm:"foreignKey:FarmerID" json:"orders,omitempty"`
}

// FarmerSummary is a farmer row with purchase aggregates, used by the
// admin listing.
type FarmerSummary struct {
	Farmer
	TotalOrders   int64      `json:"total_orders"`
	TotalSpent    float64    `json:"total_spent"`
	LastOrderDate *time.Time `json:"last_order_date,omitempty"`
}
