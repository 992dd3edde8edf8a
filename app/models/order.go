package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single fertilizer sale. The order id doubles as the token
// number printed on the receipt.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	FarmerID    uint            `gorm:"index;not null" json:"farmer_id"`
	Farmer      Farmer          `gorm:"foreignKey:FarmerID" json:"farmer,omitempty"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DailyReport aggregates one civil day of orders.
type DailyReport struct {
	Date         time.Time       `json:"date"`
	TotalOrders  int64           `json:"total_orders"`
	TotalBags    int64           `json:"total_bags"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	AvgPerOrder  decimal.Decimal `json:"avg_per_order"`
	AvgBags      decimal.Decimal `json:"avg_bags_per_order"`
}
