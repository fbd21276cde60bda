package models

import (
	"time"
)

type Product struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Price     float64   `json:"price" gorm:"not null;check:price >= 0"`
	Tax       float64   `json:"tax" gorm:"not null;default:0;check:tax >= 0"` // in percent
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// TotalPrice returns the price including tax
func (p *Product) TotalPrice() float64 {
	return p.Price + (p.Price * p.Tax / 100)
}
