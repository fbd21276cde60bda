package models

import (
	"time"
)

type Customer struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:100;not null"`
	ContactNumber string    `json:"contact_number" gorm:"size:15;not null"`
	Email         string    `json:"email" gorm:"size:255;not null"`
	Address       string    `json:"address" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
