package models

import (
	"time"
)

// Employee is the operational profile attached to a user with role=employee.
// Exactly one profile exists per user; deleting the profile keeps the user.
type Employee struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User        User      `json:"user" gorm:"constraint:OnDelete:CASCADE"`
	Phone       string    `json:"phone" gorm:"size:15;not null"`
	Designation string    `json:"designation" gorm:"size:100;not null"`
	Salary      float64   `json:"salary" gorm:"not null"`
	Address     *string   `json:"address"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
