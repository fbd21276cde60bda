package models

import (
	"time"

	"gorm.io/gorm"
)

type ComplaintLevel string

const (
	LevelOne   ComplaintLevel = "Level 1"
	LevelTwo   ComplaintLevel = "Level 2"
	LevelThree ComplaintLevel = "Level 3"
)

type ComplaintStatus string

const (
	StatusPending   ComplaintStatus = "Pending"
	StatusClosed    ComplaintStatus = "Closed"
	StatusNotClosed ComplaintStatus = "Not Closed"
)

// ParseComplaintLevel validates a level string against the closed set.
func ParseComplaintLevel(s string) (ComplaintLevel, bool) {
	switch ComplaintLevel(s) {
	case LevelOne, LevelTwo, LevelThree:
		return ComplaintLevel(s), true
	default:
		return "", false
	}
}

// ParseComplaintStatus validates a status string against the closed set.
func ParseComplaintStatus(s string) (ComplaintStatus, bool) {
	switch ComplaintStatus(s) {
	case StatusPending, StatusClosed, StatusNotClosed:
		return ComplaintStatus(s), true
	default:
		return "", false
	}
}

type Complaint struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	CustomerID   uint              `json:"customer_id" gorm:"not null;index"`
	Customer     Customer          `json:"customer" gorm:"constraint:OnDelete:CASCADE"`
	ProductID    uint              `json:"product_id" gorm:"not null;index"`
	Product      Product           `json:"product" gorm:"constraint:OnDelete:CASCADE"`
	Level        ComplaintLevel    `json:"level" gorm:"type:varchar(10);not null;check:level IN ('Level 1','Level 2','Level 3')"`
	Description  string            `json:"description" gorm:"not null"`
	LocationLat  *float64          `json:"location_lat"`
	LocationLng  *float64          `json:"location_lng"`
	Status       ComplaintStatus   `json:"status" gorm:"type:varchar(20);not null;default:'Pending';check:status IN ('Pending','Closed','Not Closed')"`
	AssignedToID *uint             `json:"assigned_to_id" gorm:"index"`
	AssignedTo   *Employee         `json:"assigned_to,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	CreatedByID  uint              `json:"created_by_id" gorm:"not null"`
	CreatedBy    User              `json:"created_by" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time         `json:"created_at" gorm:"autoCreateTime;index"`
	Remarks      []ComplaintRemark `json:"remarks,omitempty" gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE"`
	Photos       []ComplaintPhoto  `json:"photos,omitempty" gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Complaint model
func (Complaint) TableName() string {
	return "complaints"
}

// BeforeCreate is a GORM hook that runs before creating a complaint
func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = StatusPending
	}
	return nil
}

// IsAssigned reports whether the complaint has an assignee
func (c *Complaint) IsAssigned() bool {
	return c.AssignedToID != nil
}
