package models

import (
	"time"
)

// ComplaintPhoto stores the secure URL of an evidence image uploaded for a
// complaint. The image itself lives in Cloudinary.
type ComplaintPhoto struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ComplaintID  uint      `json:"complaint_id" gorm:"not null;index"`
	UploadedByID uint      `json:"uploaded_by_id" gorm:"not null"`
	UploadedBy   Employee  `json:"uploaded_by"`
	URL          string    `json:"url" gorm:"size:512;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the ComplaintPhoto model
func (ComplaintPhoto) TableName() string {
	return "complaint_photos"
}
