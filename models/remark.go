package models

import (
	"time"
)

// ComplaintRemark is an append-only work note on a complaint. Remarks are
// never edited or deleted; they go away only with the owning complaint.
type ComplaintRemark struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ComplaintID uint      `json:"complaint_id" gorm:"not null;index"`
	EmployeeID  uint      `json:"employee_id" gorm:"not null"`
	Employee    Employee  `json:"employee"`
	Remark      string    `json:"remark" gorm:"not null"`
	Timestamp   time.Time `json:"timestamp" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the ComplaintRemark model
func (ComplaintRemark) TableName() string {
	return "complaint_remarks"
}
