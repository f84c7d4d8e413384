package models

import "time"

// Department represents a department within a hospital. Department names are
// unique per hospital, but different hospitals may reuse the same name.
type Department struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;not null;uniqueIndex:idx_departments_name_hospital" json:"name"`
	HospitalID  uint      `gorm:"not null;uniqueIndex:idx_departments_name_hospital;index" json:"hospital_id"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"-"`
}

// TableName specifies the table name for Department model
func (Department) TableName() string {
	return "departments"
}
