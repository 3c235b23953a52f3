package models

import "time"

// Patient represents a patient profile
type Patient struct {
	BaseModel
	PatientName   string     `gorm:"size:100;not null" json:"patientName"`
	Age           int        `json:"age"`
	Gender        string     `gorm:"size:20" json:"gender"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	ContactNumber string     `gorm:"size:20" json:"contactNumber"`
	UserID        string     `gorm:"size:36;index" json:"userId"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
