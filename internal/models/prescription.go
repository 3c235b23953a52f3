package models

// Prescription represents one prescribed medicine attached to a medical record
type Prescription struct {
	BaseModel
	RecordID     string `gorm:"size:36;index" json:"recordId"`
	Medicine     string `gorm:"size:255;not null" json:"medicine"`
	Dosage       string `gorm:"size:100" json:"dosage"`
	Instructions string `gorm:"type:text" json:"instructions"`
}
