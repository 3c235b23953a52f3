package models

// MedicalRecord represents the clinical outcome a doctor writes for a visit
type MedicalRecord struct {
	BaseModel
	AppointmentID       string `gorm:"size:36;uniqueIndex" json:"appointmentId"`
	DoctorID            string `gorm:"size:36;index" json:"doctorId"`
	PatientID           string `gorm:"size:36;index" json:"patientId"`
	CurrentSymptoms     string `gorm:"type:text" json:"currentSymptoms"`
	PhysicalExamination string `gorm:"type:text" json:"physicalExamination"`
	TreatmentPlan       string `gorm:"type:text" json:"treatmentPlan"`
	RecommendedTests    string `gorm:"type:text" json:"recommendedTests"`

	// Relations
	Appointment   Appointment    `gorm:"foreignKey:AppointmentID" json:"-"`
	Prescriptions []Prescription `gorm:"foreignKey:RecordID" json:"prescriptions,omitempty"`
}
