package models

// Doctor represents a practitioner profile
type Doctor struct {
	BaseModel
	DoctorName    string  `gorm:"size:100;not null" json:"doctorName"`
	Speciality    string  `gorm:"size:100;index" json:"speciality"`
	Qualification string  `gorm:"size:100" json:"qualification"`
	Designation   string  `gorm:"size:100" json:"designation"`
	Experience    float64 `json:"experience"`
	UserID        string  `gorm:"size:36;index" json:"userId"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
