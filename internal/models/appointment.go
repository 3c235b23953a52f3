package models

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "Scheduled"
	StatusUpcoming    AppointmentStatus = "Upcoming"
	StatusRescheduled AppointmentStatus = "Rescheduled"
	StatusCancelled   AppointmentStatus = "Cancelled"
	StatusCompleted   AppointmentStatus = "Completed"
)

// ParseAppointmentStatus maps a free-form status string onto the closed
// status set. Matching is case-insensitive; unknown values are rejected.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scheduled":
		return StatusScheduled, nil
	case "upcoming":
		return StatusUpcoming, nil
	case "rescheduled":
		return StatusRescheduled, nil
	case "cancelled":
		return StatusCancelled, nil
	case "completed":
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("unknown appointment status %q", s)
}

// Is reports whether the status equals other, ignoring case.
func (s AppointmentStatus) Is(other AppointmentStatus) bool {
	return strings.EqualFold(string(s), string(other))
}

// Appointment represents a scheduled clinic visit
type Appointment struct {
	BaseModel
	DoctorID            string            `gorm:"size:36;index" json:"doctorId"`
	PatientID           string            `gorm:"size:36;index" json:"patientId"`
	AppointmentDateTime time.Time         `gorm:"index" json:"appointmentDate"`
	SymptomsDescription string            `gorm:"type:text" json:"symptomsDescription"`
	NatureOfVisit       string            `gorm:"size:255" json:"natureOfVisit"`
	Status              AppointmentStatus `gorm:"size:20;default:'Scheduled'" json:"status"`

	// Relations
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"-"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}
