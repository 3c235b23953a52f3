package scheduler

import (
	"context"
	"time"

	"clinic-care-server/internal/models"
)

// AppointmentStore is the persistence boundary of the scheduler. Get and
// Delete report an unknown id as (nil, nil); errors are reserved for
// store failures.
type AppointmentStore interface {
	GetAll(ctx context.Context) ([]models.Appointment, error)
	Get(ctx context.Context, id string) (*models.Appointment, error)
	Add(ctx context.Context, a *models.Appointment) error
	Update(ctx context.Context, a *models.Appointment) error
	Delete(ctx context.Context, id string) (*models.Appointment, error)
}

// DoctorDirectory resolves doctor ids to display data for view projection.
type DoctorDirectory interface {
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
}

// PatientDirectory resolves patient ids to display data for view projection.
type PatientDirectory interface {
	GetPatient(ctx context.Context, id string) (*models.Patient, error)
}

// DoctorViewAppointment is the projection a doctor sees on their schedule.
type DoctorViewAppointment struct {
	AppointmentID   string                   `json:"appointmentId"`
	PatientName     string                   `json:"patientName"`
	ContactNumber   string                   `json:"contactNumber"`
	AppointmentDate time.Time                `json:"appointmentDate"`
	Symptoms        string                   `json:"symptoms"`
	Status          models.AppointmentStatus `json:"status"`
	NatureOfVisit   string                   `json:"natureOfVisit"`
}

// PatientViewAppointment is the projection a patient sees on their visits.
type PatientViewAppointment struct {
	AppointmentID   string                   `json:"appointmentId"`
	DoctorName      string                   `json:"doctorName"`
	Speciality      string                   `json:"speciality"`
	AppointmentDate time.Time                `json:"appointmentDate"`
	Symptoms        string                   `json:"symptoms"`
	Status          models.AppointmentStatus `json:"status"`
	NatureOfVisit   string                   `json:"natureOfVisit"`
}
