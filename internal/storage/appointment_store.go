package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clinic-care-server/internal/models"
)

// AppointmentStore is the gorm-backed implementation of the scheduler's
// persistence boundary.
type AppointmentStore struct {
	DB *gorm.DB
}

// NewAppointmentStore creates an AppointmentStore.
func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{DB: db}
}

// GetAll returns every appointment, oldest first.
func (s *AppointmentStore) GetAll(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.DB.WithContext(ctx).Order("appointment_date_time asc").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// Get returns one appointment, or (nil, nil) when the id is unknown.
func (s *AppointmentStore) Get(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.DB.WithContext(ctx).First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Add persists a new appointment; gorm's BeforeCreate hook assigns the id.
func (s *AppointmentStore) Add(ctx context.Context, a *models.Appointment) error {
	return s.DB.WithContext(ctx).Create(a).Error
}

// Update writes back a mutated appointment.
func (s *AppointmentStore) Update(ctx context.Context, a *models.Appointment) error {
	return s.DB.WithContext(ctx).Save(a).Error
}

// Delete removes an appointment and returns the removed record, or
// (nil, nil) when the id is unknown.
func (s *AppointmentStore) Delete(ctx context.Context, id string) (*models.Appointment, error) {
	removed, err := s.Get(ctx, id)
	if err != nil || removed == nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return removed, nil
}
