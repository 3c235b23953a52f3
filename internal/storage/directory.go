package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clinic-care-server/internal/models"
)

// Directory resolves doctor and patient ids against their tables. It
// backs both directory interfaces of the scheduler.
type Directory struct {
	DB *gorm.DB
}

// NewDirectory creates a Directory.
func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{DB: db}
}

// GetDoctor returns a doctor profile, or (nil, nil) when the id is unknown.
func (d *Directory) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := d.DB.WithContext(ctx).First(&doctor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

// GetPatient returns a patient profile, or (nil, nil) when the id is unknown.
func (d *Directory) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	err := d.DB.WithContext(ctx).First(&patient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}
