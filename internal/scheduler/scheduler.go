package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"clinic-care-server/internal/models"
)

// ConflictWindow is the minimum separation between two non-cancelled
// appointments of the same doctor. Five minutes keeps back-to-back
// bookings apart without reserving a whole consultation slot.
const ConflictWindow = 5 * time.Minute

// Scheduler owns appointment validation, conflict detection, status
// transitions and the doctor/patient view projections. Durable storage
// and id assignment belong to the AppointmentStore.
type Scheduler struct {
	store    AppointmentStore
	doctors  DoctorDirectory
	patients PatientDirectory
	log      *zap.Logger

	// now is swapped out in tests
	now func() time.Time

	mu          sync.Mutex
	doctorLocks map[string]*sync.Mutex
}

// New creates a Scheduler over the given store and directories.
func New(store AppointmentStore, doctors DoctorDirectory, patients PatientDirectory, log *zap.Logger) *Scheduler {
	return &Scheduler{
		store:       store,
		doctors:     doctors,
		patients:    patients,
		log:         log,
		now:         time.Now,
		doctorLocks: make(map[string]*sync.Mutex),
	}
}

// BookingRequest is a candidate appointment; the store assigns the id.
type BookingRequest struct {
	DoctorID            string
	PatientID           string
	AppointmentDateTime time.Time
	SymptomsDescription string
	NatureOfVisit       string
}

// doctorLock returns the mutex serializing bookings for one doctor.
// Holding it across the conflict check and the insert keeps two
// concurrent bookings from both passing the check.
func (s *Scheduler) doctorLock(doctorID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.doctorLocks[doctorID]
	if !ok {
		l = &sync.Mutex{}
		s.doctorLocks[doctorID] = l
	}
	return l
}

// AddAppointment validates a booking request and persists it with status
// Scheduled. It fails with ErrInvalidAppointmentDateTime when the
// requested time is not strictly in the future, and with
// ErrConflictingAppointments when the doctor already has a non-cancelled
// appointment within ConflictWindow of the requested time.
func (s *Scheduler) AddAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	if !req.AppointmentDateTime.After(s.now()) {
		return nil, ErrInvalidAppointmentDateTime
	}

	lock := s.doctorLock(req.DoctorID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].DoctorID != req.DoctorID {
			continue
		}
		if existing[i].Status.Is(models.StatusCancelled) {
			continue
		}
		gap := existing[i].AppointmentDateTime.Sub(req.AppointmentDateTime)
		if gap < 0 {
			gap = -gap
		}
		if gap < ConflictWindow {
			return nil, ErrConflictingAppointments
		}
	}

	appointment := &models.Appointment{
		DoctorID:            req.DoctorID,
		PatientID:           req.PatientID,
		AppointmentDateTime: req.AppointmentDateTime,
		SymptomsDescription: req.SymptomsDescription,
		NatureOfVisit:       req.NatureOfVisit,
		Status:              models.StatusScheduled,
	}
	if err := s.store.Add(ctx, appointment); err != nil {
		s.log.Error("failed to persist appointment", zap.Error(err))
		return nil, err
	}

	s.log.Info("appointment booked",
		zap.String("appointmentId", appointment.ID),
		zap.String("doctorId", appointment.DoctorID),
		zap.Time("at", appointment.AppointmentDateTime))
	return appointment, nil
}

// mutate loads an appointment, applies fn and writes it back. An unknown
// id yields (nil, nil); callers must check for absence.
func (s *Scheduler) mutate(ctx context.Context, id string, fn func(*models.Appointment)) (*models.Appointment, error) {
	appointment, err := s.store.Get(ctx, id)
	if err != nil || appointment == nil {
		return nil, err
	}
	fn(appointment)
	if err := s.store.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// UpdateAppointmentDoctor reassigns the appointment to another doctor.
// No conflict re-check is run on this path.
func (s *Scheduler) UpdateAppointmentDoctor(ctx context.Context, id, doctorID string) (*models.Appointment, error) {
	return s.mutate(ctx, id, func(a *models.Appointment) { a.DoctorID = doctorID })
}

// UpdateAppointmentPatient reassigns the appointment to another patient.
func (s *Scheduler) UpdateAppointmentPatient(ctx context.Context, id, patientID string) (*models.Appointment, error) {
	return s.mutate(ctx, id, func(a *models.Appointment) { a.PatientID = patientID })
}

// UpdateAppointmentDate moves the appointment to newDate. A date that is
// not strictly in the future is rejected silently with (nil, nil); the
// update path never raises a validation error.
func (s *Scheduler) UpdateAppointmentDate(ctx context.Context, id string, newDate time.Time) (*models.Appointment, error) {
	if !newDate.After(s.now()) {
		return nil, nil
	}
	return s.mutate(ctx, id, func(a *models.Appointment) { a.AppointmentDateTime = newDate })
}

// UpdateAppointmentStatus sets the status. Input has already been parsed
// against the closed status set at the boundary.
func (s *Scheduler) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	return s.mutate(ctx, id, func(a *models.Appointment) { a.Status = status })
}

// CancelAppointment marks the appointment Cancelled. Cancelling an
// already-cancelled appointment is a no-op, not an error.
func (s *Scheduler) CancelAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.mutate(ctx, id, func(a *models.Appointment) { a.Status = models.StatusCancelled })
}

// RescheduleAppointment marks the appointment Rescheduled and, when
// newDate is non-nil, moves it.
func (s *Scheduler) RescheduleAppointment(ctx context.Context, id string, newDate *time.Time) (*models.Appointment, error) {
	return s.mutate(ctx, id, func(a *models.Appointment) {
		a.Status = models.StatusRescheduled
		if newDate != nil {
			a.AppointmentDateTime = *newDate
		}
	})
}

// CompleteAppointment marks the appointment Completed.
func (s *Scheduler) CompleteAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.mutate(ctx, id, func(a *models.Appointment) { a.Status = models.StatusCompleted })
}

// DeleteAppointment removes the record and returns it, or (nil, nil)
// when the id is unknown.
func (s *Scheduler) DeleteAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.store.Delete(ctx, id)
}

// GetAppointment returns one appointment, or (nil, nil) when absent.
func (s *Scheduler) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.store.Get(ctx, id)
}

// GetAppointmentList returns every stored appointment.
func (s *Scheduler) GetAppointmentList(ctx context.Context) ([]models.Appointment, error) {
	return s.store.GetAll(ctx)
}

// GetUpcomingAppointments returns appointments whose time is in the
// future and whose status is Upcoming or Rescheduled. Scheduled is
// deliberately excluded from this view.
func (s *Scheduler) GetUpcomingAppointments(ctx context.Context) ([]models.Appointment, error) {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	upcoming := make([]models.Appointment, 0)
	for _, a := range all {
		if !a.AppointmentDateTime.After(now) {
			continue
		}
		if a.Status.Is(models.StatusUpcoming) || a.Status.Is(models.StatusRescheduled) {
			upcoming = append(upcoming, a)
		}
	}
	return upcoming, nil
}

// GetAppointmentByDoctor projects a doctor's appointments with patient
// display data. A failed patient lookup drops that row with a warning
// instead of aborting the whole batch.
func (s *Scheduler) GetAppointmentByDoctor(ctx context.Context, doctorID string) ([]DoctorViewAppointment, error) {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]DoctorViewAppointment, 0)
	for _, a := range all {
		if a.DoctorID != doctorID {
			continue
		}
		patient, err := s.patients.GetPatient(ctx, a.PatientID)
		if err != nil || patient == nil {
			s.log.Warn("skipping appointment with unresolvable patient",
				zap.String("appointmentId", a.ID),
				zap.String("patientId", a.PatientID),
				zap.Error(err))
			continue
		}
		views = append(views, DoctorViewAppointment{
			AppointmentID:   a.ID,
			PatientName:     patient.PatientName,
			ContactNumber:   patient.ContactNumber,
			AppointmentDate: a.AppointmentDateTime,
			Symptoms:        a.SymptomsDescription,
			Status:          a.Status,
			NatureOfVisit:   a.NatureOfVisit,
		})
	}
	return views, nil
}

// GetAppointmentByPatient projects a patient's appointments with doctor
// display data, mirroring GetAppointmentByDoctor.
func (s *Scheduler) GetAppointmentByPatient(ctx context.Context, patientID string) ([]PatientViewAppointment, error) {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]PatientViewAppointment, 0)
	for _, a := range all {
		if a.PatientID != patientID {
			continue
		}
		doctor, err := s.doctors.GetDoctor(ctx, a.DoctorID)
		if err != nil || doctor == nil {
			s.log.Warn("skipping appointment with unresolvable doctor",
				zap.String("appointmentId", a.ID),
				zap.String("doctorId", a.DoctorID),
				zap.Error(err))
			continue
		}
		views = append(views, PatientViewAppointment{
			AppointmentID:   a.ID,
			DoctorName:      doctor.DoctorName,
			Speciality:      doctor.Speciality,
			AppointmentDate: a.AppointmentDateTime,
			Symptoms:        a.SymptomsDescription,
			Status:          a.Status,
			NatureOfVisit:   a.NatureOfVisit,
		})
	}
	return views, nil
}
