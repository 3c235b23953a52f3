package scheduler

import "errors"

// Booking validation failures. The messages are part of the API contract
// and are surfaced to clients verbatim.
var (
	ErrInvalidAppointmentDateTime = errors.New("Invalid Appointment Date or Time")
	ErrConflictingAppointments    = errors.New("Doctor has Prebooked Appointment at the given time,Please Change your Appointment Time")
)
