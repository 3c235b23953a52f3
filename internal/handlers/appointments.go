package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-care-server/internal/metrics"
	"clinic-care-server/internal/models"
	"clinic-care-server/internal/scheduler"
	"clinic-care-server/internal/utils"
)

// AppointmentHandler is the HTTP glue over the appointment scheduler.
type AppointmentHandler struct {
	Scheduler *scheduler.Scheduler
	Metrics   *metrics.Collector
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(s *scheduler.Scheduler, m *metrics.Collector) *AppointmentHandler {
	return &AppointmentHandler{Scheduler: s, Metrics: m}
}

// BookAppointmentRequest represents the request body for booking.
type BookAppointmentRequest struct {
	PatientID           string    `json:"patientId" binding:"required"`
	DoctorID            string    `json:"doctorId" binding:"required"`
	AppointmentDate     time.Time `json:"appointmentDate" binding:"required"`
	SymptomsDescription string    `json:"symptomsDescription" binding:"required"`
	NatureOfVisit       string    `json:"natureOfVisit" binding:"required"`
}

// BookAnAppointment creates an appointment after date and conflict
// validation.
func (h *AppointmentHandler) BookAnAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Scheduler.AddAppointment(c.Request.Context(), scheduler.BookingRequest{
		DoctorID:            req.DoctorID,
		PatientID:           req.PatientID,
		AppointmentDateTime: req.AppointmentDate,
		SymptomsDescription: req.SymptomsDescription,
		NatureOfVisit:       req.NatureOfVisit,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrInvalidAppointmentDateTime):
			utils.BadRequest(c, err.Error())
		case errors.Is(err, scheduler.ErrConflictingAppointments):
			h.Metrics.BookingConflicts.Inc()
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalServerError(c, "Failed to book appointment: "+err.Error())
		}
		return
	}

	h.Metrics.AppointmentsBooked.Inc()
	utils.Success(c, "Appointment booked successfully", appointment)
}

// respond maps a scheduler mutation result onto the response envelope:
// nil appointment means the id was unknown (or a past date was rejected
// on the update path) and becomes a 404.
func (h *AppointmentHandler) respond(c *gin.Context, appointment *models.Appointment, err error, message string) {
	if err != nil {
		utils.InternalServerError(c, "Appointment operation failed: "+err.Error())
		return
	}
	if appointment == nil {
		utils.NotFound(c, "Appointment not found")
		return
	}
	h.Metrics.AppointmentsTotal.WithLabelValues(string(appointment.Status)).Inc()
	utils.Success(c, message, appointment)
}

// StatusToCancelAppointment marks the appointment Cancelled.
func (h *AppointmentHandler) StatusToCancelAppointment(c *gin.Context) {
	appointment, err := h.Scheduler.CancelAppointment(c.Request.Context(), c.Query("id"))
	h.respond(c, appointment, err, "Appointment cancelled successfully")
}

// StatusToRescheduleAppointment marks the appointment Rescheduled
// without moving it.
func (h *AppointmentHandler) StatusToRescheduleAppointment(c *gin.Context) {
	appointment, err := h.Scheduler.RescheduleAppointment(c.Request.Context(), c.Query("id"), nil)
	h.respond(c, appointment, err, "Appointment rescheduled successfully")
}

// StatusToCompleteAppointment marks the appointment Completed.
func (h *AppointmentHandler) StatusToCompleteAppointment(c *gin.Context) {
	appointment, err := h.Scheduler.CompleteAppointment(c.Request.Context(), c.Query("id"))
	h.respond(c, appointment, err, "Appointment completed successfully")
}

// RescheduleAppointmentRequest represents the request body for moving an
// appointment to a new date.
type RescheduleAppointmentRequest struct {
	ID              string    `json:"id" binding:"required"`
	AppointmentDate time.Time `json:"appointmentDate" binding:"required"`
}

// RescheduleAppointment marks the appointment Rescheduled and moves it.
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	var req RescheduleAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	appointment, err := h.Scheduler.RescheduleAppointment(c.Request.Context(), req.ID, &req.AppointmentDate)
	h.respond(c, appointment, err, "Appointment rescheduled successfully")
}

// UpdateAppointmentDoctorRequest represents the request body for
// reassigning an appointment's doctor.
type UpdateAppointmentDoctorRequest struct {
	ID       string `json:"id" binding:"required"`
	DoctorID string `json:"doctorId" binding:"required"`
}

// UpdateDoctorIDInAppointments reassigns the appointment to another doctor.
func (h *AppointmentHandler) UpdateDoctorIDInAppointments(c *gin.Context) {
	var req UpdateAppointmentDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	appointment, err := h.Scheduler.UpdateAppointmentDoctor(c.Request.Context(), req.ID, req.DoctorID)
	h.respond(c, appointment, err, "Appointment doctor updated successfully")
}

// UpdateAppointmentPatientRequest represents the request body for
// reassigning an appointment's patient.
type UpdateAppointmentPatientRequest struct {
	ID        string `json:"id" binding:"required"`
	PatientID string `json:"patientId" binding:"required"`
}

// UpdatePatientIDInAppointments reassigns the appointment to another patient.
func (h *AppointmentHandler) UpdatePatientIDInAppointments(c *gin.Context) {
	var req UpdateAppointmentPatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	appointment, err := h.Scheduler.UpdateAppointmentPatient(c.Request.Context(), req.ID, req.PatientID)
	h.respond(c, appointment, err, "Appointment patient updated successfully")
}

// UpdateAppointmentStatusRequest represents the request body for a free
// status change. The status string is parsed against the closed status
// set before it reaches the scheduler.
type UpdateAppointmentStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// UpdateAppointmentStatus sets an arbitrary (but known) status.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	status, err := models.ParseAppointmentStatus(req.Status)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	appointment, err := h.Scheduler.UpdateAppointmentStatus(c.Request.Context(), req.ID, status)
	h.respond(c, appointment, err, "Appointment status updated successfully")
}

// UpdateAppointmentDateRequest represents the request body for moving an
// appointment without touching its status.
type UpdateAppointmentDateRequest struct {
	ID              string    `json:"id" binding:"required"`
	AppointmentDate time.Time `json:"appointmentDate" binding:"required"`
}

// UpdateAppointmentDate moves the appointment. A past date is rejected
// silently by the scheduler and surfaces as a 404 here.
func (h *AppointmentHandler) UpdateAppointmentDate(c *gin.Context) {
	var req UpdateAppointmentDateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	appointment, err := h.Scheduler.UpdateAppointmentDate(c.Request.Context(), req.ID, req.AppointmentDate)
	h.respond(c, appointment, err, "Appointment date updated successfully")
}

// DeleteAppointment removes the appointment and returns the removed record.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	appointment, err := h.Scheduler.DeleteAppointment(c.Request.Context(), c.Query("id"))
	if err != nil {
		utils.InternalServerError(c, "Failed to delete appointment: "+err.Error())
		return
	}
	if appointment == nil {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment deleted successfully", appointment)
}

// ViewAllTheAppointments lists every appointment.
func (h *AppointmentHandler) ViewAllTheAppointments(c *gin.Context) {
	appointments, err := h.Scheduler.GetAppointmentList(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// ViewUpcomingAppointments lists future appointments with status
// Upcoming or Rescheduled.
func (h *AppointmentHandler) ViewUpcomingAppointments(c *gin.Context) {
	appointments, err := h.Scheduler.GetUpcomingAppointments(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch upcoming appointments: "+err.Error())
		return
	}
	utils.Success(c, "Upcoming appointments fetched successfully", appointments)
}

// ViewAppointmentByAppointmentID returns a single appointment.
func (h *AppointmentHandler) ViewAppointmentByAppointmentID(c *gin.Context) {
	appointment, err := h.Scheduler.GetAppointment(c.Request.Context(), c.Query("id"))
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointment: "+err.Error())
		return
	}
	if appointment == nil {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment fetched successfully", appointment)
}

// ViewAppointmentsByDoctorID returns the doctor-facing projection.
func (h *AppointmentHandler) ViewAppointmentsByDoctorID(c *gin.Context) {
	doctorID := c.Query("doctorId")
	if doctorID == "" {
		utils.BadRequest(c, "doctorId query parameter is required")
		return
	}
	views, err := h.Scheduler.GetAppointmentByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	utils.Success(c, "Appointments fetched successfully", views)
}

// ViewAppointmentsByPatientID returns the patient-facing projection.
func (h *AppointmentHandler) ViewAppointmentsByPatientID(c *gin.Context) {
	patientID := c.Query("patientId")
	if patientID == "" {
		utils.BadRequest(c, "patientId query parameter is required")
		return
	}
	views, err := h.Scheduler.GetAppointmentByPatient(c.Request.Context(), patientID)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	utils.Success(c, "Appointments fetched successfully", views)
}
