package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-care-server/internal/models"
	"clinic-care-server/internal/scheduler"
	"clinic-care-server/internal/utils"
)

// MedicalRecordHandler handles clinical record requests. It depends on
// the scheduler only to confirm an appointment exists before clinical
// data is attached to it.
type MedicalRecordHandler struct {
	DB        *gorm.DB
	Scheduler *scheduler.Scheduler
}

// NewMedicalRecordHandler creates a new MedicalRecordHandler.
func NewMedicalRecordHandler(db *gorm.DB, s *scheduler.Scheduler) *MedicalRecordHandler {
	return &MedicalRecordHandler{DB: db, Scheduler: s}
}

// AddMedicalRecordRequest represents the request body for writing a
// visit outcome.
type AddMedicalRecordRequest struct {
	AppointmentID       string `json:"appointmentId" binding:"required"`
	CurrentSymptoms     string `json:"currentSymptoms" binding:"required"`
	PhysicalExamination string `json:"physicalExamination"`
	TreatmentPlan       string `json:"treatmentPlan"`
	RecommendedTests    string `json:"recommendedTests"`
}

// AddMedicalRecord attaches a clinical record to an existing appointment.
func (h *MedicalRecordHandler) AddMedicalRecord(c *gin.Context) {
	var req AddMedicalRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Scheduler.GetAppointment(c.Request.Context(), req.AppointmentID)
	if err != nil {
		utils.InternalServerError(c, "Failed to resolve appointment: "+err.Error())
		return
	}
	if appointment == nil {
		utils.NotFound(c, "Appointment not found")
		return
	}

	record := models.MedicalRecord{
		AppointmentID:       appointment.ID,
		DoctorID:            appointment.DoctorID,
		PatientID:           appointment.PatientID,
		CurrentSymptoms:     req.CurrentSymptoms,
		PhysicalExamination: req.PhysicalExamination,
		TreatmentPlan:       req.TreatmentPlan,
		RecommendedTests:    req.RecommendedTests,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to create medical record: "+err.Error())
		return
	}
	utils.Created(c, "Medical record created successfully", record)
}

// ViewMedicalRecordByAppointmentID returns the record written for one visit.
func (h *MedicalRecordHandler) ViewMedicalRecordByAppointmentID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.BadRequest(c, "id query parameter is required")
		return
	}

	var record models.MedicalRecord
	err := h.DB.Preload("Prescriptions").First(&record, "appointment_id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		utils.NotFound(c, "Medical record not found")
		return
	}
	if err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Medical record fetched successfully", record)
}

// ViewAllMedicalRecordsByDoctorID lists the records a doctor has written.
func (h *MedicalRecordHandler) ViewAllMedicalRecordsByDoctorID(c *gin.Context) {
	doctorID := c.Query("doctorId")
	if doctorID == "" {
		utils.BadRequest(c, "doctorId query parameter is required")
		return
	}

	var records []models.MedicalRecord
	if err := h.DB.Preload("Prescriptions").Where("doctor_id = ?", doctorID).Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch medical records: "+err.Error())
		return
	}
	utils.Success(c, "Medical records fetched successfully", records)
}

// ViewAllMedicalRecordsByPatientID lists a patient's records.
func (h *MedicalRecordHandler) ViewAllMedicalRecordsByPatientID(c *gin.Context) {
	patientID := c.Query("patientId")
	if patientID == "" {
		utils.BadRequest(c, "patientId query parameter is required")
		return
	}

	var records []models.MedicalRecord
	if err := h.DB.Preload("Prescriptions").Where("patient_id = ?", patientID).Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch medical records: "+err.Error())
		return
	}
	utils.Success(c, "Medical records fetched successfully", records)
}
