package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-care-server/internal/models"
	"clinic-care-server/internal/utils"
)

// PatientHandler handles patient directory requests.
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// ViewAllPatients lists every patient profile.
func (h *PatientHandler) ViewAllPatients(c *gin.Context) {
	var patients []models.Patient
	if err := h.DB.Order("patient_name asc").Find(&patients).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}
	utils.Success(c, "Patients fetched successfully", patients)
}

// ViewPatientByID returns a single patient by id query parameter.
func (h *PatientHandler) ViewPatientByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.BadRequest(c, "id query parameter is required")
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "Patient fetched successfully", patient)
}

// DeletePatient removes a patient profile.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.BadRequest(c, "id query parameter is required")
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete patient: "+err.Error())
		return
	}
	utils.Success(c, "Patient deleted successfully", patient)
}
