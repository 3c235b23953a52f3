package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-care-server/internal/metrics"
	"clinic-care-server/internal/models"
	"clinic-care-server/internal/utils"
)

// PrescriptionHandler handles prescription requests.
type PrescriptionHandler struct {
	DB      *gorm.DB
	Metrics *metrics.Collector
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(db *gorm.DB, m *metrics.Collector) *PrescriptionHandler {
	return &PrescriptionHandler{DB: db, Metrics: m}
}

// AddPrescriptionRequest represents the request body for issuing a
// prescription against a medical record.
type AddPrescriptionRequest struct {
	RecordID     string `json:"recordId" binding:"required"`
	Medicine     string `json:"medicine" binding:"required"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
}

// AddPrescription attaches a prescription to an existing medical record.
func (h *PrescriptionHandler) AddPrescription(c *gin.Context) {
	var req AddPrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var record models.MedicalRecord
	if err := h.DB.First(&record, "id = ?", req.RecordID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Medical record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	prescription := models.Prescription{
		RecordID:     record.ID,
		Medicine:     req.Medicine,
		Dosage:       req.Dosage,
		Instructions: req.Instructions,
	}
	if err := h.DB.Create(&prescription).Error; err != nil {
		utils.InternalServerError(c, "Failed to create prescription: "+err.Error())
		return
	}

	h.Metrics.PrescriptionsIssued.Inc()
	utils.Created(c, "Prescription created successfully", prescription)
}

// ViewPrescriptionByRecordID lists the prescriptions on one medical record.
func (h *PrescriptionHandler) ViewPrescriptionByRecordID(c *gin.Context) {
	recordID := c.Query("recordId")
	if recordID == "" {
		utils.BadRequest(c, "recordId query parameter is required")
		return
	}

	var prescriptions []models.Prescription
	if err := h.DB.Where("record_id = ?", recordID).Find(&prescriptions).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch prescriptions: "+err.Error())
		return
	}
	utils.Success(c, "Prescriptions fetched successfully", prescriptions)
}

// UpdatePrescriptionRequest represents the request body for replacing a
// prescription.
type UpdatePrescriptionRequest struct {
	ID           string `json:"id" binding:"required"`
	Medicine     string `json:"medicine" binding:"required"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
}

// UpdateWholePrescription replaces every editable field of a prescription.
func (h *PrescriptionHandler) UpdateWholePrescription(c *gin.Context) {
	var req UpdatePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var prescription models.Prescription
	if err := h.DB.First(&prescription, "id = ?", req.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Prescription not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	prescription.Medicine = req.Medicine
	prescription.Dosage = req.Dosage
	prescription.Instructions = req.Instructions

	if err := h.DB.Save(&prescription).Error; err != nil {
		utils.InternalServerError(c, "Failed to update prescription: "+err.Error())
		return
	}
	utils.Success(c, "Prescription updated successfully", prescription)
}
