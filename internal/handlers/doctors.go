package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-care-server/internal/models"
	"clinic-care-server/internal/utils"
)

// DoctorHandler handles doctor directory requests.
type DoctorHandler struct {
	DB *gorm.DB
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{DB: db}
}

// ViewAllDoctors lists every doctor profile.
func (h *DoctorHandler) ViewAllDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.DB.Order("doctor_name asc").Find(&doctors).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}
	utils.Success(c, "Doctors fetched successfully", doctors)
}

// ViewDoctorByID returns a single doctor by id query parameter.
func (h *DoctorHandler) ViewDoctorByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.BadRequest(c, "id query parameter is required")
		return
	}

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}
	utils.Success(c, "Doctor fetched successfully", doctor)
}

// GetAllSpecialities returns the distinct specialities on record.
func (h *DoctorHandler) GetAllSpecialities(c *gin.Context) {
	var specialities []string
	if err := h.DB.Model(&models.Doctor{}).Distinct("speciality").
		Where("speciality <> ''").Order("speciality asc").
		Pluck("speciality", &specialities).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch specialities: "+err.Error())
		return
	}
	utils.Success(c, "Specialities fetched successfully", specialities)
}

// UpdateDoctorRequest represents the request body for replacing a doctor profile.
type UpdateDoctorRequest struct {
	ID            string  `json:"id" binding:"required"`
	DoctorName    string  `json:"doctorName" binding:"required"`
	Speciality    string  `json:"speciality" binding:"required"`
	Qualification string  `json:"qualification"`
	Designation   string  `json:"designation"`
	Experience    float64 `json:"experience" binding:"gte=0"`
}

// UpdateWholeOfTheDoctor replaces every editable field of a doctor profile.
func (h *DoctorHandler) UpdateWholeOfTheDoctor(c *gin.Context) {
	var req UpdateDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", req.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	doctor.DoctorName = req.DoctorName
	doctor.Speciality = req.Speciality
	doctor.Qualification = req.Qualification
	doctor.Designation = req.Designation
	doctor.Experience = req.Experience

	if err := h.DB.Save(&doctor).Error; err != nil {
		utils.InternalServerError(c, "Failed to update doctor: "+err.Error())
		return
	}
	utils.Success(c, "Doctor updated successfully", doctor)
}

// DeleteDoctor removes a doctor profile.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.BadRequest(c, "id query parameter is required")
		return
	}

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&doctor).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete doctor: "+err.Error())
		return
	}
	utils.Success(c, "Doctor deleted successfully", doctor)
}
