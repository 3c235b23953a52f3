package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-care-server/internal/config"
	"clinic-care-server/internal/models"
	"clinic-care-server/internal/utils"
)

// AuthHandler handles login and registration requests.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	Token     string      `json:"token"`
	Username  string      `json:"username"`
	Role      models.Role `json:"role"`
	ProfileID string      `json:"profileId,omitempty"`
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var user models.User
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Unauthorized(c, "Invalid username or password")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid username or password")
		return
	}

	token, err := utils.GenerateToken(&user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	utils.Success(c, "Login successful", LoginResponse{
		Token:     token,
		Username:  user.Username,
		Role:      user.Role,
		ProfileID: h.profileID(&user),
	})
}

// profileID resolves the doctor/patient row linked to a login, so the
// client can navigate straight to the right dashboard.
func (h *AuthHandler) profileID(user *models.User) string {
	switch user.Role {
	case models.RoleDoctor:
		var doctor models.Doctor
		if err := h.DB.Where("user_id = ?", user.ID).First(&doctor).Error; err == nil {
			return doctor.ID
		}
	case models.RolePatient:
		var patient models.Patient
		if err := h.DB.Where("user_id = ?", user.ID).First(&patient).Error; err == nil {
			return patient.ID
		}
	}
	return ""
}

// RegisterPatientRequest represents the request body for patient sign-up.
type RegisterPatientRequest struct {
	Username      string     `json:"username" binding:"required"`
	Password      string     `json:"password" binding:"required,min=8"`
	PatientName   string     `json:"patientName" binding:"required"`
	Age           int        `json:"age" binding:"gte=0"`
	Gender        string     `json:"gender"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	ContactNumber string     `json:"contactNumber"`
}

// RegisterPatient creates a login and the linked patient profile.
func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user := models.User{Username: req.Username, Role: models.RolePatient}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	patient := models.Patient{
		PatientName:   req.PatientName,
		Age:           req.Age,
		Gender:        req.Gender,
		DateOfBirth:   req.DateOfBirth,
		ContactNumber: req.ContactNumber,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		patient.UserID = user.ID
		return tx.Create(&patient).Error
	})
	if err != nil {
		utils.BadRequest(c, "Failed to register patient: "+err.Error())
		return
	}

	utils.Created(c, "Patient registered successfully", patient)
}

// RegisterDoctorRequest represents the request body for adding a doctor.
type RegisterDoctorRequest struct {
	Username      string  `json:"username" binding:"required"`
	Password      string  `json:"password" binding:"required,min=8"`
	DoctorName    string  `json:"doctorName" binding:"required"`
	Speciality    string  `json:"speciality" binding:"required"`
	Qualification string  `json:"qualification"`
	Designation   string  `json:"designation"`
	Experience    float64 `json:"experience" binding:"gte=0"`
}

// RegisterDoctor creates a login and the linked doctor profile.
// Admin-only; the route applies the role middleware.
func (h *AuthHandler) RegisterDoctor(c *gin.Context) {
	var req RegisterDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user := models.User{Username: req.Username, Role: models.RoleDoctor}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	doctor := models.Doctor{
		DoctorName:    req.DoctorName,
		Speciality:    req.Speciality,
		Qualification: req.Qualification,
		Designation:   req.Designation,
		Experience:    req.Experience,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		doctor.UserID = user.ID
		return tx.Create(&doctor).Error
	})
	if err != nil {
		utils.BadRequest(c, "Failed to register doctor: "+err.Error())
		return
	}

	utils.Created(c, "Doctor registered successfully", doctor)
}
