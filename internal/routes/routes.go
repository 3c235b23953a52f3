package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-care-server/internal/config"
	"clinic-care-server/internal/handlers"
	"clinic-care-server/internal/metrics"
	"clinic-care-server/internal/middleware"
	"clinic-care-server/internal/models"
	"clinic-care-server/internal/scheduler"
	"clinic-care-server/internal/storage"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger, collector *metrics.Collector) {
	// Wire the scheduler over its gorm-backed store and directories
	store := storage.NewAppointmentStore(db)
	directory := storage.NewDirectory(db)
	appointmentScheduler := scheduler.New(store, directory, directory, log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	doctorHandler := handlers.NewDoctorHandler(db)
	patientHandler := handlers.NewPatientHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentScheduler, collector)
	medicalRecordHandler := handlers.NewMedicalRecordHandler(db, appointmentScheduler)
	prescriptionHandler := handlers.NewPrescriptionHandler(db, collector)

	router.Use(collector.Middleware())

	// Public routes (no authentication required)
	router.POST("/Login", authHandler.Login)
	router.POST("/RegisterPatient", authHandler.RegisterPatient)

	// Authenticated routes
	private := router.Group("/")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		// Appointment lifecycle
		private.POST("/BookAnAppointment", appointmentHandler.BookAnAppointment)
		private.PUT("/StatusToCancelAppointment", appointmentHandler.StatusToCancelAppointment)
		private.PUT("/StatusToRescheduleAppointment", appointmentHandler.StatusToRescheduleAppointment)
		private.PUT("/StatusToCompleteAppointment", appointmentHandler.StatusToCompleteAppointment)
		private.PUT("/RescheduleAppointment", appointmentHandler.RescheduleAppointment)
		private.PUT("/UpdateDoctorIdInAppointments", appointmentHandler.UpdateDoctorIDInAppointments)
		private.PUT("/UpdatePatientIdInAppointments", appointmentHandler.UpdatePatientIDInAppointments)
		private.PUT("/UpdateAppointmentStatus", appointmentHandler.UpdateAppointmentStatus)
		private.PUT("/UpdateAppointmentDate", appointmentHandler.UpdateAppointmentDate)
		private.DELETE("/DeleteAppointment", middleware.RoleAuthMiddleware(models.RoleAdmin), appointmentHandler.DeleteAppointment)

		// Appointment views
		private.GET("/ViewAllTheAppointments", appointmentHandler.ViewAllTheAppointments)
		private.GET("/ViewUpcomingAppointments", appointmentHandler.ViewUpcomingAppointments)
		private.GET("/ViewAppointmentByAppointmentId", appointmentHandler.ViewAppointmentByAppointmentID)
		private.GET("/ViewAppointmentsByDoctorId", appointmentHandler.ViewAppointmentsByDoctorID)
		private.GET("/ViewAppointmentsByPatientId", appointmentHandler.ViewAppointmentsByPatientID)

		// Doctor directory
		private.GET("/ViewAllDoctors", doctorHandler.ViewAllDoctors)
		private.GET("/ViewDoctorById", doctorHandler.ViewDoctorByID)
		private.GET("/GetAllSpecialities", doctorHandler.GetAllSpecialities)
		private.POST("/RegisterDoctor", middleware.RoleAuthMiddleware(models.RoleAdmin), authHandler.RegisterDoctor)
		private.PUT("/UpdateWholeOfTheDoctor", middleware.RoleAuthMiddleware(models.RoleAdmin), doctorHandler.UpdateWholeOfTheDoctor)
		private.DELETE("/DeleteDoctor", middleware.RoleAuthMiddleware(models.RoleAdmin), doctorHandler.DeleteDoctor)

		// Patient directory
		private.GET("/ViewAllPatients", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleDoctor), patientHandler.ViewAllPatients)
		private.GET("/ViewPatientById", patientHandler.ViewPatientByID)
		private.DELETE("/DeletePatient", middleware.RoleAuthMiddleware(models.RoleAdmin), patientHandler.DeletePatient)

		// Clinical records (doctors write, everyone involved reads)
		private.POST("/AddMedicalRecord", middleware.RoleAuthMiddleware(models.RoleDoctor), medicalRecordHandler.AddMedicalRecord)
		private.GET("/ViewMedicalRecordByAppointmentId", medicalRecordHandler.ViewMedicalRecordByAppointmentID)
		private.GET("/ViewAllMedicalRecordsByDoctorId", medicalRecordHandler.ViewAllMedicalRecordsByDoctorID)
		private.GET("/ViewAllMedicalRecordsByPatientId", medicalRecordHandler.ViewAllMedicalRecordsByPatientID)

		// Prescriptions
		private.POST("/AddPrescription", middleware.RoleAuthMiddleware(models.RoleDoctor), prescriptionHandler.AddPrescription)
		private.GET("/ViewPrescriptionByRecordId", prescriptionHandler.ViewPrescriptionByRecordID)
		private.PUT("/UpdateWholePrescription", middleware.RoleAuthMiddleware(models.RoleDoctor), prescriptionHandler.UpdateWholePrescription)
	}

	// Operational endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
	router.GET("/metrics", metrics.Handler())
}
