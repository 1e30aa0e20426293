package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/audit"
	"github.com/barberbook/barbershop-api/internal/cache"
	"github.com/barberbook/barbershop-api/internal/config"
	"github.com/barberbook/barbershop-api/internal/handlers"
	infraRepo "github.com/barberbook/barbershop-api/internal/infra/repository"
	"github.com/barberbook/barbershop-api/internal/middleware"
	"github.com/barberbook/barbershop-api/internal/notification"
	"github.com/barberbook/barbershop-api/internal/storage"
	ucAppointment "github.com/barberbook/barbershop-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	notifier := notification.New(db)
	catalogCache := cache.New(cfg.RedisURL)
	objectStore := storage.NewObjectStore(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, notifier, auditDispatcher)
	statusUC := ucAppointment.NewUpdateStatus(appointmentRepo, notifier, auditDispatcher)
	slotsUC := ucAppointment.NewGetAvailableSlots(appointmentRepo)
	listClientUC := ucAppointment.NewListClientAppointments(appointmentRepo)
	listAdminUC := ucAppointment.NewListAdminAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, catalogCache, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(db, catalogCache, objectStore, auditDispatcher)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, catalogCache, auditDispatcher)
	notificationHandler := handlers.NewNotificationHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		statusUC,
		slotsUC,
		listClientUC,
		listAdminUC,
	)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/services", serviceHandler.List)
		api.GET("/barbers", barberHandler.List)
		api.GET("/working-hours", workingHoursHandler.List)
		api.GET("/available-slots", appointmentHandler.AvailableSlots)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/client/appointments", appointmentHandler.ListForClient)

			secured.GET("/notifications", notificationHandler.List)
			secured.GET("/notifications/unread-count", notificationHandler.UnreadCount)
			secured.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/admin/appointments", appointmentHandler.ListForAdmin)
				admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				admin.POST("/barbers", barberHandler.Create)
				admin.PATCH("/barbers/:id", barberHandler.Update)
				admin.POST("/barbers/:id/image", barberHandler.UploadImage)

				admin.PATCH("/working-hours/:id", workingHoursHandler.Update)

				admin.GET("/admin/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
