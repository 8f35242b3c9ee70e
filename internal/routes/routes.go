package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/backup"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	"github.com/BruksfildServices01/salon-scheduler/internal/logging"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/salon-scheduler/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/salon-scheduler/internal/usecase/dashboard"
	ucHistory "github.com/BruksfildServices01/salon-scheduler/internal/usecase/history"
	ucService "github.com/BruksfildServices01/salon-scheduler/internal/usecase/service"
)

// Deps is everything the HTTP layer needs, built once in main.
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Repo    domain.Repository
	Clock   timezone.Clock
	Hours   domain.BusinessHours
	Backup  *backup.Service
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	var origins []string
	if d.Config != nil {
		origins = d.Config.CORSOrigins
	}
	r.Use(middleware.CORSMiddleware(origins))
	if d.Logger != nil {
		r.Use(logging.Middleware(d.Logger))
	}
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	repo, clock := d.Repo, d.Clock

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo, clock),
		ucAppointment.NewUpdateAppointment(repo, clock),
		ucAppointment.NewDeleteAppointment(repo),
		ucAppointment.NewCompleteAppointment(repo, clock),
		ucAppointment.NewCancelAppointment(repo, clock),
		ucAppointment.NewListAppointments(repo, clock),
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		ucAppointment.NewGetAvailability(repo, d.Hours, clock),
		ucAppointment.NewGetMonthCalendar(repo, d.Hours, clock),
	)

	clientHandler := handlers.NewClientHandler(
		ucClient.NewCreateClient(repo, clock),
		ucClient.NewUpdateClient(repo, clock),
		ucClient.NewDeleteClient(repo),
		ucClient.NewAddNote(repo, clock),
		ucClient.NewListClients(repo, clock),
		ucClient.NewGetClient(repo, clock),
	)

	serviceHandler := handlers.NewServiceHandler(
		ucService.NewCreateService(repo),
		ucService.NewUpdateService(repo),
		ucService.NewDeleteService(repo),
		ucService.NewListServices(repo),
	)

	historyHandler := handlers.NewHistoryHandler(
		ucHistory.NewListHistory(repo, clock),
		ucHistory.NewListClientHistory(repo, clock),
		ucHistory.NewGetClientStats(repo, clock),
		ucHistory.NewClearHistory(repo),
	)

	dashboardHandler := handlers.NewDashboardHandler(ucDashboard.NewGetDashboard(repo, clock))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients/:id", clientHandler.Get)
		api.PUT("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)
		api.POST("/clients/:id/notes", clientHandler.AddNote)
		api.GET("/clients/:id/history", historyHandler.ForClient)
		api.GET("/clients/:id/stats", historyHandler.Stats)

		api.GET("/history", historyHandler.List)
		api.DELETE("/history", historyHandler.Clear)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PUT("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

		api.GET("/availability", availabilityHandler.Day)
		api.GET("/availability/summary", availabilityHandler.Summary)
		api.GET("/availability/month", availabilityHandler.Month)

		// ------------------------------
		// DASHBOARD
		// ------------------------------
		api.GET("/dashboard", dashboardHandler.Get)

		// ------------------------------
		// BACKUP
		// ------------------------------
		if d.Backup != nil {
			backupHandler := handlers.NewBackupHandler(d.Backup)
			api.GET("/backup/:collection", backupHandler.Export)
			api.POST("/backup/:collection", backupHandler.Import)
			api.POST("/archive", backupHandler.Archive)
		}
	}
}
