package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/slotlock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// Deps are the singletons built by main.
type Deps struct {
	Repo   domain.Repository
	Locker slotlock.Locker
	Audit  *audit.Dispatcher
	Log    logrus.FieldLogger
	Clock  ucAppointment.Clock

	// DB enables the audit log listing. Nil with the memory driver.
	DB *gorm.DB
}

func PolicyFrom(cfg *config.Config) domain.Policy {
	p := domain.Policy{
		GridStartHour: cfg.GridStartHour,
		GridEndHour:   cfg.GridEndHour,
		BreakHours:    cfg.BreakHours,
	}
	if p.GridStartHour < 0 || p.GridEndHour > 24 || p.GridStartHour >= p.GridEndHour {
		def := domain.DefaultPolicy()
		p.GridStartHour, p.GridEndHour = def.GridStartHour, def.GridEndHour
	}
	return p
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Log),
		middleware.CORSMiddleware(cfg.AllowedOrigins),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	policy := PolicyFrom(cfg)
	guard := domain.NewGuard(deps.Repo, policy)

	createUC := ucAppointment.NewCreateAppointment(deps.Repo, guard, deps.Locker, deps.Audit, deps.Log, deps.Clock)
	updateUC := ucAppointment.NewUpdateAppointment(deps.Repo, guard, deps.Locker, deps.Audit, deps.Log, deps.Clock)
	deleteUC := ucAppointment.NewDeleteAppointment(deps.Repo, deps.Audit)
	statusUC := ucAppointment.NewChangeStatus(deps.Repo, deps.Audit, deps.Clock)
	listUC := ucAppointment.NewListAppointments(deps.Repo)

	availUC := ucAppointment.NewGetAvailability(deps.Repo, policy)
	compareUC := ucAppointment.NewCompareDoctors(deps.Repo, policy, cfg.CompareLimit)
	calendarUC := ucAppointment.NewGetCalendar(deps.Repo, policy, cfg.CalendarMaxDays)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(createUC, updateUC, deleteUC, statusUC, listUC)
	availabilityHandler := handlers.NewAvailabilityHandler(availUC, compareUC, calendarUC, listUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/doctors", availabilityHandler.ListDoctors)
		api.GET("/doctors/:id/status", availabilityHandler.Status)
		api.GET("/doctors/:id/availability", availabilityHandler.Availability)
		api.GET("/doctors/:id/calendar", availabilityHandler.Calendar)
		api.GET("/availability/compare", availabilityHandler.Compare)

		api.GET("/appointments", appointmentHandler.ListByDate)
		api.GET("/appointments/month", appointmentHandler.ListByMonth)
		api.GET("/appointments/:code", appointmentHandler.Get)

		// ------------------------------
		// FRONT DESK
		// ------------------------------
		desk := api.Group("/")
		desk.Use(middleware.RequireRole(middleware.RoleAdmin, middleware.RoleReceptionist))
		{
			desk.POST("/appointments", appointmentHandler.Create)
			desk.PATCH("/appointments/:code", appointmentHandler.Update)
			desk.PATCH("/appointments/:code/cancel", appointmentHandler.Cancel)
			desk.DELETE("/appointments/:code", appointmentHandler.Delete)
		}

		// Clinical staff move the visit forward from the exam room.
		clinical := api.Group("/")
		clinical.Use(middleware.RequireRole(
			middleware.RoleAdmin,
			middleware.RoleReceptionist,
			middleware.RoleDoctor,
			middleware.RoleNurse,
		))
		{
			clinical.PATCH("/appointments/:code/status", appointmentHandler.ChangeStatus)
		}

		if deps.DB != nil {
			auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)
			api.GET("/audit-logs", middleware.RequireRole(middleware.RoleAdmin), auditLogsHandler.List)
		}
	}
}
