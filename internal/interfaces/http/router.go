package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kadosh-sales/crm-api/internal/application/auth"
	"github.com/kadosh-sales/crm-api/internal/application/reporting"
	"github.com/kadosh-sales/crm-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	AsesorUC      *usecase.AsesorUseCase
	LeadUC        *usecase.LeadUseCase
	VentaUC       *usecase.VentaUseCase
	GoalUC        *usecase.GoalUseCase
	AppointmentUC *usecase.AppointmentUseCase
	LoteUC        *usecase.LoteUseCase
	Reporting     *reporting.Service
	CommissionPDF reporting.CommissionPDF
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	soloLider := RequireLider()

	// Asesores: lectura para todos, escritura solo Líder
	asesores := protected.Group("/asesores")
	asesorHandler := NewAsesorHandler(deps.AsesorUC)
	asesores.Get("/", asesorHandler.List)
	asesores.Get("/:id", asesorHandler.GetByID)
	asesores.Post("/", soloLider, asesorHandler.Create)
	asesores.Put("/:id", soloLider, asesorHandler.Update)

	// Leads (la visibilidad por asesor la aplica el use case)
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Post("/", leadHandler.Create)
	leads.Post("/batch", leadHandler.CreateBatch)
	leads.Get("/", leadHandler.List)
	leads.Get("/:id", leadHandler.GetByID)
	leads.Put("/:id", leadHandler.Update)
	leads.Post("/:id/transition", leadHandler.Transition)
	leads.Delete("/:id", leadHandler.Delete)

	// Ventas
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Put("/:id", ventaHandler.Update)

	// Metas mensuales: lectura para todos, upsert solo Líder
	metas := protected.Group("/metas")
	goalHandler := NewGoalHandler(deps.GoalUC)
	metas.Get("/", goalHandler.ListByMonth)
	metas.Put("/", soloLider, goalHandler.Upsert)

	// Citas del calendario
	citas := protected.Group("/citas")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	citas.Post("/", appointmentHandler.Create)
	citas.Get("/", appointmentHandler.List)
	citas.Delete("/:id", appointmentHandler.Delete)

	// Inventario de lotes: lectura para todos, escritura solo Líder
	lotes := protected.Group("/lotes")
	loteHandler := NewLoteHandler(deps.LoteUC)
	lotes.Get("/", loteHandler.List)
	lotes.Get("/:id", loteHandler.GetByID)
	lotes.Post("/", soloLider, loteHandler.Create)
	lotes.Put("/:id", soloLider, loteHandler.Update)
	lotes.Delete("/:id", soloLider, loteHandler.Delete)

	// Reportes
	reportes := protected.Group("/reportes")
	reportingHandler := NewReportingHandler(deps.Reporting, deps.CommissionPDF)
	reportes.Get("/resumen", reportingHandler.Summary)
	reportes.Get("/en-proceso", reportingHandler.VentasEnProceso)
	reportes.Get("/kpis", reportingHandler.KPIs)
	// Los reportes de equipo ven todas las ventas: solo Líder
	reportes.Get("/comisiones", soloLider, reportingHandler.Commissions)
	reportes.Get("/comisiones/pdf", soloLider, reportingHandler.CommissionsPDF)
	reportes.Get("/metas", soloLider, reportingHandler.GoalsDashboard)
	reportes.Get("/tablero", soloLider, reportingHandler.LeaderBoard)
}
