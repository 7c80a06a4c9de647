package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kadosh-sales/crm-api/internal/application/auth"
	"github.com/kadosh-sales/crm-api/internal/application/reporting"
	"github.com/kadosh-sales/crm-api/internal/application/session"
	"github.com/kadosh-sales/crm-api/internal/application/usecase"
	infrapdf "github.com/kadosh-sales/crm-api/internal/infrastructure/pdf"
	"github.com/kadosh-sales/crm-api/internal/infrastructure/postgres"
	httpRouter "github.com/kadosh-sales/crm-api/internal/interfaces/http"
	"github.com/kadosh-sales/crm-api/pkg/config"
	"github.com/kadosh-sales/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	asesorRepo := postgres.NewAsesorRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	goalRepo := postgres.NewGoalRepository(pool)
	citaRepo := postgres.NewAppointmentRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)

	// Estado en memoria + listener del feed de cambios (NOTIFY crm_cambios).
	// La carga inicial es síncrona para que los dashboards nunca sirvan vacío;
	// el listener recarga al (re)conectar.
	state := session.NewState(leadRepo, ventaRepo, asesorRepo, citaRepo, loteRepo)
	if err := state.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("carga inicial del estado en memoria")
	}
	listener := postgres.NewListener(pool, state, log.Zerolog())
	go listener.Run(ctx)

	authUC := auth.NewAuthUseCase(asesorRepo, cfg.CRM.EmailsLiderList(), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	asesorUC := usecase.NewAsesorUseCase(asesorRepo)
	leadUC := usecase.NewLeadUseCase(leadRepo, ventaRepo, log.Zerolog())
	ventaUC := usecase.NewVentaUseCase(ventaRepo)
	goalUC := usecase.NewGoalUseCase(goalRepo)
	appointmentUC := usecase.NewAppointmentUseCase(citaRepo)
	loteUC := usecase.NewLoteUseCase(loteRepo, ventaRepo)
	reportingSvc := reporting.NewService(state, goalRepo, cfg.CRM)
	commissionPDF := infrapdf.NewCommissionGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		AsesorUC:      asesorUC,
		LeadUC:        leadUC,
		VentaUC:       ventaUC,
		GoalUC:        goalUC,
		AppointmentUC: appointmentUC,
		LoteUC:        loteUC,
		Reporting:     reportingSvc,
		CommissionPDF: commissionPDF,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	state.Clear()
	log.Info().Msg("aplicación detenida")
}
