package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/hemis-api/internal/application/alerts"
	"github.com/jhoicas/hemis-api/internal/application/auth"
	"github.com/jhoicas/hemis-api/internal/application/usecase"
	"github.com/jhoicas/hemis-api/internal/domain/alerting"
	"github.com/jhoicas/hemis-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/hemis-api/internal/infrastructure/pdf"
	"github.com/jhoicas/hemis-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/hemis-api/internal/interfaces/http"
	"github.com/jhoicas/hemis-api/pkg/config"
	"github.com/jhoicas/hemis-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if cfg.App.SeedOnStart {
		if err := postgres.Seed(ctx, pool, log.Zerolog()); err != nil {
			log.Fatal().Err(err).Msg("datos por defecto")
		}
	}

	supplierRepo := postgres.NewSupplierRepository(pool)
	medicineRepo := postgres.NewMedicineRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	alertCfg := alerting.Config{
		LowStockThreshold:     cfg.Alert.LowStockThreshold,
		ExpiryWindowDays:      cfg.Alert.ExpiryWindowDays,
		MaintenanceWindowDays: cfg.Alert.MaintenanceWindowDays,
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	medicineUC := usecase.NewMedicineUseCase(medicineRepo, alertCfg)
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo, alertCfg)
	orderUC := usecase.NewOrderUseCase(orderRepo, supplierRepo, pdfGenerator)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo, equipmentRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	dashboardUC := usecase.NewDashboardUseCase(medicineRepo, equipmentRepo, supplierRepo, orderRepo, alertCfg)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	m := metrics.New()

	// Chequeo diario de vencimientos y mantenimiento (corre uno al arrancar).
	checkCtx, stopChecker := context.WithCancel(ctx)
	defer stopChecker()
	checker := alerts.NewChecker(alertCfg, medicineRepo, equipmentRepo, m, log.Zerolog())
	go checker.Run(checkCtx, 24*time.Hour)

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
		Title:    "HEMIS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		SupplierUC:    supplierUC,
		MedicineUC:    medicineUC,
		EquipmentUC:   equipmentUC,
		OrderUC:       orderUC,
		MaintenanceUC: maintenanceUC,
		UserUC:        userUC,
		DashboardUC:   dashboardUC,
		AlertConfig:   alertCfg,
		Metrics:       m,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopChecker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
