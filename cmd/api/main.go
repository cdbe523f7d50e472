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

	appanalytics "github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/analytics"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/auth"
	appexport "github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/export"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/inventory"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/usecase"
	infraexcel "github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/infrastructure/excel"
	infrapdf "github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/infrastructure/pdf"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/infrastructure/postgres"
	httpRouter "github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/interfaces/http"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/pkg/config"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, movementRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)

	excelExporter := infraexcel.NewExcelizeExporter()
	pdfReport := infrapdf.NewMarotoStockReport()
	exportUC := appexport.NewExportUseCase(productRepo, dashboardUC, excelExporter, pdfReport)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Controle de Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		DashboardUC:      dashboardUC,
		ExportUC:         exportUC,
		JWTSecret:        cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
