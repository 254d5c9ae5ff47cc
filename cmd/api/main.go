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

	"github.com/jhoicas/Calidad-api/internal/application/auth"
	"github.com/jhoicas/Calidad-api/internal/application/report"
	"github.com/jhoicas/Calidad-api/internal/application/status"
	"github.com/jhoicas/Calidad-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Calidad-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Calidad-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Calidad-api/internal/interfaces/http"
	"github.com/jhoicas/Calidad-api/pkg/config"
	"github.com/jhoicas/Calidad-api/pkg/logger"
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
	categoryRepo := postgres.NewCategoryRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	subtaskRepo := postgres.NewSubTaskRepository(pool)
	serialRepo := postgres.NewSerialRepository(pool)
	statusRepo := postgres.NewSerialStatusRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, taskRepo, subtaskRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo, categoryRepo)
	subtaskUC := usecase.NewSubTaskUseCase(subtaskRepo, taskRepo)
	serialUC := usecase.NewSerialUseCase(serialRepo, categoryRepo)
	statusUC := status.NewStatusUseCase(txRunner, serialRepo, categoryRepo, subtaskRepo, statusRepo)

	// PDF: informe de inspección por serial
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewReportUseCase(serialRepo, categoryRepo, statusRepo, pdfGenerator)

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
		Title:    "Calidad API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		CategoryUC: categoryUC,
		TaskUC:     taskUC,
		SubTaskUC:  subtaskUC,
		SerialUC:   serialUC,
		StatusUC:   statusUC,
		ReportUC:   reportUC,
		UserRepo:   userRepo,
		JWTSecret:  cfg.JWT.Secret,
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
