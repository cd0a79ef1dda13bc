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

	"github.com/jhoicas/registro-libros/internal/application/auth"
	"github.com/jhoicas/registro-libros/internal/application/export"
	appqr "github.com/jhoicas/registro-libros/internal/application/qr"
	"github.com/jhoicas/registro-libros/internal/application/usecase"
	"github.com/jhoicas/registro-libros/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/registro-libros/internal/infrastructure/pdf"
	"github.com/jhoicas/registro-libros/internal/infrastructure/postgres"
	infraqr "github.com/jhoicas/registro-libros/internal/infrastructure/qrcode"
	"github.com/jhoicas/registro-libros/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/registro-libros/internal/interfaces/http"
	"github.com/jhoicas/registro-libros/pkg/config"
	"github.com/jhoicas/registro-libros/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	bookRepo := postgres.NewBookRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	listCache := usecase.NewListCache()
	bookUC := usecase.NewBookUseCase(bookRepo, txRunner, listCache)
	movementUC := usecase.NewMovementUseCase(bookRepo, txRunner, listCache)
	historyUC := usecase.NewHistoryUseCase(movementRepo)
	reportUC := usecase.NewReportUseCase(reportRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	qrUC := appqr.NewUseCase(infraqr.NewEncoder(), infraqr.NewDecoder())
	exportUC := export.NewUseCase(excel.NewWorkbookBuilder(), infrapdf.NewMarotoGenerator())
	seeder := seed.New(pool, cfg, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Registro de Libros API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BookUC:     bookUC,
		MovementUC: movementUC,
		HistoryUC:  historyUC,
		ReportUC:   reportUC,
		UserUC:     userUC,
		AuthUC:     authUC,
		QRUC:       qrUC,
		ExportUC:   exportUC,
		Seeder:     seeder,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
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
