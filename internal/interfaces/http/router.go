package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/registro-libros/internal/application/auth"
	"github.com/jhoicas/registro-libros/internal/application/export"
	"github.com/jhoicas/registro-libros/internal/application/qr"
	"github.com/jhoicas/registro-libros/internal/application/usecase"
	"github.com/jhoicas/registro-libros/internal/domain/entity"
	"github.com/jhoicas/registro-libros/internal/infrastructure/seed"
	"github.com/jhoicas/registro-libros/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BookUC     *usecase.BookUseCase
	MovementUC *usecase.MovementUseCase
	HistoryUC  *usecase.HistoryUseCase
	ReportUC   *usecase.ReportUseCase
	UserUC     *usecase.UserUseCase
	AuthUC     *auth.AuthUseCase
	QRUC       *qr.UseCase
	ExportUC   *export.UseCase
	Seeder     *seed.Seeder
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Books (protegido)
	books := protected.Group("/books")
	bookHandler := NewBookHandler(deps.BookUC, deps.Log)
	books.Get("/", bookHandler.List)
	books.Post("/", bookHandler.Add)
	books.Get("/:id", bookHandler.GetByID)
	books.Put("/:id", bookHandler.Update)
	books.Delete("/:id", bookHandler.Delete)

	// Movimientos de estado (protegido)
	movementHandler := NewMovementHandler(deps.MovementUC)
	books.Post("/:id/movements", movementHandler.Register)

	// Etiquetas QR (protegido)
	qrHandler := NewQRHandler(deps.BookUC, deps.QRUC)
	books.Get("/:id/qr", qrHandler.Encode)
	protected.Post("/qr/decode", qrHandler.Decode)

	// Historial (protegido)
	historyHandler := NewHistoryHandler(deps.HistoryUC, deps.Log)
	protected.Get("/history", historyHandler.Query)

	// Dashboard y reportes (protegido)
	dashboardHandler := NewDashboardHandler(deps.ReportUC, deps.Log)
	protected.Get("/dashboard", dashboardHandler.GetData)
	reportHandler := NewReportHandler(deps.ReportUC, deps.Log)
	reports := protected.Group("/reports")
	reports.Get("/monthly-movements", reportHandler.MonthlyMovements)
	reports.Get("/status-distribution", reportHandler.StatusDistribution)

	// Exports (protegido)
	exportHandler := NewExportHandler(deps.BookUC, deps.HistoryUC, deps.ExportUC, deps.QRUC)
	books.Get("/:id/label", exportHandler.BookLabel)
	exports := protected.Group("/export")
	exports.Get("/books.xlsx", exportHandler.BooksXLSX)
	exports.Get("/books.pdf", exportHandler.BooksPDF)
	exports.Get("/history.xlsx", exportHandler.HistoryXLSX)
	exports.Get("/history.pdf", exportHandler.HistoryPDF)

	// Administración (solo Administrador)
	admin := protected.Group("/", RequireRole(entity.RoleAdministrador))
	users := admin.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Add)
	users.Delete("/:id", userHandler.Delete)

	seedHandler := NewSeedHandler(deps.Seeder)
	admin.Post("/admin/seed", seedHandler.Run)
}
