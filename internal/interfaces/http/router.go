package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Calidad-api/internal/application/auth"
	"github.com/jhoicas/Calidad-api/internal/application/report"
	"github.com/jhoicas/Calidad-api/internal/application/status"
	"github.com/jhoicas/Calidad-api/internal/application/usecase"
	"github.com/jhoicas/Calidad-api/internal/domain/entity"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CategoryUC *usecase.CategoryUseCase
	TaskUC     *usecase.TaskUseCase
	SubTaskUC  *usecase.SubTaskUseCase
	SerialUC   *usecase.SerialUseCase
	StatusUC   *status.StatusUseCase
	ReportUC   *report.ReportUseCase
	UserRepo   repository.UserRepository
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// La estructura del checklist (categorías/tareas/subtareas) la administran
	// admin y supervisor; los inspectores solo la leen.
	structureWrite := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", structureWrite, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/tree", categoryHandler.GetTree)
	categories.Put("/:id", structureWrite, categoryHandler.Update)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Tasks (protegido)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", structureWrite, taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", structureWrite, taskHandler.Update)
	tasks.Delete("/:id", RequireRole(entity.RoleAdmin), taskHandler.Delete)

	// SubTasks (protegido)
	subtasks := protected.Group("/subtasks")
	subtaskHandler := NewSubTaskHandler(deps.SubTaskUC)
	subtasks.Post("/", structureWrite, subtaskHandler.Create)
	subtasks.Get("/", subtaskHandler.List)
	subtasks.Get("/by-task", subtaskHandler.ListByTask)
	subtasks.Get("/:id", subtaskHandler.GetByID)
	subtasks.Put("/:id", structureWrite, subtaskHandler.Update)
	subtasks.Post("/:id/update-status", subtaskHandler.UpdateStatus)
	subtasks.Delete("/:id", RequireRole(entity.RoleAdmin), subtaskHandler.Delete)

	// Serials + checklist por serial (protegido)
	serials := protected.Group("/serials")
	serialHandler := NewSerialHandler(deps.SerialUC)
	serialStatusHandler := NewSerialStatusHandler(deps.StatusUC, deps.UserRepo)
	reportHandler := NewReportHandler(deps.ReportUC)
	serials.Post("/", serialHandler.Create)
	serials.Get("/", serialHandler.List)
	serials.Post("/update-by-subtask", serialStatusHandler.UpdateBySubTask)
	serials.Get("/:serial_no", serialHandler.GetBySerialNo)
	serials.Put("/:serial_no", serialHandler.Update)
	serials.Delete("/:serial_no", RequireRole(entity.RoleAdmin), serialHandler.Delete)
	serials.Get("/:serial_no/statuses", serialStatusHandler.GetStatuses)
	serials.Get("/:serial_no/report.pdf", reportHandler.DownloadPDF)

	// Lote principal de actualización de estados (protegido)
	serialStatuses := protected.Group("/serial-statuses")
	serialStatuses.Post("/bulk-update", serialStatusHandler.BulkUpdate)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/role", userHandler.UpdateRole)
	users.Post("/:id/disable", userHandler.Disable)
}
