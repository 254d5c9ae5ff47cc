package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Calidad-api/internal/application/dto"
	"github.com/jhoicas/Calidad-api/internal/application/usecase"
	"github.com/jhoicas/Calidad-api/internal/domain"
	"github.com/jhoicas/Calidad-api/internal/domain/entity"
)

// SubTaskHandler maneja las peticiones HTTP para SubTask (protegido).
type SubTaskHandler struct {
	uc *usecase.SubTaskUseCase
}

// NewSubTaskHandler construye el handler.
func NewSubTaskHandler(uc *usecase.SubTaskUseCase) *SubTaskHandler {
	return &SubTaskHandler{uc: uc}
}

// Create godoc
// @Summary      Crear subtarea
// @Tags         subtasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubTaskRequest  true  "Datos de la subtarea"
// @Success      201   {object}  dto.SubTaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subtasks [post]
func (h *SubTaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TaskID == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "task_id y name son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la tarea no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener subtarea por ID
// @Tags         subtasks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subtarea"
// @Success      200  {object}  dto.SubTaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subtasks/{id} [get]
func (h *SubTaskHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "subtarea no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar subtareas
// @Tags         subtasks
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.SubTaskListResponse
// @Router       /api/subtasks [get]
func (h *SubTaskHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByTask godoc
// @Summary      Listar subtareas de una tarea
// @Tags         subtasks
// @Security     Bearer
// @Produce      json
// @Param        task_id  query  string  true  "ID de la tarea"
// @Success      200  {object}  dto.SubTaskListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subtasks/by-task [get]
func (h *SubTaskHandler) ListByTask(c *fiber.Ctx) error {
	taskID := c.Query("task_id")
	if taskID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "task_id query param es requerido"})
	}
	out, err := h.uc.ListByTask(taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar subtarea
// @Tags         subtasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la subtarea"
// @Param        body  body  dto.UpdateSubTaskRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SubTaskResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subtasks/{id} [put]
func (h *SubTaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "subtarea no encontrada"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Actualizar el estado escalar de una subtarea (ruta legacy)
// @Tags         subtasks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la subtarea"
// @Param        body  body  dto.UpdateSubTaskStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.SubTaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subtasks/{id}/update-status [post]
func (h *SubTaskHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateSubTaskStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_STATUS",
				Message: fmt.Sprintf("Invalid status. Allowed: [%s %s %s]",
					entity.SubTaskStatusPending, entity.SubTaskStatusOK, entity.SubTaskStatusNotOK),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "subtarea no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar subtarea
// @Tags         subtasks
// @Security     Bearer
// @Param        id  path  string  true  "ID de la subtarea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subtasks/{id} [delete]
func (h *SubTaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return notFoundOrInternal(c, err, "subtarea no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
