package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Calidad-api/internal/application/dto"
	"github.com/jhoicas/Calidad-api/internal/application/status"
	"github.com/jhoicas/Calidad-api/internal/domain"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// SerialStatusHandler maneja el checklist por serial: la consulta que
// materializa filas pendientes y las dos rutas de actualización por lote.
type SerialStatusHandler struct {
	uc       *status.StatusUseCase
	userRepo repository.UserRepository
}

// NewSerialStatusHandler construye el handler.
func NewSerialStatusHandler(uc *status.StatusUseCase, userRepo repository.UserRepository) *SerialStatusHandler {
	return &SerialStatusHandler{uc: uc, userRepo: userRepo}
}

// sessionIdentity arma la identidad de atribución desde el user_id del token.
// Si el usuario no se puede cargar, la cadena de atribución sigue funcionando
// con el valor enviado por el cliente o "Unknown".
func (h *SerialStatusHandler) sessionIdentity(c *fiber.Ctx) *status.Identity {
	userID := GetUserID(c)
	if userID == "" {
		return nil
	}
	user, err := h.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return nil
	}
	return &status.Identity{Name: user.Name, Handle: user.Email}
}

// GetStatuses godoc
// @Summary      Checklist de un serial (materializa filas pendientes)
// @Description  Garantiza una fila de estado por cada subtarea de la categoría del serial y devuelve la vista completa.
// @Tags         serial-statuses
// @Security     Bearer
// @Produce      json
// @Param        serial_no  path  string  true  "Número de serie"
// @Success      200  {object}  dto.SerialStatusesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/serials/{serial_no}/statuses [get]
func (h *SerialStatusHandler) GetStatuses(c *fiber.Ctx) error {
	serialNo := c.Params("serial_no")
	out, err := h.uc.EnsureStatusRows(serialNo)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "serial '" + serialNo + "' no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// BulkUpdate godoc
// @Summary      Actualizar estados del checklist por lote
// @Description  Aplica el lote en una sola transacción. Los errores por elemento se devuelven itemizados sin abortar el resto.
// @Tags         serial-statuses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUpdateRequest  true  "Lote de actualizaciones"
// @Success      200   {object}  dto.BulkUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/serial-statuses/bulk-update [post]
func (h *SerialStatusHandler) BulkUpdate(c *fiber.Ctx) error {
	var in dto.BulkUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ApplyUpdates(c.Context(), &in, h.sessionIdentity(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "serial_no y updates son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "serial '" + in.SerialNo + "' no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// UpdateBySubTask godoc
// @Summary      Actualizar estados keyed por subtask_id (ruta legacy)
// @Description  Actualiza las filas (serial, subtask_id) enviadas; las inexistentes se omiten en silencio.
// @Tags         serial-statuses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBySubTaskRequest  true  "Lote legacy"
// @Success      200   {object}  dto.UpdateBySubTaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/serials/update-by-subtask [post]
func (h *SerialStatusHandler) UpdateBySubTask(c *fiber.Ctx) error {
	var in dto.UpdateBySubTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateBySubTask(c.Context(), &in, h.sessionIdentity(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "serial_no y updates son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "serial '" + in.SerialNo + "' no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
