package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Calidad-api/internal/application/dto"
	"github.com/jhoicas/Calidad-api/internal/application/usecase"
	"github.com/jhoicas/Calidad-api/internal/domain"
)

// SerialHandler maneja las peticiones HTTP para ProductSerial (protegido).
type SerialHandler struct {
	uc *usecase.SerialUseCase
}

// NewSerialHandler construye el handler.
func NewSerialHandler(uc *usecase.SerialUseCase) *SerialHandler {
	return &SerialHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar serial de producto
// @Tags         serials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSerialRequest  true  "Datos del serial"
// @Success      201   {object}  dto.SerialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/serials [post]
func (h *SerialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSerialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SerialNo == "" || in.CategoryID == "" || in.ProductName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "serial_no, category_id y product_name son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el serial ya está registrado"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la categoría no existe"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetBySerialNo godoc
// @Summary      Obtener serial por número
// @Tags         serials
// @Security     Bearer
// @Produce      json
// @Param        serial_no  path  string  true  "Número de serie"
// @Success      200  {object}  dto.SerialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/serials/{serial_no} [get]
func (h *SerialHandler) GetBySerialNo(c *fiber.Ctx) error {
	out, err := h.uc.GetBySerialNo(c.Params("serial_no"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "serial no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar seriales (opcionalmente por categoría)
// @Tags         serials
// @Security     Bearer
// @Produce      json
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.SerialListResponse
// @Router       /api/serials [get]
func (h *SerialHandler) List(c *fiber.Ctx) error {
	if categoryID := c.Query("category_id"); categoryID != "" {
		out, err := h.uc.ListByCategory(categoryID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
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

// Update godoc
// @Summary      Actualizar serial
// @Tags         serials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        serial_no  path  string  true  "Número de serie"
// @Param        body       body  dto.UpdateSerialRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.SerialResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/serials/{serial_no} [put]
func (h *SerialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSerialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("serial_no"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "status debe ser pending o completed"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "serial no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar serial
// @Tags         serials
// @Security     Bearer
// @Param        serial_no  path  string  true  "Número de serie"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/serials/{serial_no} [delete]
func (h *SerialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("serial_no")); err != nil {
		return notFoundOrInternal(c, err, "serial no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
