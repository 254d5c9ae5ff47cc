package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Calidad-api/internal/application/dto"
	"github.com/jhoicas/Calidad-api/internal/application/report"
	"github.com/jhoicas/Calidad-api/internal/domain"
)

// ReportHandler genera el informe de inspección en PDF (protegido).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DownloadPDF godoc
// @Summary      Descargar informe de inspección en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        serial_no  path  string  true  "Número de serie"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/serials/{serial_no}/report.pdf [get]
func (h *ReportHandler) DownloadPDF(c *fiber.Ctx) error {
	serialNo := c.Params("serial_no")
	pdfBytes, filename, err := h.uc.DownloadInspectionPDF(c.Context(), serialNo)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "serial '" + serialNo + "' no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_CHECKLIST", Message: "el serial no tiene checklist materializado; consulte primero sus estados"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
