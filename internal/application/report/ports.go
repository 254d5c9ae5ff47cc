package report

import (
	"context"

	"github.com/jhoicas/Calidad-api/internal/domain/entity"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// InspectionPDFGenerator genera la representación gráfica (PDF) del informe
// de inspección de un serial. Implementado en infrastructure/pdf.
type InspectionPDFGenerator interface {
	GenerateInspectionPDF(
		ctx context.Context,
		serial *entity.ProductSerial,
		categoryName string,
		rows []*repository.SerialSubTaskStatusView,
	) ([]byte, error)
}
