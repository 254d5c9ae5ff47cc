package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/Calidad-api/internal/domain"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// ReportUseCase genera el informe de inspección en PDF de un serial: el
// checklist completo con resultado, atribución y observaciones por subtarea.
type ReportUseCase struct {
	serialRepo   repository.SerialRepository
	categoryRepo repository.CategoryRepository
	statusRepo   repository.SerialStatusRepository
	generator    InspectionPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(
	serialRepo repository.SerialRepository,
	categoryRepo repository.CategoryRepository,
	statusRepo repository.SerialStatusRepository,
	generator InspectionPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		serialRepo:   serialRepo,
		categoryRepo: categoryRepo,
		statusRepo:   statusRepo,
		generator:    generator,
	}
}

// DownloadInspectionPDF recupera el serial con sus filas de estado y genera
// el PDF del informe.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el serial no existe.
//   - domain.ErrInvalidInput    si el serial aún no tiene filas de estado
//     (nunca se ha consultado su checklist).
func (uc *ReportUseCase) DownloadInspectionPDF(ctx context.Context, serialNo string) (pdfBytes []byte, filename string, err error) {
	serial, err := uc.serialRepo.GetBySerialNo(serialNo)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener serial: %w", err)
	}
	if serial == nil {
		return nil, "", domain.ErrNotFound
	}

	rows, err := uc.statusRepo.ListViewBySerial(serialNo)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener estados: %w", err)
	}
	if len(rows) == 0 {
		return nil, "", fmt.Errorf("%w: el serial %s no tiene checklist materializado", domain.ErrInvalidInput, serialNo)
	}

	categoryName := ""
	if category, cErr := uc.categoryRepo.GetByID(serial.CategoryID); cErr == nil && category != nil {
		categoryName = category.Name
	}

	pdfBytes, err = uc.generator.GenerateInspectionPDF(ctx, serial, categoryName, rows)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("inspeccion_%s.pdf", serial.SerialNo)
	return pdfBytes, filename, nil
}
