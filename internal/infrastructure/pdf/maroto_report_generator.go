// Package pdf implementa la generación del Informe de Inspección en PDF:
// el checklist completo de un serial con el resultado, la atribución y las
// observaciones de cada subtarea.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Producto + Serial  │  Categoría + Estado global    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tarea | Subtarea | Resultado | Medición | Inspector │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: OK / Not_OK / pendientes                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Calidad-api/internal/domain/entity"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorOK      = &props.Color{Red: 0, Green: 128, Blue: 0}
	colorNotOK   = &props.Color{Red: 180, Green: 0, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.InspectionPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInspectionPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInspectionPDF(
	_ context.Context,
	serial *entity.ProductSerial,
	categoryName string,
	rows []*repository.SerialSubTaskStatusView,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Inspección", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(serial, categoryName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: producto + serial (izq) y categoría + estado global (der).
func headerRow(serial *entity.ProductSerial, categoryName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(serial.ProductName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Serial: "+serial.SerialNo, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INFORME DE INSPECCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Categoría: "+nonEmpty(categoryName, "—"), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New("Estado: "+serial.Status, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del checklist.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tarea", 2, align.Left),
		h("Subtarea", 3, align.Left),
		h("Resultado", 2, align.Center),
		h("Medición", 1, align.Right),
		h("Inspector", 2, align.Left),
		h("Fecha", 2, align.Right),
	)
}

// tableDetailRows: una fila por subtarea; las observaciones van en una
// subfila propia cuando existen.
func tableDetailRows(rows []*repository.SerialSubTaskStatusView) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		measured := "—"
		if r.MeasuredValue != nil {
			measured = r.MeasuredValue.String()
		}
		inspector := "—"
		if r.UpdatedBy != nil && *r.UpdatedBy != "" {
			inspector = *r.UpdatedBy
		}
		fecha := "—"
		if r.UpdateTime != nil {
			fecha = r.UpdateTime.Format("02/01/2006 15:04")
		}

		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(r.TaskName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(r.SubTaskName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.Status, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1,
				Color: statusColor(r.Status),
			})),
			col.New(1).Add(text.New(measured, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(inspector, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fecha, props.Text{Size: 7, Align: align.Right, Top: 1, Right: 1})),
		))

		if r.Remark != nil && *r.Remark != "" {
			result = append(result, row.New(5).Add(
				col.New(2),
				col.New(10).Add(text.New("Obs: "+*r.Remark, props.Text{
					Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray,
				})),
			))
		}
	}
	return result
}

// summaryRow: conteo de resultados del checklist.
func summaryRow(rows []*repository.SerialSubTaskStatusView) core.Row {
	var ok, notOK, pending int
	for _, r := range rows {
		switch r.Status {
		case entity.SubTaskStatusOK:
			ok++
		case entity.SubTaskStatusNotOK:
			notOK++
		default:
			pending++
		}
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total: %d subtareas   |   OK: %d   |   Not_OK: %d   |   Pendientes: %d",
				len(rows), ok, notOK, pending,
			), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func statusColor(status string) *props.Color {
	switch status {
	case entity.SubTaskStatusOK:
		return colorOK
	case entity.SubTaskStatusNotOK:
		return colorNotOK
	default:
		return colorGray
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
