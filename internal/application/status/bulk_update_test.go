package status_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Calidad-api/internal/application/dto"
	"github.com/jhoicas/Calidad-api/internal/application/status"
	"github.com/jhoicas/Calidad-api/internal/domain"
	"github.com/jhoicas/Calidad-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del lote de actualización: éxito parcial, validación de dominio,
// disciplina de update_time y atomicidad ante fallos de almacenamiento.
// ──────────────────────────────────────────────────────────────────────────────

// materialize deja el fixture con las filas pending creadas y devuelve el id
// de fila por subtask para armar lotes.
func materialize(t *testing.T, uc *status.StatusUseCase) map[string]string {
	t.Helper()
	resp, err := uc.EnsureStatusRows(testSerialNo)
	require.NoError(t, err)
	ids := map[string]string{}
	for _, r := range resp.SubTaskStatuses {
		ids[r.SubTaskID] = r.ID
	}
	return ids
}

func TestApplyUpdates_LoteCompletoExitoso(t *testing.T) {
	uc, statusRepo := buildStatusFixture()
	ids := materialize(t, uc)

	remark := "dentro de tolerancia"
	measured := decimal.RequireFromString("12.45")
	req := &dto.BulkUpdateRequest{
		SerialNo: testSerialNo,
		Updates: []dto.BulkUpdateItem{
			{ID: ids["st-1"], Status: entity.SubTaskStatusOK},
			{ID: ids["st-2"], Status: entity.SubTaskStatusNotOK, Remark: &remark, MeasuredValue: &measured},
		},
	}
	ident := &status.Identity{Name: "María Gómez", Handle: "maria@planta.com"}

	resp, err := uc.ApplyUpdates(context.Background(), req, ident)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.UpdatedCount)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, "Status update completed", resp.Message)

	row, _ := statusRepo.GetByID(ids["st-2"])
	require.NotNil(t, row)
	assert.Equal(t, entity.SubTaskStatusNotOK, row.Status)
	require.NotNil(t, row.Remark)
	assert.Equal(t, "dentro de tolerancia", *row.Remark)
	require.NotNil(t, row.MeasuredValue)
	assert.True(t, measured.Equal(*row.MeasuredValue))
	require.NotNil(t, row.UpdatedBy)
	assert.Equal(t, "María Gómez", *row.UpdatedBy)
	assert.NotNil(t, row.UpdateTime, "la mutación debe sellar update_time")
}

func TestApplyUpdates_ExitoParcialAcumulaErroresEnOrden(t *testing.T) {
	uc, statusRepo := buildStatusFixture()
	ids := materialize(t, uc)

	req := &dto.BulkUpdateRequest{
		SerialNo: testSerialNo,
		Updates: []dto.BulkUpdateItem{
			{ID: ids["st-1"], Status: entity.SubTaskStatusOK}, // válido
			{ID: "", Status: entity.SubTaskStatusOK},          // sin id
			{ID: "fila-fantasma", Status: entity.SubTaskStatusOK},
			{ID: ids["st-2"], Status: "aprobadísimo"}, // estado fuera de dominio
		},
	}

	resp, err := uc.ApplyUpdates(context.Background(), req, nil)
	require.NoError(t, err, "los errores por elemento no abortan el lote")

	assert.Equal(t, 1, resp.UpdatedCount)
	require.Len(t, resp.Errors, 3)
	assert.Equal(t, "Missing id or status", resp.Errors[0].Error)
	assert.Equal(t, "Not found", resp.Errors[1].Error)
	assert.Equal(t, "fila-fantasma", resp.Errors[1].ID)
	assert.Contains(t, resp.Errors[2].Error, "Status must be one of")

	// El elemento válido sí se aplicó pese a los fallos vecinos.
	row, _ := statusRepo.GetByID(ids["st-1"])
	assert.Equal(t, entity.SubTaskStatusOK, row.Status)
	// El elemento con estado inválido no se tocó.
	row2, _ := statusRepo.GetByID(ids["st-2"])
	assert.Equal(t, entity.SubTaskStatusPending, row2.Status)
	assert.Nil(t, row2.UpdateTime)
}

func TestApplyUpdates_RechazaFilaDeOtroSerial(t *testing.T) {
	uc, statusRepo := buildStatusFixture()
	ids := materialize(t, uc)

	// Fila perteneciente a otro serial pero con id conocido.
	foreign := &entity.SerialSubTaskStatus{
		ID:        "row-ajena",
		SerialNo:  "SN-OTRO-SERIAL",
		SubTaskID: "st-9",
		Status:    entity.SubTaskStatusPending,
	}
	created, err := statusRepo.CreateIfAbsent(foreign)
	require.NoError(t, err)
	require.True(t, created)

	req := &dto.BulkUpdateRequest{
		SerialNo: testSerialNo,
		Updates: []dto.BulkUpdateItem{
			{ID: "row-ajena", Status: entity.SubTaskStatusOK},
			{ID: ids["st-1"], Status: entity.SubTaskStatusOK},
		},
	}

	resp, err := uc.ApplyUpdates(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.UpdatedCount)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Serial number mismatch", resp.Errors[0].Error)

	// La fila ajena queda intacta.
	row, _ := statusRepo.GetByID("row-ajena")
	assert.Equal(t, entity.SubTaskStatusPending, row.Status)
}

func TestApplyUpdates_AtribucionSinValorDelCliente(t *testing.T) {
	uc, statusRepo := buildStatusFixture()
	ids := materialize(t, uc)

	req := &dto.BulkUpdateRequest{
		SerialNo: testSerialNo,
		Updates:  []dto.BulkUpdateItem{{ID: ids["st-1"], Status: entity.SubTaskStatusOK}},
	}

	// Sin identidad de sesión ni valor del cliente → "Unknown".
	_, err := uc.ApplyUpdates(context.Background(), req, nil)
	require.NoError(t, err)
	row, _ := statusRepo.GetByID(ids["st-1"])
	require.NotNil(t, row.UpdatedBy)
	assert.Equal(t, "Unknown", *row.UpdatedBy)
}

func TestApplyUpdates_EntradaInvalida(t *testing.T) {
	uc, _ := buildStatusFixture()

	_, err := uc.ApplyUpdates(context.Background(), &dto.BulkUpdateRequest{SerialNo: "", Updates: nil}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ApplyUpdates(context.Background(), &dto.BulkUpdateRequest{
		SerialNo: "SN-NO-EXISTE",
		Updates:  []dto.BulkUpdateItem{{ID: "x", Status: entity.SubTaskStatusOK}},
	}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyUpdates_FalloDeAlmacenamientoRevierteTodo(t *testing.T) {
	uc, statusRepo := buildStatusFixture()
	ids := materialize(t, uc)

	// El segundo Update falla; el primero ya se había aplicado dentro de la tx.
	statusRepo.failUpdateOnID = ids["st-2"]

	req := &dto.BulkUpdateRequest{
		SerialNo: testSerialNo,
		Updates: []dto.BulkUpdateItem{
			{ID: ids["st-1"], Status: entity.SubTaskStatusOK},
			{ID: ids["st-2"], Status: entity.SubTaskStatusOK},
		},
	}

	_, err := uc.ApplyUpdates(context.Background(), req, nil)
	require.Error(t, err)

	// Rollback: ni siquiera el primer elemento queda aplicado.
	row, _ := statusRepo.GetByID(ids["st-1"])
	assert.Equal(t, entity.SubTaskStatusPending, row.Status)
	assert.Nil(t, row.UpdateTime)
}

func TestApplyUpdates_ReintentoTrasFalloParcialEsConsistente(t *testing.T) {
	uc, statusRepo := buildStatusFixture()
	ids := materialize(t, uc)

	req := &dto.BulkUpdateRequest{
		SerialNo: testSerialNo,
		Updates: []dto.BulkUpdateItem{
			{ID: ids["st-1"], Status: entity.SubTaskStatusOK},
			{ID: "fila-fantasma", Status: entity.SubTaskStatusOK},
		},
	}

	first, err := uc.ApplyUpdates(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.UpdatedCount)
	assert.Len(t, first.Errors, 1)

	// Reintento del mismo lote: mismo resultado, sin duplicar efectos.
	second, err := uc.ApplyUpdates(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, second.UpdatedCount)
	assert.Len(t, second.Errors, 1)

	row, _ := statusRepo.GetByID(ids["st-1"])
	assert.Equal(t, entity.SubTaskStatusOK, row.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ruta legacy keyed por subtask_id
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateBySubTask_OmiteFilasInexistentesEnSilencio(t *testing.T) {
	uc, statusRepo := buildStatusFixture()
	materialize(t, uc)

	req := &dto.UpdateBySubTaskRequest{
		SerialNo: testSerialNo,
		Updates: []dto.SubTaskValueItem{
			{SubTaskID: "st-1", Value: entity.SubTaskStatusOK},
			{SubTaskID: "st-inexistente", Value: entity.SubTaskStatusOK},
		},
	}
	ident := &status.Identity{Name: "Carlos Ruiz"}

	resp, err := uc.UpdateBySubTask(context.Background(), req, ident)
	require.NoError(t, err)

	require.Len(t, resp.Updated, 1, "la fila inexistente se omite sin error")
	assert.Equal(t, "st-1", resp.Updated[0].SubTaskID)
	assert.Equal(t, "Updated subtasks for "+testSerialNo, resp.Message)

	row, _ := statusRepo.GetBySerialAndSubTask(testSerialNo, "st-1")
	assert.Equal(t, entity.SubTaskStatusOK, row.Status)
	require.NotNil(t, row.UpdatedBy)
	assert.Equal(t, "Carlos Ruiz", *row.UpdatedBy)
	assert.NotNil(t, row.UpdateTime)
}

func TestUpdateBySubTask_SerialInexistente(t *testing.T) {
	uc, _ := buildStatusFixture()

	_, err := uc.UpdateBySubTask(context.Background(), &dto.UpdateBySubTaskRequest{
		SerialNo: "SN-NO-EXISTE",
		Updates:  []dto.SubTaskValueItem{{SubTaskID: "st-1", Value: entity.SubTaskStatusOK}},
	}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
