package status_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Calidad-api/internal/application/status"
	"github.com/jhoicas/Calidad-api/internal/domain"
	"github.com/jhoicas/Calidad-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de materialización perezosa: la primera consulta de un serial crea una
// fila "pending" por cada subtarea de su categoría; las siguientes no crean
// nada y nunca tocan filas existentes.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCategoryID = "cat-motores"
	testSerialNo   = "SN-2024-0001"
)

// buildStatusFixture arma un caso de uso con un serial y tres subtareas.
func buildStatusFixture() (*status.StatusUseCase, *fakeStatusRepo) {
	serialRepo := newFakeSerialRepo(&entity.ProductSerial{
		SerialNo:    testSerialNo,
		CategoryID:  testCategoryID,
		ProductName: "Motor X200",
		Status:      entity.SerialStatusPending,
	})
	categoryRepo := newFakeCategoryRepo(&entity.ProductCategory{
		ID:   testCategoryID,
		Name: "Motores",
	})
	subtaskRepo := &fakeSubTaskRepo{subtasks: []*entity.SubTask{
		{ID: "st-1", TaskID: "t-1", Name: "Inspección visual"},
		{ID: "st-2", TaskID: "t-1", Name: "Prueba de torque"},
		{ID: "st-3", TaskID: "t-2", Name: "Medición de vibración"},
	}}
	statusRepo := newFakeStatusRepo()
	statusRepo.productName = "Motor X200"
	statusRepo.subtaskNames = map[string]string{
		"st-1": "Inspección visual",
		"st-2": "Prueba de torque",
		"st-3": "Medición de vibración",
	}
	statusRepo.taskBySubNo = map[string]string{"st-1": "t-1", "st-2": "t-1", "st-3": "t-2"}
	statusRepo.taskNames = map[string]string{"t-1": "Ensamblaje", "t-2": "Pruebas finales"}

	uc := status.NewStatusUseCase(
		&fakeTxRunner{statusRepo: statusRepo},
		serialRepo,
		categoryRepo,
		subtaskRepo,
		statusRepo,
	)
	return uc, statusRepo
}

func TestEnsureStatusRows_CreaUnaFilaPorSubtarea(t *testing.T) {
	uc, statusRepo := buildStatusFixture()

	resp, err := uc.EnsureStatusRows(testSerialNo)
	require.NoError(t, err)

	assert.Len(t, resp.SubTaskStatuses, 3, "debe haber una fila por subtarea de la categoría")
	for _, row := range resp.SubTaskStatuses {
		assert.Equal(t, entity.SubTaskStatusPending, row.Status)
		assert.Nil(t, row.UpdatedBy, "las filas recién creadas no llevan atribución")
		assert.Nil(t, row.UpdateTime, "update_time debe ser null hasta la primera mutación")
	}

	count, err := statusRepo.CountBySerial(testSerialNo)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestEnsureStatusRows_EncabezadoDelSerial(t *testing.T) {
	uc, _ := buildStatusFixture()

	resp, err := uc.EnsureStatusRows(testSerialNo)
	require.NoError(t, err)

	assert.Equal(t, testSerialNo, resp.ProductSerial.SerialNo)
	assert.Equal(t, "Motor X200", resp.ProductSerial.ProductName)
	assert.Equal(t, "Motores", resp.ProductSerial.Category)
	assert.Equal(t, entity.SerialStatusPending, resp.ProductSerial.Status)
	assert.Equal(t, "Fetched subtasks for "+testSerialNo, resp.Message)
}

func TestEnsureStatusRows_EsIdempotente(t *testing.T) {
	uc, statusRepo := buildStatusFixture()

	_, err := uc.EnsureStatusRows(testSerialNo)
	require.NoError(t, err)

	// Segunda consulta: mismo resultado, ninguna fila nueva.
	resp, err := uc.EnsureStatusRows(testSerialNo)
	require.NoError(t, err)
	assert.Len(t, resp.SubTaskStatuses, 3)

	count, _ := statusRepo.CountBySerial(testSerialNo)
	assert.Equal(t, 3, count, "la reconciliación repetida no debe duplicar filas")
}

func TestEnsureStatusRows_NoTocaFilasExistentes(t *testing.T) {
	uc, statusRepo := buildStatusFixture()

	_, err := uc.EnsureStatusRows(testSerialNo)
	require.NoError(t, err)

	// Un inspector marca st-1 como OK fuera de banda.
	row, err := statusRepo.GetBySerialAndSubTask(testSerialNo, "st-1")
	require.NoError(t, err)
	require.NotNil(t, row)
	row.Status = entity.SubTaskStatusOK
	updatedBy := "Carlos Ruiz"
	row.UpdatedBy = &updatedBy
	now := time.Now()
	row.UpdateTime = &now
	require.NoError(t, statusRepo.Update(row))

	// La siguiente consulta debe preservar el resultado registrado.
	resp, err := uc.EnsureStatusRows(testSerialNo)
	require.NoError(t, err)

	var found bool
	for _, r := range resp.SubTaskStatuses {
		if r.SubTaskID == "st-1" {
			found = true
			assert.Equal(t, entity.SubTaskStatusOK, r.Status)
			require.NotNil(t, r.UpdatedBy)
			assert.Equal(t, "Carlos Ruiz", *r.UpdatedBy)
			assert.NotNil(t, r.UpdateTime)
		}
	}
	assert.True(t, found)
}

func TestEnsureStatusRows_SerialInexistente(t *testing.T) {
	uc, _ := buildStatusFixture()

	resp, err := uc.EnsureStatusRows("SN-NO-EXISTE")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnsureStatusRows_VistaEnriquecida(t *testing.T) {
	uc, _ := buildStatusFixture()

	resp, err := uc.EnsureStatusRows(testSerialNo)
	require.NoError(t, err)

	byID := map[string]string{}
	for _, r := range resp.SubTaskStatuses {
		byID[r.SubTaskID] = r.SubTaskName
		assert.Equal(t, "Motor X200", r.ProductName)
		assert.NotEmpty(t, r.TaskID)
		assert.NotEmpty(t, r.TaskName)
	}
	assert.Equal(t, "Prueba de torque", byID["st-2"])
}
