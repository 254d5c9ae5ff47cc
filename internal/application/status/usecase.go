package status

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Calidad-api/internal/application/dto"
	"github.com/jhoicas/Calidad-api/internal/domain"
	"github.com/jhoicas/Calidad-api/internal/domain/entity"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// StatusUseCase materializa y consulta los estados de subtarea por serial.
// La creación es perezosa: la primera consulta de un serial garantiza una
// fila "pending" por cada subtarea alcanzable desde su categoría.
type StatusUseCase struct {
	txRunner     TxRunner
	serialRepo   repository.SerialRepository
	categoryRepo repository.CategoryRepository
	subtaskRepo  repository.SubTaskRepository
	statusRepo   repository.SerialStatusRepository
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(
	txRunner TxRunner,
	serialRepo repository.SerialRepository,
	categoryRepo repository.CategoryRepository,
	subtaskRepo repository.SubTaskRepository,
	statusRepo repository.SerialStatusRepository,
) *StatusUseCase {
	return &StatusUseCase{
		txRunner:     txRunner,
		serialRepo:   serialRepo,
		categoryRepo: categoryRepo,
		subtaskRepo:  subtaskRepo,
		statusRepo:   statusRepo,
	}
}

// EnsureStatusRows garantiza que exista una fila de estado por cada subtarea
// de la categoría del serial y devuelve la vista completa.
//
// La reconciliación es idempotente: CreateIfAbsent usa el constraint único
// (serial_no, subtask_id) como autoridad, así que dos llamadas concurrentes
// para el mismo serial terminan con exactamente una fila por subtarea y
// ninguna observa error por la carrera. Las filas existentes no se tocan.
func (uc *StatusUseCase) EnsureStatusRows(serialNo string) (*dto.SerialStatusesResponse, error) {
	serial, err := uc.serialRepo.GetBySerialNo(serialNo)
	if err != nil {
		return nil, err
	}
	if serial == nil {
		return nil, domain.ErrNotFound
	}

	subtasks, err := uc.subtaskRepo.ListByCategory(serial.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, st := range subtasks {
		row := &entity.SerialSubTaskStatus{
			ID:        uuid.New().String(),
			SerialNo:  serial.SerialNo,
			SubTaskID: st.ID,
			Status:    entity.SubTaskStatusPending,
			CreatedAt: now,
		}
		// created=false significa que la fila ya existía (o que un llamador
		// concurrente la creó primero); ambos casos son éxito.
		if _, err := uc.statusRepo.CreateIfAbsent(row); err != nil {
			return nil, err
		}
	}

	views, err := uc.statusRepo.ListViewBySerial(serial.SerialNo)
	if err != nil {
		return nil, err
	}

	categoryName := ""
	if category, err := uc.categoryRepo.GetByID(serial.CategoryID); err == nil && category != nil {
		categoryName = category.Name
	}

	return project(serial, categoryName, views), nil
}

// project arma la respuesta a partir del serial y sus filas enriquecidas.
// Solo lectura: no muta ninguna entidad y es total sobre entradas válidas.
func project(serial *entity.ProductSerial, categoryName string, views []*repository.SerialSubTaskStatusView) *dto.SerialStatusesResponse {
	rows := make([]dto.SerialStatusRow, 0, len(views))
	for _, v := range views {
		rows = append(rows, dto.SerialStatusRow{
			ID:            v.ID,
			SerialNo:      v.SerialNo,
			ProductName:   v.ProductName,
			TaskID:        v.TaskID,
			TaskName:      v.TaskName,
			SubTaskID:     v.SubTaskID,
			SubTaskName:   v.SubTaskName,
			Status:        v.Status,
			UpdatedBy:     v.UpdatedBy,
			Remark:        v.Remark,
			MeasuredValue: v.MeasuredValue,
			UpdateTime:    v.UpdateTime,
		})
	}
	return &dto.SerialStatusesResponse{
		ProductSerial: dto.SerialHeader{
			SerialNo:    serial.SerialNo,
			ProductName: serial.ProductName,
			Category:    categoryName,
			Status:      serial.Status,
		},
		SubTaskStatuses: rows,
		Message:         fmt.Sprintf("Fetched subtasks for %s", serial.SerialNo),
	}
}
