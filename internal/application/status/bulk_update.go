package status

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Calidad-api/internal/application/dto"
	"github.com/jhoicas/Calidad-api/internal/domain"
	"github.com/jhoicas/Calidad-api/internal/domain/entity"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// ApplyUpdates aplica un lote de cambios de estado sobre las filas de un
// serial, todo dentro de una sola transacción. Los errores por elemento
// (id faltante, fila inexistente, serial ajeno, estado fuera de dominio) se
// acumulan en orden de envío y NO abortan el lote; solo un fallo de
// almacenamiento revierte la transacción completa.
func (uc *StatusUseCase) ApplyUpdates(ctx context.Context, req *dto.BulkUpdateRequest, ident *Identity) (*dto.BulkUpdateResponse, error) {
	if req == nil || req.SerialNo == "" || len(req.Updates) == 0 {
		return nil, fmt.Errorf("%w: serial_no y updates son obligatorios", domain.ErrInvalidInput)
	}

	serial, err := uc.serialRepo.GetBySerialNo(req.SerialNo)
	if err != nil {
		return nil, err
	}
	if serial == nil {
		return nil, domain.ErrNotFound
	}

	result := &dto.BulkUpdateResponse{
		Errors:  []dto.BulkUpdateError{},
		Message: "Status update completed",
	}

	err = uc.txRunner.Run(ctx, func(statusRepo repository.SerialStatusRepository) error {
		for _, item := range req.Updates {
			if item.ID == "" || item.Status == "" {
				result.Errors = append(result.Errors, dto.BulkUpdateError{ID: item.ID, Error: "Missing id or status"})
				continue
			}

			row, err := statusRepo.GetByID(item.ID)
			if err != nil {
				return err
			}
			if row == nil {
				result.Errors = append(result.Errors, dto.BulkUpdateError{ID: item.ID, Error: "Not found"})
				continue
			}

			if row.SerialNo != req.SerialNo {
				result.Errors = append(result.Errors, dto.BulkUpdateError{ID: item.ID, Error: "Serial number mismatch"})
				continue
			}

			if !entity.IsValidSubTaskStatus(item.Status) {
				result.Errors = append(result.Errors, dto.BulkUpdateError{
					ID:    item.ID,
					Error: fmt.Sprintf("Status must be one of [%s %s %s]", entity.SubTaskStatusPending, entity.SubTaskStatusOK, entity.SubTaskStatusNotOK),
				})
				continue
			}

			row.Status = item.Status
			if item.Remark != nil {
				row.Remark = item.Remark
			}
			if item.MeasuredValue != nil {
				row.MeasuredValue = item.MeasuredValue
			}
			updatedBy := ResolveUpdatedBy(item.UpdatedBy, ident)
			row.UpdatedBy = &updatedBy
			now := time.Now()
			row.UpdateTime = &now

			if err := statusRepo.Update(row); err != nil {
				return err
			}
			result.UpdatedCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateBySubTask es la ruta de actualización keyed por subtask_id que usan
// los clientes antiguos. Las filas inexistentes se omiten en silencio (no hay
// acumulación de errores), pero la atribución y update_time se aplican igual
// que en la ruta principal.
func (uc *StatusUseCase) UpdateBySubTask(ctx context.Context, req *dto.UpdateBySubTaskRequest, ident *Identity) (*dto.UpdateBySubTaskResponse, error) {
	if req == nil || req.SerialNo == "" || len(req.Updates) == 0 {
		return nil, fmt.Errorf("%w: serial_no y updates son obligatorios", domain.ErrInvalidInput)
	}

	serial, err := uc.serialRepo.GetBySerialNo(req.SerialNo)
	if err != nil {
		return nil, err
	}
	if serial == nil {
		return nil, domain.ErrNotFound
	}

	result := &dto.UpdateBySubTaskResponse{
		Message: fmt.Sprintf("Updated subtasks for %s", req.SerialNo),
		Updated: []dto.UpdatedSubTask{},
	}

	err = uc.txRunner.Run(ctx, func(statusRepo repository.SerialStatusRepository) error {
		for _, item := range req.Updates {
			row, err := statusRepo.GetBySerialAndSubTask(req.SerialNo, item.SubTaskID)
			if err != nil {
				return err
			}
			if row == nil {
				continue
			}

			row.Status = item.Value
			updatedBy := ResolveUpdatedBy("", ident)
			row.UpdatedBy = &updatedBy
			now := time.Now()
			row.UpdateTime = &now

			if err := statusRepo.Update(row); err != nil {
				return err
			}
			result.Updated = append(result.Updated, dto.UpdatedSubTask{SubTaskID: item.SubTaskID, Status: item.Value})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
