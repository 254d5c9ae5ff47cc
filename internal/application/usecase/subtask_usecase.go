package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Calidad-api/internal/application/dto"
	"github.com/jhoicas/Calidad-api/internal/domain"
	"github.com/jhoicas/Calidad-api/internal/domain/entity"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// SubTaskUseCase casos de uso CRUD para subtareas, incluida la acción legacy
// update-status sobre el escalar global.
type SubTaskUseCase struct {
	repo     repository.SubTaskRepository
	taskRepo repository.TaskRepository
}

// NewSubTaskUseCase construye el caso de uso.
func NewSubTaskUseCase(repo repository.SubTaskRepository, taskRepo repository.TaskRepository) *SubTaskUseCase {
	return &SubTaskUseCase{repo: repo, taskRepo: taskRepo}
}

// Create crea una subtarea bajo una tarea existente. El escalar legacy inicia
// en "pending" como en el modelo original.
func (uc *SubTaskUseCase) Create(in dto.CreateSubTaskRequest) (*dto.SubTaskResponse, error) {
	task, err := uc.taskRepo.GetByID(in.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound // la tarea no existe
	}
	now := time.Now()
	subtask := &entity.SubTask{
		ID:          uuid.New().String(),
		TaskID:      in.TaskID,
		Name:        in.Name,
		Description: in.Description,
		Status:      entity.SubTaskStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(subtask); err != nil {
		return nil, err
	}
	return toSubTaskResponse(subtask, task.Name), nil
}

// GetByID obtiene una subtarea por ID. Devuelve nil, nil si no existe.
func (uc *SubTaskUseCase) GetByID(id string) (*dto.SubTaskResponse, error) {
	subtask, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subtask == nil {
		return nil, nil
	}
	return toSubTaskResponse(subtask, ""), nil
}

// List lista subtareas paginadas.
func (uc *SubTaskUseCase) List(page dto.PageRequest) (*dto.SubTaskListResponse, error) {
	page.DefaultPage()
	subtasks, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubTaskResponse, 0, len(subtasks))
	for _, st := range subtasks {
		items = append(items, *toSubTaskResponse(st, ""))
	}
	return &dto.SubTaskListResponse{
		Items: items,
		Page:  &dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListByTask lista las subtareas de una tarea, con el encabezado de la tarea.
// Devuelve ErrNotFound si la tarea no existe.
func (uc *SubTaskUseCase) ListByTask(taskID string) (*dto.SubTaskListResponse, error) {
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	subtasks, err := uc.repo.ListByTask(taskID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubTaskResponse, 0, len(subtasks))
	for _, st := range subtasks {
		items = append(items, *toSubTaskResponse(st, task.Name))
	}
	return &dto.SubTaskListResponse{
		TaskID:   task.ID,
		TaskName: task.Name,
		Items:    items,
	}, nil
}

// Update actualiza los campos enviados. Devuelve nil, nil si no existe.
func (uc *SubTaskUseCase) Update(id string, in dto.UpdateSubTaskRequest) (*dto.SubTaskResponse, error) {
	subtask, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subtask == nil {
		return nil, nil
	}
	if in.Name != nil {
		subtask.Name = *in.Name
	}
	if in.Description != nil {
		subtask.Description = *in.Description
	}
	subtask.UpdatedAt = time.Now()
	if err := uc.repo.Update(subtask); err != nil {
		return nil, err
	}
	return toSubTaskResponse(subtask, ""), nil
}

// UpdateStatus es la acción legacy: cambia el escalar global de la subtarea.
// Valida contra el mismo dominio de estados que las filas por serial.
func (uc *SubTaskUseCase) UpdateStatus(id string, in dto.UpdateSubTaskStatusRequest) (*dto.SubTaskResponse, error) {
	if !entity.IsValidSubTaskStatus(in.Status) {
		return nil, domain.ErrInvalidStatus
	}
	subtask, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subtask == nil {
		return nil, nil
	}
	subtask.Status = in.Status
	subtask.UpdatedAt = time.Now()
	if err := uc.repo.Update(subtask); err != nil {
		return nil, err
	}
	return toSubTaskResponse(subtask, ""), nil
}

// Delete elimina una subtarea.
func (uc *SubTaskUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSubTaskResponse(st *entity.SubTask, taskName string) *dto.SubTaskResponse {
	return &dto.SubTaskResponse{
		ID:          st.ID,
		TaskID:      st.TaskID,
		TaskName:    taskName,
		Name:        st.Name,
		Description: st.Description,
		Status:      st.Status,
		CreatedAt:   st.CreatedAt,
		UpdatedAt:   st.UpdatedAt,
	}
}
