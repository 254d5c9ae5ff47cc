package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Calidad-api/internal/application/dto"
	"github.com/jhoicas/Calidad-api/internal/domain"
	"github.com/jhoicas/Calidad-api/internal/domain/entity"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// TaskUseCase casos de uso CRUD para tareas de inspección.
type TaskUseCase struct {
	repo         repository.TaskRepository
	categoryRepo repository.CategoryRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository, categoryRepo repository.CategoryRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea una tarea ligada a una categoría existente.
func (uc *TaskUseCase) Create(in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound // la categoría no existe
	}
	now := time.Now()
	task := &entity.Task{
		ID:         uuid.New().String(),
		CategoryID: in.CategoryID,
		Name:       in.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(task); err != nil {
		return nil, err
	}
	resp := toTaskResponse(task)
	resp.CategoryName = category.Name
	return resp, nil
}

// GetByID obtiene una tarea por ID. Devuelve nil, nil si no existe.
func (uc *TaskUseCase) GetByID(id string) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	return toTaskResponse(task), nil
}

// List lista tareas paginadas.
func (uc *TaskUseCase) List(page dto.PageRequest) (*dto.TaskListResponse, error) {
	page.DefaultPage()
	tasks, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, *toTaskResponse(t))
	}
	return &dto.TaskListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListByCategory lista las tareas de una categoría.
func (uc *TaskUseCase) ListByCategory(categoryID string) (*dto.TaskListResponse, error) {
	tasks, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, *toTaskResponse(t))
	}
	return &dto.TaskListResponse{Items: items}, nil
}

// Update actualiza los campos enviados. Devuelve nil, nil si no existe.
func (uc *TaskUseCase) Update(id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	if in.Name != nil {
		task.Name = *in.Name
	}
	task.UpdatedAt = time.Now()
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Delete elimina una tarea.
func (uc *TaskUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:         t.ID,
		CategoryID: t.CategoryID,
		Name:       t.Name,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
