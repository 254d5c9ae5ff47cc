package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Calidad-api/internal/application/dto"
	"github.com/jhoicas/Calidad-api/internal/domain/entity"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías de producto, más la vista
// de árbol (categoría → tareas → subtareas) que consume la app móvil.
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	taskRepo    repository.TaskRepository
	subtaskRepo repository.SubTaskRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, taskRepo repository.TaskRepository, subtaskRepo repository.SubTaskRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, taskRepo: taskRepo, subtaskRepo: subtaskRepo}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	category := &entity.ProductCategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID. Devuelve nil, nil si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// GetTree arma la vista anidada: categoría con sus tareas y las subtareas de
// cada tarea. Devuelve nil, nil si la categoría no existe.
func (uc *CategoryUseCase) GetTree(id string) (*dto.CategoryTreeResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	tasks, err := uc.taskRepo.ListByCategory(category.ID)
	if err != nil {
		return nil, err
	}
	tree := &dto.CategoryTreeResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Tasks:       []dto.TaskTreeResponse{},
	}
	for _, task := range tasks {
		subtasks, err := uc.subtaskRepo.ListByTask(task.ID)
		if err != nil {
			return nil, err
		}
		node := dto.TaskTreeResponse{ID: task.ID, Name: task.Name, SubTasks: []dto.SubTaskResponse{}}
		for _, st := range subtasks {
			node.SubTasks = append(node.SubTasks, *toSubTaskResponse(st, task.Name))
		}
		tree.Tasks = append(tree.Tasks, node)
	}
	return tree, nil
}

// List lista categorías paginadas.
func (uc *CategoryUseCase) List(page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	categories, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza los campos enviados. Devuelve nil, nil si no existe.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría. El cascade de tareas/subtareas lo resuelve la DB.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.ProductCategory) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
