package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría de producto.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CategoryTreeResponse categoría con su árbol de tareas y subtareas anidado
// (equivalente a la vista anidada del API original).
type CategoryTreeResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Tasks       []TaskTreeResponse `json:"tasks"`
}

// TaskTreeResponse tarea con subtareas anidadas dentro del árbol de categoría.
type TaskTreeResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	SubTasks []SubTaskResponse `json:"subtasks"`
}
