package dto

import "time"

// CreateTaskRequest entrada para crear una tarea de inspección.
type CreateTaskRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateTaskRequest entrada para actualizar una tarea.
type UpdateTaskRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TaskListResponse lista paginada de tareas.
type TaskListResponse struct {
	Items []TaskResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
