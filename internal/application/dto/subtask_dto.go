package dto

import "time"

// CreateSubTaskRequest entrada para crear una subtarea.
type CreateSubTaskRequest struct {
	TaskID      string `json:"task_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateSubTaskRequest entrada para actualizar una subtarea.
type UpdateSubTaskRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// UpdateSubTaskStatusRequest entrada para la acción legacy update-status
// (estado escalar global de la subtarea, no por serial).
type UpdateSubTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SubTaskResponse salida de una subtarea.
type SubTaskResponse struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id"`
	TaskName    string    `json:"task_name,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"` // escalar legacy
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubTaskListResponse lista de subtareas (por tarea o paginada).
type SubTaskListResponse struct {
	TaskID   string            `json:"task_id,omitempty"`
	TaskName string            `json:"task_name,omitempty"`
	Items    []SubTaskResponse `json:"subtasks"`
	Page     *PageResponse     `json:"page,omitempty"`
}
