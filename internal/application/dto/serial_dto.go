package dto

import "time"

// CreateSerialRequest entrada para registrar un serial de producto.
type CreateSerialRequest struct {
	SerialNo    string `json:"serial_no" validate:"required,min=1,max=50"`
	CategoryID  string `json:"category_id" validate:"required"`
	ProductName string `json:"product_name" validate:"required,min=1,max=100"`
}

// UpdateSerialRequest entrada para actualizar un serial.
type UpdateSerialRequest struct {
	ProductName *string `json:"product_name"`
	Status      *string `json:"status"`
}

// SerialResponse salida de un serial.
type SerialResponse struct {
	SerialNo     string    `json:"serial_no"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	ProductName  string    `json:"product_name"`
	Status       string    `json:"status"`
	SubTaskID    *string   `json:"subtask_id,omitempty"` // enlace legacy
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SerialListResponse lista de seriales.
type SerialListResponse struct {
	Items []SerialResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
