package entity

import "time"

// Task es un ítem del checklist de inspección, ligado a una categoría de producto.
type Task struct {
	ID         string
	CategoryID string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
