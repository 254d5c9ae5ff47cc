package entity

import "time"

// ProductCategory representa una línea de producto; agrupa las tareas de inspección.
type ProductCategory struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
