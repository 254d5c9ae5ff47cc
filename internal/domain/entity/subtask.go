package entity

import "time"

// SubTask es el ítem hoja del checklist; el resultado real por unidad vive
// en SerialSubTaskStatus.
//
// Status es el campo escalar heredado del modelo original (un solo valor
// global por subtarea). Deprecated: superseded por el estado por serial;
// solo lo leen las rutas legacy.
type SubTask struct {
	ID          string
	TaskID      string
	Name        string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
