package entity

import "time"

// Estados globales de un serial.
const (
	SerialStatusPending   = "pending"
	SerialStatusCompleted = "completed"
)

// ProductSerial es una unidad física identificada por su número de serie
// (clave natural). ProductName se guarda desnormalizado para presentación.
//
// SubTaskID es el enlace directo heredado a una sola subtarea. Deprecated:
// superseded por el conjunto de SerialSubTaskStatus; solo las rutas legacy
// lo exponen.
type ProductSerial struct {
	SerialNo    string // PK
	CategoryID  string
	ProductName string
	Status      string
	SubTaskID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
