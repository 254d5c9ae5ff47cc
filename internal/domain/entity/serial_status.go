package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resultados de inspección por (serial, subtarea).
const (
	SubTaskStatusPending = "pending"
	SubTaskStatusOK      = "OK"
	SubTaskStatusNotOK   = "Not_OK"
)

// IsValidSubTaskStatus valida el dominio de estados permitidos.
func IsValidSubTaskStatus(s string) bool {
	return s == SubTaskStatusPending || s == SubTaskStatusOK || s == SubTaskStatusNotOK
}

// SerialSubTaskStatus es el registro central: el resultado de una subtarea
// de inspección para un serial concreto. Única por (SerialNo, SubTaskID).
//
// Las filas se crean perezosamente en la primera consulta del serial, con
// status "pending" y sin atribución; UpdateTime solo se asigna al mutar,
// nunca al crear.
type SerialSubTaskStatus struct {
	ID            string
	SerialNo      string
	SubTaskID     string
	Status        string
	Remark        *string
	MeasuredValue *decimal.Decimal // medición opcional registrada junto al resultado
	UpdatedBy     *string
	UpdateTime    *time.Time
	CreatedAt     time.Time
}
