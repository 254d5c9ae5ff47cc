package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SerialHeader bloque de identidad del serial en la vista por serial.
type SerialHeader struct {
	SerialNo    string `json:"serial_no"`
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

// SerialStatusRow fila de estado enriquecida para presentación.
type SerialStatusRow struct {
	ID            string           `json:"id"`
	SerialNo      string           `json:"serial_no"`
	ProductName   string           `json:"product_name"`
	TaskID        string           `json:"task_id"`
	TaskName      string           `json:"task_name"`
	SubTaskID     string           `json:"subtask_id"`
	SubTaskName   string           `json:"subtask_name"`
	Status        string           `json:"status"`
	UpdatedBy     *string          `json:"updated_by"`
	Remark        *string          `json:"remark"`
	MeasuredValue *decimal.Decimal `json:"measured_value,omitempty"`
	UpdateTime    *time.Time       `json:"update_time"`
}

// SerialStatusesResponse vista completa de un serial: identidad + filas de estado.
type SerialStatusesResponse struct {
	ProductSerial   SerialHeader      `json:"product_serial"`
	SubTaskStatuses []SerialStatusRow `json:"subtask_statuses"`
	Message         string            `json:"message"`
}

// BulkUpdateItem un elemento del lote de actualización por id de fila.
type BulkUpdateItem struct {
	ID            string           `json:"id"`
	Status        string           `json:"status"`
	UpdatedBy     string           `json:"updated_by,omitempty"` // prioridad sobre la identidad de sesión
	Remark        *string          `json:"remark,omitempty"`
	MeasuredValue *decimal.Decimal `json:"measured_value,omitempty"`
}

// BulkUpdateRequest lote de actualizaciones de estado para un serial.
type BulkUpdateRequest struct {
	SerialNo string           `json:"serial_no"`
	Updates  []BulkUpdateItem `json:"updates"`
}

// BulkUpdateError error por elemento del lote, en el orden de envío.
type BulkUpdateError struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// BulkUpdateResponse resultado parcial del lote: cuenta de éxitos + errores itemizados.
type BulkUpdateResponse struct {
	UpdatedCount int               `json:"updated_count"`
	Errors       []BulkUpdateError `json:"errors"`
	Message      string            `json:"message"`
}

// SubTaskValueItem elemento del lote legacy keyed por subtask_id.
type SubTaskValueItem struct {
	SubTaskID string `json:"subtask_id"`
	Value     string `json:"value"`
}

// UpdateBySubTaskRequest lote legacy: actualiza por (serial, subtask_id)
// y omite en silencio las filas inexistentes.
type UpdateBySubTaskRequest struct {
	SerialNo string             `json:"serial_no"`
	Updates  []SubTaskValueItem `json:"updates"`
}

// UpdatedSubTask eco de un elemento aplicado por la ruta legacy.
type UpdatedSubTask struct {
	SubTaskID string `json:"subtask_id"`
	Status    string `json:"status"`
}

// UpdateBySubTaskResponse resultado de la ruta legacy.
type UpdateBySubTaskResponse struct {
	Message string           `json:"message"`
	Updated []UpdatedSubTask `json:"updated"`
}
