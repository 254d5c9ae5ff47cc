package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Calidad-api/internal/domain/entity"
)

// SerialStatusRepository define el puerto de persistencia para
// SerialSubTaskStatus. La unicidad por (serial_no, subtask_id) la
// garantiza el constraint de la tabla; CreateIfAbsent se apoya en él.
type SerialStatusRepository interface {
	// CreateIfAbsent inserta la fila solo si no existe otra para el mismo
	// (serial_no, subtask_id). Devuelve created=false sin error cuando un
	// llamador concurrente ganó la creación: el resultado es idempotente.
	CreateIfAbsent(row *entity.SerialSubTaskStatus) (created bool, err error)
	GetByID(id string) (*entity.SerialSubTaskStatus, error)
	GetBySerialAndSubTask(serialNo, subtaskID string) (*entity.SerialSubTaskStatus, error)
	// Update persiste status, remark, measured_value, updated_by y update_time.
	Update(row *entity.SerialSubTaskStatus) error
	// ListViewBySerial devuelve las filas del serial enriquecidas con los
	// nombres de subtarea/tarea/producto, en orden estable (tarea, subtarea).
	ListViewBySerial(serialNo string) ([]*SerialSubTaskStatusView, error)
	CountBySerial(serialNo string) (int, error)
}

// SerialSubTaskStatusView es el read model de una fila de estado enriquecida
// para presentación (proyección de solo lectura, sin efectos).
type SerialSubTaskStatusView struct {
	ID            string
	SerialNo      string
	ProductName   string
	TaskID        string
	TaskName      string
	SubTaskID     string
	SubTaskName   string
	Status        string
	UpdatedBy     *string
	Remark        *string
	MeasuredValue *decimal.Decimal
	UpdateTime    *time.Time
}
