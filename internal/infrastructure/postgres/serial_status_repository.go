package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Calidad-api/internal/domain"
	"github.com/jhoicas/Calidad-api/internal/domain/entity"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

var _ repository.SerialStatusRepository = (*SerialStatusRepo)(nil)

// SerialStatusRepo implementación del puerto SerialStatusRepository sobre
// PostgreSQL. El constraint único (serial_no, subtask_id) es la autoridad
// frente a materializaciones concurrentes.
type SerialStatusRepo struct {
	q Querier
}

// NewSerialStatusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSerialStatusRepository(q Querier) *SerialStatusRepo {
	return &SerialStatusRepo{q: q}
}

// CreateIfAbsent inserta la fila solo si no existe otra con el mismo
// (serial_no, subtask_id). Devuelve created=false, sin error, cuando la fila
// ya existía; una carrera entre dos llamadores la gana exactamente uno.
func (r *SerialStatusRepo) CreateIfAbsent(row *entity.SerialSubTaskStatus) (bool, error) {
	query := `
		INSERT INTO serial_subtask_statuses (id, serial_no, subtask_id, status, remark, measured_value, updated_by, update_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (serial_no, subtask_id) DO NOTHING`
	cmd, err := r.q.Exec(context.Background(), query,
		row.ID, row.SerialNo, row.SubTaskID, row.Status,
		row.Remark, row.MeasuredValue, row.UpdatedBy, row.UpdateTime, row.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert serial status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// GetByID obtiene una fila de estado por ID.
func (r *SerialStatusRepo) GetByID(id string) (*entity.SerialSubTaskStatus, error) {
	query := `
		SELECT id, serial_no, subtask_id, status, remark, measured_value, updated_by, update_time, created_at
		FROM serial_subtask_statuses WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get serial status")
}

// GetBySerialAndSubTask obtiene la fila de un serial para una subtarea.
func (r *SerialStatusRepo) GetBySerialAndSubTask(serialNo, subtaskID string) (*entity.SerialSubTaskStatus, error) {
	query := `
		SELECT id, serial_no, subtask_id, status, remark, measured_value, updated_by, update_time, created_at
		FROM serial_subtask_statuses WHERE serial_no = $1 AND subtask_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, serialNo, subtaskID), "get serial status by subtask")
}

// Update persiste el resultado de una fila (estado, observación, medición,
// atribución y update_time).
func (r *SerialStatusRepo) Update(row *entity.SerialSubTaskStatus) error {
	query := `
		UPDATE serial_subtask_statuses
		SET status = $2, remark = $3, measured_value = $4, updated_by = $5, update_time = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		row.ID, row.Status, row.Remark, row.MeasuredValue, row.UpdatedBy, row.UpdateTime,
	)
	if err != nil {
		return fmt.Errorf("update serial status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListViewBySerial devuelve las filas de un serial enriquecidas con los
// nombres de producto, tarea y subtarea, en el orden del checklist.
func (r *SerialStatusRepo) ListViewBySerial(serialNo string) ([]*repository.SerialSubTaskStatusView, error) {
	query := `
		SELECT ss.id, ss.serial_no, ps.product_name, t.id, t.name, s.id, s.name,
		       ss.status, ss.updated_by, ss.remark, ss.measured_value, ss.update_time
		FROM serial_subtask_statuses ss
		JOIN product_serials ps ON ps.serial_no = ss.serial_no
		JOIN subtasks s ON s.id = ss.subtask_id
		JOIN tasks t ON t.id = s.task_id
		WHERE ss.serial_no = $1
		ORDER BY t.created_at, s.created_at`
	rows, err := r.q.Query(context.Background(), query, serialNo)
	if err != nil {
		return nil, fmt.Errorf("list serial statuses: %w", err)
	}
	defer rows.Close()

	var views []*repository.SerialSubTaskStatusView
	for rows.Next() {
		var v repository.SerialSubTaskStatusView
		if err := rows.Scan(&v.ID, &v.SerialNo, &v.ProductName, &v.TaskID, &v.TaskName,
			&v.SubTaskID, &v.SubTaskName, &v.Status, &v.UpdatedBy, &v.Remark,
			&v.MeasuredValue, &v.UpdateTime); err != nil {
			return nil, fmt.Errorf("scan serial status view: %w", err)
		}
		views = append(views, &v)
	}
	return views, rows.Err()
}

// CountBySerial cuenta las filas de estado de un serial.
func (r *SerialStatusRepo) CountBySerial(serialNo string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM serial_subtask_statuses WHERE serial_no = $1`, serialNo,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count serial statuses: %w", err)
	}
	return count, nil
}

func (r *SerialStatusRepo) scanOne(row pgx.Row, op string) (*entity.SerialSubTaskStatus, error) {
	var s entity.SerialSubTaskStatus
	err := row.Scan(&s.ID, &s.SerialNo, &s.SubTaskID, &s.Status, &s.Remark,
		&s.MeasuredValue, &s.UpdatedBy, &s.UpdateTime, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
