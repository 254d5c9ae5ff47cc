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

var _ repository.SubTaskRepository = (*SubTaskRepo)(nil)

// SubTaskRepo implementación del puerto SubTaskRepository sobre PostgreSQL.
type SubTaskRepo struct {
	q Querier
}

// NewSubTaskRepository construye el adaptador de persistencia para subtareas.
func NewSubTaskRepository(q Querier) *SubTaskRepo {
	return &SubTaskRepo{q: q}
}

// Create persiste una nueva subtarea.
func (r *SubTaskRepo) Create(subtask *entity.SubTask) error {
	query := `
		INSERT INTO subtasks (id, task_id, name, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		subtask.ID, subtask.TaskID, subtask.Name, subtask.Description,
		subtask.Status, subtask.CreatedAt, subtask.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subtask: %w", err)
	}
	return nil
}

// GetByID obtiene una subtarea por ID.
func (r *SubTaskRepo) GetByID(id string) (*entity.SubTask, error) {
	query := `
		SELECT id, task_id, name, description, status, created_at, updated_at
		FROM subtasks WHERE id = $1`
	var st entity.SubTask
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&st.ID, &st.TaskID, &st.Name, &st.Description, &st.Status, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subtask: %w", err)
	}
	return &st, nil
}

// Update actualiza una subtarea existente (incluido el escalar legacy status).
func (r *SubTaskRepo) Update(subtask *entity.SubTask) error {
	query := `
		UPDATE subtasks SET name = $2, description = $3, status = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		subtask.ID, subtask.Name, subtask.Description, subtask.Status, subtask.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update subtask: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista subtareas paginadas.
func (r *SubTaskRepo) List(limit, offset int) ([]*entity.SubTask, error) {
	query := `
		SELECT id, task_id, name, description, status, created_at, updated_at
		FROM subtasks ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list subtasks: %w", err)
	}
	defer rows.Close()
	return scanSubTasks(rows)
}

// ListByTask lista las subtareas de una tarea en orden de creación.
func (r *SubTaskRepo) ListByTask(taskID string) ([]*entity.SubTask, error) {
	query := `
		SELECT id, task_id, name, description, status, created_at, updated_at
		FROM subtasks WHERE task_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, taskID)
	if err != nil {
		return nil, fmt.Errorf("list subtasks by task: %w", err)
	}
	defer rows.Close()
	return scanSubTasks(rows)
}

// ListByCategory lista todas las subtareas alcanzables desde las tareas de
// una categoría: es el universo que la reconciliación por serial materializa.
func (r *SubTaskRepo) ListByCategory(categoryID string) ([]*entity.SubTask, error) {
	query := `
		SELECT s.id, s.task_id, s.name, s.description, s.status, s.created_at, s.updated_at
		FROM subtasks s
		JOIN tasks t ON t.id = s.task_id
		WHERE t.category_id = $1
		ORDER BY t.created_at, s.created_at`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list subtasks by category: %w", err)
	}
	defer rows.Close()
	return scanSubTasks(rows)
}

// Delete elimina una subtarea; el cascade borra sus filas de estado.
func (r *SubTaskRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM subtasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subtask: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSubTasks(rows pgx.Rows) ([]*entity.SubTask, error) {
	var subtasks []*entity.SubTask
	for rows.Next() {
		var st entity.SubTask
		if err := rows.Scan(&st.ID, &st.TaskID, &st.Name, &st.Description, &st.Status,
			&st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subtask: %w", err)
		}
		subtasks = append(subtasks, &st)
	}
	return subtasks, rows.Err()
}
