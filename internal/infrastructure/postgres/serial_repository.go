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

var _ repository.SerialRepository = (*SerialRepo)(nil)

// SerialRepo implementación del puerto SerialRepository sobre PostgreSQL.
// serial_no es la clave primaria natural.
type SerialRepo struct {
	q Querier
}

// NewSerialRepository construye el adaptador de persistencia para seriales.
func NewSerialRepository(q Querier) *SerialRepo {
	return &SerialRepo{q: q}
}

// Create persiste un nuevo serial.
func (r *SerialRepo) Create(serial *entity.ProductSerial) error {
	query := `
		INSERT INTO product_serials (serial_no, category_id, product_name, status, subtask_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		serial.SerialNo, serial.CategoryID, serial.ProductName, serial.Status,
		serial.SubTaskID, serial.CreatedAt, serial.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert serial: %w", err)
	}
	return nil
}

// GetBySerialNo obtiene un serial por su número.
func (r *SerialRepo) GetBySerialNo(serialNo string) (*entity.ProductSerial, error) {
	query := `
		SELECT serial_no, category_id, product_name, status, subtask_id, created_at, updated_at
		FROM product_serials WHERE serial_no = $1`
	var s entity.ProductSerial
	err := r.q.QueryRow(context.Background(), query, serialNo).Scan(
		&s.SerialNo, &s.CategoryID, &s.ProductName, &s.Status, &s.SubTaskID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get serial: %w", err)
	}
	return &s, nil
}

// Update actualiza un serial existente.
func (r *SerialRepo) Update(serial *entity.ProductSerial) error {
	query := `
		UPDATE product_serials SET product_name = $2, status = $3, subtask_id = $4, updated_at = $5
		WHERE serial_no = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		serial.SerialNo, serial.ProductName, serial.Status, serial.SubTaskID, serial.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update serial: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista seriales paginados, más recientes primero.
func (r *SerialRepo) List(limit, offset int) ([]*entity.ProductSerial, error) {
	query := `
		SELECT serial_no, category_id, product_name, status, subtask_id, created_at, updated_at
		FROM product_serials ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list serials: %w", err)
	}
	defer rows.Close()
	return scanSerials(rows)
}

// ListByCategory lista los seriales de una categoría.
func (r *SerialRepo) ListByCategory(categoryID string) ([]*entity.ProductSerial, error) {
	query := `
		SELECT serial_no, category_id, product_name, status, subtask_id, created_at, updated_at
		FROM product_serials WHERE category_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list serials by category: %w", err)
	}
	defer rows.Close()
	return scanSerials(rows)
}

// Delete elimina un serial; el cascade borra sus filas de estado.
func (r *SerialRepo) Delete(serialNo string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM product_serials WHERE serial_no = $1`, serialNo)
	if err != nil {
		return fmt.Errorf("delete serial: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSerials(rows pgx.Rows) ([]*entity.ProductSerial, error) {
	var serials []*entity.ProductSerial
	for rows.Next() {
		var s entity.ProductSerial
		if err := rows.Scan(&s.SerialNo, &s.CategoryID, &s.ProductName, &s.Status,
			&s.SubTaskID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan serial: %w", err)
		}
		serials = append(serials, &s)
	}
	return serials, rows.Err()
}
