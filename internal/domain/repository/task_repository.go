package repository

import "github.com/jhoicas/Calidad-api/internal/domain/entity"

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	Update(task *entity.Task) error
	List(limit, offset int) ([]*entity.Task, error)
	ListByCategory(categoryID string) ([]*entity.Task, error)
	Delete(id string) error
}
