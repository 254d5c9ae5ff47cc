package repository

import "github.com/jhoicas/Calidad-api/internal/domain/entity"

// SubTaskRepository define el puerto de persistencia para SubTask.
type SubTaskRepository interface {
	Create(subtask *entity.SubTask) error
	GetByID(id string) (*entity.SubTask, error)
	Update(subtask *entity.SubTask) error
	List(limit, offset int) ([]*entity.SubTask, error)
	ListByTask(taskID string) ([]*entity.SubTask, error)
	// ListByCategory devuelve todas las subtareas alcanzables desde las
	// tareas de una categoría (el árbol completo del checklist).
	ListByCategory(categoryID string) ([]*entity.SubTask, error)
	Delete(id string) error
}
