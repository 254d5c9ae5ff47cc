package repository

import "github.com/jhoicas/Calidad-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para ProductCategory.
type CategoryRepository interface {
	Create(category *entity.ProductCategory) error
	GetByID(id string) (*entity.ProductCategory, error)
	Update(category *entity.ProductCategory) error
	List(limit, offset int) ([]*entity.ProductCategory, error)
	Delete(id string) error
}
