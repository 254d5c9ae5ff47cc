package repository

import "github.com/jhoicas/Calidad-api/internal/domain/entity"

// SerialRepository define el puerto de persistencia para ProductSerial.
type SerialRepository interface {
	Create(serial *entity.ProductSerial) error
	GetBySerialNo(serialNo string) (*entity.ProductSerial, error)
	Update(serial *entity.ProductSerial) error
	List(limit, offset int) ([]*entity.ProductSerial, error)
	ListByCategory(categoryID string) ([]*entity.ProductSerial, error)
	Delete(serialNo string) error
}
