package usecase

import (
	"time"

	"github.com/jhoicas/Calidad-api/internal/application/dto"
	"github.com/jhoicas/Calidad-api/internal/domain"
	"github.com/jhoicas/Calidad-api/internal/domain/entity"
	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// SerialUseCase casos de uso CRUD para seriales de producto. El serial_no es
// la clave natural: no hay id sintético.
type SerialUseCase struct {
	repo         repository.SerialRepository
	categoryRepo repository.CategoryRepository
}

// NewSerialUseCase construye el caso de uso.
func NewSerialUseCase(repo repository.SerialRepository, categoryRepo repository.CategoryRepository) *SerialUseCase {
	return &SerialUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create registra un serial nuevo. Devuelve ErrDuplicate si el serial_no ya
// existe y ErrNotFound si la categoría no existe.
func (uc *SerialUseCase) Create(in dto.CreateSerialRequest) (*dto.SerialResponse, error) {
	existing, _ := uc.repo.GetBySerialNo(in.SerialNo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	serial := &entity.ProductSerial{
		SerialNo:    in.SerialNo,
		CategoryID:  in.CategoryID,
		ProductName: in.ProductName,
		Status:      entity.SerialStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(serial); err != nil {
		return nil, err
	}
	resp := toSerialResponse(serial)
	resp.CategoryName = category.Name
	return resp, nil
}

// GetBySerialNo obtiene un serial por su número. Devuelve nil, nil si no existe.
func (uc *SerialUseCase) GetBySerialNo(serialNo string) (*dto.SerialResponse, error) {
	serial, err := uc.repo.GetBySerialNo(serialNo)
	if err != nil {
		return nil, err
	}
	if serial == nil {
		return nil, nil
	}
	return toSerialResponse(serial), nil
}

// List lista seriales paginados.
func (uc *SerialUseCase) List(page dto.PageRequest) (*dto.SerialListResponse, error) {
	page.DefaultPage()
	serials, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SerialResponse, 0, len(serials))
	for _, s := range serials {
		items = append(items, *toSerialResponse(s))
	}
	return &dto.SerialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListByCategory lista los seriales de una categoría.
func (uc *SerialUseCase) ListByCategory(categoryID string) (*dto.SerialListResponse, error) {
	serials, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SerialResponse, 0, len(serials))
	for _, s := range serials {
		items = append(items, *toSerialResponse(s))
	}
	return &dto.SerialListResponse{Items: items}, nil
}

// Update actualiza nombre de producto y/o estado global. Devuelve nil, nil si
// no existe; ErrInvalidStatus si el estado no es pending/completed.
func (uc *SerialUseCase) Update(serialNo string, in dto.UpdateSerialRequest) (*dto.SerialResponse, error) {
	serial, err := uc.repo.GetBySerialNo(serialNo)
	if err != nil {
		return nil, err
	}
	if serial == nil {
		return nil, nil
	}
	if in.ProductName != nil {
		serial.ProductName = *in.ProductName
	}
	if in.Status != nil {
		if *in.Status != entity.SerialStatusPending && *in.Status != entity.SerialStatusCompleted {
			return nil, domain.ErrInvalidStatus
		}
		serial.Status = *in.Status
	}
	serial.UpdatedAt = time.Now()
	if err := uc.repo.Update(serial); err != nil {
		return nil, err
	}
	return toSerialResponse(serial), nil
}

// Delete elimina un serial junto con sus filas de estado (cascade en DB).
func (uc *SerialUseCase) Delete(serialNo string) error {
	return uc.repo.Delete(serialNo)
}

func toSerialResponse(s *entity.ProductSerial) *dto.SerialResponse {
	return &dto.SerialResponse{
		SerialNo:    s.SerialNo,
		CategoryID:  s.CategoryID,
		ProductName: s.ProductName,
		Status:      s.Status,
		SubTaskID:   s.SubTaskID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
