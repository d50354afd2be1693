package service

import (
	"errors"
	"fmt"

	"go-repair-pos/internal/apperr"
	"go-repair-pos/internal/model"
	"go-repair-pos/internal/repository"
	"go-repair-pos/internal/ws"
	"go-repair-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService covers the CRUD side of both catalogs: stocked products and
// repair services.
type CatalogService interface {
	CreateProduct(req *model.Product) error
	GetAllProducts(category, search string) ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error

	CreateService(req *model.Service) error
	GetAllServices(category, search string) ([]model.Service, error)
	GetServiceByID(id uuid.UUID) (*model.Service, error)
	UpdateService(id uuid.UUID, req *model.Service) (*model.Service, error)
	DeleteService(id uuid.UUID) error
}

type catalogService struct {
	productRepo repository.ProductRepository
	serviceRepo repository.ServiceRepository
	wsHub       *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, sRepo repository.ServiceRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		serviceRepo: sRepo,
		wsHub:       hub,
	}
}

func validationError(errs []*validator.ErrorResponse) *apperr.Error {
	firstErr := errs[0]
	return apperr.Validation(fmt.Sprintf(
		"Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	if err := s.productRepo.Create(req); err != nil {
		return apperr.Internal(err)
	}

	s.wsHub.Publish(ws.Event{
		Type:   "stock_update",
		Action: "product_created",
		Payload: map[string]interface{}{
			"id":    req.ID,
			"name":  req.Name,
			"stock": req.Stock,
			"price": req.Price,
		},
		Message: fmt.Sprintf("Product '%s' added to catalog", req.Name),
	})
	return nil
}

func (s *catalogService) GetAllProducts(category, search string) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(category, search)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return products, nil
}

func (s *catalogService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, apperr.Internal(err)
	}
	return product, nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	oldStock := existing.Stock
	existing.Name = req.Name
	existing.Category = req.Category
	existing.Price = req.Price
	existing.Stock = req.Stock
	existing.Description = req.Description
	existing.ImageURL = req.ImageURL

	if err := s.productRepo.Update(existing); err != nil {
		return nil, apperr.Internal(err)
	}

	s.wsHub.Publish(ws.Event{
		Type:   "stock_update",
		Action: "product_updated",
		Payload: map[string]interface{}{
			"id":        existing.ID,
			"name":      existing.Name,
			"old_stock": oldStock,
			"new_stock": existing.Stock,
			"price":     existing.Price,
		},
		Message: fmt.Sprintf("Product '%s' updated", existing.Name),
	})
	return existing, nil
}

// DeleteProduct does not check for referencing transaction items. Items are
// denormalized snapshots, so historical transactions stay intact.
func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.GetProductByID(id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *catalogService) CreateService(req *model.Service) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}
	if err := s.serviceRepo.Create(req); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *catalogService) GetAllServices(category, search string) ([]model.Service, error) {
	services, err := s.serviceRepo.FindAll(category, search)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return services, nil
}

func (s *catalogService) GetServiceByID(id uuid.UUID) (*model.Service, error) {
	svc, err := s.serviceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Service not found")
		}
		return nil, apperr.Internal(err)
	}
	return svc, nil
}

func (s *catalogService) UpdateService(id uuid.UUID, req *model.Service) (*model.Service, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, err := s.GetServiceByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Category = req.Category
	existing.Price = req.Price
	existing.Duration = req.Duration
	existing.Description = req.Description
	existing.Warranty = req.Warranty

	if err := s.serviceRepo.Update(existing); err != nil {
		return nil, apperr.Internal(err)
	}
	return existing, nil
}

func (s *catalogService) DeleteService(id uuid.UUID) error {
	if _, err := s.GetServiceByID(id); err != nil {
		return err
	}
	if err := s.serviceRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
