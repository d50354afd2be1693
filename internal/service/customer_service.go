package service

import (
	"errors"
	"fmt"

	"go-repair-pos/internal/apperr"
	"go-repair-pos/internal/model"
	"go-repair-pos/internal/repository"
	"go-repair-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerService interface {
	CreateCustomer(req *model.Customer) error
	GetAllCustomers(search string) ([]model.Customer, error)
	GetCustomerByID(id uuid.UUID) (*model.Customer, error)
	UpdateCustomer(id uuid.UUID, req *model.Customer) (*model.Customer, error)
	DeleteCustomer(id uuid.UUID) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(cRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: cRepo}
}

func (s *customerService) CreateCustomer(req *model.Customer) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return apperr.Validation(fmt.Sprintf(
			"Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	// Phone is the business key; reject duplicates explicitly instead of
	// surfacing a constraint violation.
	existing, err := s.customerRepo.FindByPhone(req.Phone)
	if err == nil && existing.ID != uuid.Nil {
		return apperr.Conflict("Customer with this phone number already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Internal(err)
	}

	if err := s.customerRepo.Create(req); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *customerService) GetAllCustomers(search string) ([]model.Customer, error) {
	customers, err := s.customerRepo.FindAll(search)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return customers, nil
}

func (s *customerService) GetCustomerByID(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Customer not found")
		}
		return nil, apperr.Internal(err)
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(id uuid.UUID, req *model.Customer) (*model.Customer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, apperr.Validation(fmt.Sprintf(
			"Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	existing, err := s.GetCustomerByID(id)
	if err != nil {
		return nil, err
	}

	// Phone stays the business key on update too; taking over another
	// customer's phone is a conflict, not a constraint violation.
	other, err := s.customerRepo.FindByPhone(req.Phone)
	if err == nil && other.ID != id {
		return nil, apperr.Conflict("Customer with this phone number already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	// Full-record replace, id and audit trail aside.
	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.Address = req.Address

	if err := s.customerRepo.Update(existing); err != nil {
		return nil, apperr.Internal(err)
	}
	return existing, nil
}

func (s *customerService) DeleteCustomer(id uuid.UUID) error {
	if _, err := s.GetCustomerByID(id); err != nil {
		return err
	}
	if err := s.customerRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
