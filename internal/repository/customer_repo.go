package repository

import (
	"go-repair-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll(search string) ([]model.Customer, error)
	FindByID(id uuid.UUID) (*model.Customer, error)
	FindByPhone(phone string) (*model.Customer, error)
	Update(customer *model.Customer) error
	Delete(id uuid.UUID) error

	// Tx variants run inside the caller's transaction during checkout.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Customer, error)
	FindByPhoneTx(tx *gorm.DB, phone string) (*model.Customer, error)
	CreateTx(tx *gorm.DB, customer *model.Customer) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindAll(search string) ([]model.Customer, error) {
	var customers []model.Customer
	query := r.db.Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", like, like, like)
	}
	err := query.Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "id = ?", id).Error
	return &customer, err
}

func (r *customerRepo) FindByPhone(phone string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "phone = ?", phone).Error
	return &customer, err
}

func (r *customerRepo) Update(customer *model.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Customer{}, "id = ?", id).Error
}

func (r *customerRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	err := tx.First(&customer, "id = ?", id).Error
	return &customer, err
}

func (r *customerRepo) FindByPhoneTx(tx *gorm.DB, phone string) (*model.Customer, error) {
	var customer model.Customer
	err := tx.First(&customer, "phone = ?", phone).Error
	return &customer, err
}

func (r *customerRepo) CreateTx(tx *gorm.DB, customer *model.Customer) error {
	return tx.Create(customer).Error
}
