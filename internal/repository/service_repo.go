package repository

import (
	"go-repair-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(service *model.Service) error
	FindAll(category, search string) ([]model.Service, error)
	FindByID(id uuid.UUID) (*model.Service, error)
	Update(service *model.Service) error
	Delete(id uuid.UUID) error
}

type serviceRepo struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) ServiceRepository {
	return &serviceRepo{db}
}

func (r *serviceRepo) Create(service *model.Service) error {
	return r.db.Create(service).Error
}

func (r *serviceRepo) FindAll(category, search string) ([]model.Service, error) {
	var services []model.Service
	query := r.db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	err := query.Find(&services).Error
	return services, err
}

func (r *serviceRepo) FindByID(id uuid.UUID) (*model.Service, error) {
	var service model.Service
	err := r.db.First(&service, "id = ?", id).Error
	return &service, err
}

func (r *serviceRepo) Update(service *model.Service) error {
	return r.db.Save(service).Error
}

func (r *serviceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Service{}, "id = ?", id).Error
}
