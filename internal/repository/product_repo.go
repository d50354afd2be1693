package repository

import (
	"go-repair-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(category, search string) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(category, search string) ([]model.Product, error) {
	var products []model.Product
	query := r.db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	err := query.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// FindForUpdate reads a product inside the caller's transaction with a
// SELECT ... FOR UPDATE row lock, so the stock pre-check and the later
// decrement see the same row.
func (r *productRepo) FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, "id = ?", id).Error
	return &product, err
}

// DecrementStock runs inside the caller's transaction. The conditional
// WHERE stock >= quantity makes the check-and-decrement a single statement,
// so stock can never go negative under concurrent checkouts. Returns the
// number of rows affected; zero means the guard rejected the decrement.
func (r *productRepo) DecrementStock(tx *gorm.DB, id uuid.UUID, quantity int) (int64, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	return res.RowsAffected, res.Error
}
