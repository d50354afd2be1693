package service

import (
	"database/sql"
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

// CheckoutService is the one multi-step write path in the system: it turns a
// validated cart into a transaction row, its item snapshots, and the matching
// stock decrements, all inside a single database transaction.
type CheckoutService interface {
	Checkout(req *model.CheckoutRequest) (*model.Transaction, error)
	GetAllTransactions(filter model.TransactionFilter) ([]model.Transaction, error)
	GetTransactionByID(id uuid.UUID) (*model.Transaction, error)
	UpdateTransaction(id uuid.UUID, status model.TransactionStatus, notes string) (*model.Transaction, error)
}

// TxRunner runs a unit of work inside a database transaction, rolling back
// when the function returns an error. *gorm.DB satisfies it.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type checkoutService struct {
	productRepo     repository.ProductRepository
	customerRepo    repository.CustomerRepository
	transactionRepo repository.TransactionRepository
	db              TxRunner
	wsHub           *ws.Hub
}

func NewCheckoutService(
	pRepo repository.ProductRepository,
	cRepo repository.CustomerRepository,
	tRepo repository.TransactionRepository,
	db TxRunner,
	hub *ws.Hub,
) CheckoutService {
	return &checkoutService{
		productRepo:     pRepo,
		customerRepo:    cRepo,
		transactionRepo: tRepo,
		db:              db,
		wsHub:           hub,
	}
}

func (s *checkoutService) Checkout(req *model.CheckoutRequest) (*model.Transaction, error) {
	// 1. Validasi Struct Dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, apperr.Validation(fmt.Sprintf(
			"Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}
	if req.Customer.ID == nil && (req.Customer.Name == "" || req.Customer.Phone == "") {
		return nil, apperr.Validation("Missing required fields: customer name and phone")
	}

	var created model.Transaction

	// Atomic unit: any failure below rolls the whole checkout back.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// A. Lock & pre-check stock for every product line
		for _, line := range req.Items {
			if line.Type != model.ItemProduct {
				continue
			}
			product, err := s.productRepo.FindForUpdate(tx, line.ItemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.InsufficientStock(fmt.Sprintf(
						"Insufficient stock for product: %s. Available: 0, Requested: %d",
						line.Name, line.Quantity))
				}
				return err
			}
			if product.Stock < line.Quantity {
				return apperr.InsufficientStock(fmt.Sprintf(
					"Insufficient stock for product: %s. Available: %d, Requested: %d",
					product.Name, product.Stock, line.Quantity))
			}
		}

		// B. Resolve customer: by id, by phone, or insert a new row
		customerID, err := s.resolveCustomer(tx, &req.Customer)
		if err != nil {
			return err
		}

		// C. Classify and price the cart
		txType, txStatus := req.Classify()
		trx := model.Transaction{
			CustomerID: customerID,
			Total:      req.Total(),
			Type:       txType,
			Status:     txStatus,
			Notes:      req.Notes,
			Discount:   req.Discount,
		}
		for _, line := range req.Items {
			trx.Items = append(trx.Items, model.TransactionItem{
				ItemID:     line.ItemID,
				ItemType:   line.Type,
				ItemName:   line.Name,
				Quantity:   line.Quantity,
				UnitPrice:  line.Price,
				TotalPrice: line.Price * float64(line.Quantity),
				Warranty:   line.Warranty,
			})
		}

		// D. Insert transaction + item snapshots in one go
		if err := s.transactionRepo.Create(tx, &trx); err != nil {
			return err
		}

		// E. Decrement stock. The repo guard (stock >= quantity) makes this
		// safe even if another checkout slipped in after the pre-check.
		for _, line := range req.Items {
			if line.Type != model.ItemProduct {
				continue
			}
			affected, err := s.productRepo.DecrementStock(tx, line.ItemID, line.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return apperr.InsufficientStock(fmt.Sprintf(
					"Insufficient stock for product: %s. Requested: %d",
					line.Name, line.Quantity))
			}
		}

		created = trx
		return nil
	})

	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperr.Internal(err)
	}

	s.wsHub.Publish(ws.Event{
		Type:   "transaction",
		Action: "transaction_created",
		Payload: map[string]interface{}{
			"id":          created.ID,
			"customer_id": created.CustomerID,
			"total":       created.Total,
			"type":        created.Type,
			"status":      created.Status,
		},
		Message: fmt.Sprintf("Transaction %s created (%s)", created.ID, created.Type),
	})

	// Reload with customer + items so callers can render a receipt directly.
	return s.GetTransactionByID(created.ID)
}

// resolveCustomer reuses an existing customer row when possible. Looking up
// by phone before inserting keeps repeat checkouts from duplicating people.
func (s *checkoutService) resolveCustomer(tx *gorm.DB, c *model.CheckoutCustomer) (uuid.UUID, error) {
	if c.ID != nil {
		existing, err := s.customerRepo.FindByIDTx(tx, *c.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, apperr.NotFound("Customer not found")
			}
			return uuid.Nil, err
		}
		return existing.ID, nil
	}

	existing, err := s.customerRepo.FindByPhoneTx(tx, c.Phone)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	customer := model.Customer{
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
	if err := s.customerRepo.CreateTx(tx, &customer); err != nil {
		return uuid.Nil, err
	}
	return customer.ID, nil
}

func (s *checkoutService) GetAllTransactions(filter model.TransactionFilter) ([]model.Transaction, error) {
	transactions, err := s.transactionRepo.FindAll(filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return transactions, nil
}

func (s *checkoutService) GetTransactionByID(id uuid.UUID) (*model.Transaction, error) {
	trx, err := s.transactionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Transaction not found")
		}
		return nil, apperr.Internal(err)
	}
	return trx, nil
}

func (s *checkoutService) UpdateTransaction(id uuid.UUID, status model.TransactionStatus, notes string) (*model.Transaction, error) {
	if status == "" {
		return nil, apperr.Validation("Status is required")
	}
	switch status {
	case model.StatusCompleted, model.StatusPending, model.StatusInProgress:
	default:
		return nil, apperr.Validation("Invalid status: must be completed, pending or in-progress")
	}

	if _, err := s.GetTransactionByID(id); err != nil {
		return nil, err
	}
	if err := s.transactionRepo.UpdateStatus(id, status, notes); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.GetTransactionByID(id)
}
