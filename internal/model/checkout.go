package model

import "github.com/google/uuid"

// CheckoutLine is one cart line at checkout time. Name and price come from
// the client cart and are snapshotted into the transaction items.
type CheckoutLine struct {
	ItemID   uuid.UUID `json:"id" validate:"uuid_required"`
	Type     ItemType  `json:"type" validate:"required,oneof=product service"`
	Name     string    `json:"name" validate:"required"`
	Price    float64   `json:"price" validate:"gte=0"`
	Quantity int       `json:"quantity" validate:"required,gt=0"`
	Warranty string    `json:"warranty,omitempty"`
}

// CheckoutCustomer identifies the buyer either by id or by name+phone.
type CheckoutCustomer struct {
	ID      *uuid.UUID `json:"id,omitempty"`
	Name    string     `json:"name"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email,omitempty"`
	Address string     `json:"address,omitempty"`
}

type CheckoutRequest struct {
	Customer CheckoutCustomer `json:"customer"`
	Items    []CheckoutLine   `json:"items" validate:"required,min=1,dive"`
	Notes    string           `json:"notes,omitempty"`
	Discount float64          `json:"discount" validate:"gte=0,lte=100"`
}

// Subtotal is the cart value before any discount.
func (r *CheckoutRequest) Subtotal() float64 {
	var sum float64
	for _, line := range r.Items {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}

// Total applies the percentage discount to the subtotal.
func (r *CheckoutRequest) Total() float64 {
	if r.Discount <= 0 {
		return r.Subtotal()
	}
	return r.Subtotal() * (1 - r.Discount/100)
}

// Classify derives transaction type and initial status from the cart.
// Any service line makes the whole transaction a service job that starts
// in progress; a pure product cart is a completed sale.
func (r *CheckoutRequest) Classify() (TransactionType, TransactionStatus) {
	for _, line := range r.Items {
		if line.Type == ItemService {
			return TxService, StatusInProgress
		}
	}
	return TxSale, StatusCompleted
}
