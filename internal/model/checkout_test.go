package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-repair-pos/internal/model"
)

func line(t model.ItemType, price float64, qty int) model.CheckoutLine {
	return model.CheckoutLine{
		ItemID:   uuid.New(),
		Type:     t,
		Name:     "item",
		Price:    price,
		Quantity: qty,
	}
}

func TestCheckoutRequest_Total(t *testing.T) {
	tests := []struct {
		name         string
		items        []model.CheckoutLine
		discount     float64
		wantSubtotal float64
		wantTotal    float64
	}{
		{
			name:         "SingleProductNoDiscount",
			items:        []model.CheckoutLine{line(model.ItemProduct, 500, 1)},
			wantSubtotal: 500,
			wantTotal:    500,
		},
		{
			name:         "ProductQtyTwoTenPercentOff",
			items:        []model.CheckoutLine{line(model.ItemProduct, 1000, 2)},
			discount:     10,
			wantSubtotal: 2000,
			wantTotal:    1800,
		},
		{
			name: "MixedCart",
			items: []model.CheckoutLine{
				line(model.ItemProduct, 250, 4),
				line(model.ItemService, 500, 1),
			},
			wantSubtotal: 1500,
			wantTotal:    1500,
		},
		{
			name:         "FullDiscount",
			items:        []model.CheckoutLine{line(model.ItemProduct, 99.99, 3)},
			discount:     100,
			wantSubtotal: 299.97,
			wantTotal:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := model.CheckoutRequest{Items: tt.items, Discount: tt.discount}
			assert.InDelta(t, tt.wantSubtotal, req.Subtotal(), 1e-9)
			assert.InDelta(t, tt.wantTotal, req.Total(), 1e-9)
		})
	}
}

func TestCheckoutRequest_Classify(t *testing.T) {
	tests := []struct {
		name       string
		items      []model.CheckoutLine
		wantType   model.TransactionType
		wantStatus model.TransactionStatus
	}{
		{
			name:       "ProductsOnly",
			items:      []model.CheckoutLine{line(model.ItemProduct, 10, 1), line(model.ItemProduct, 20, 2)},
			wantType:   model.TxSale,
			wantStatus: model.StatusCompleted,
		},
		{
			name:       "ServiceOnly",
			items:      []model.CheckoutLine{line(model.ItemService, 500, 1)},
			wantType:   model.TxService,
			wantStatus: model.StatusInProgress,
		},
		{
			name:       "MixedCartIsService",
			items:      []model.CheckoutLine{line(model.ItemProduct, 10, 1), line(model.ItemService, 500, 1)},
			wantType:   model.TxService,
			wantStatus: model.StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := model.CheckoutRequest{Items: tt.items}
			gotType, gotStatus := req.Classify()
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantStatus, gotStatus)
		})
	}
}
