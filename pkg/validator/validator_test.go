package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-repair-pos/internal/model"
	"go-repair-pos/pkg/validator"
)

func TestValidateStruct_CheckoutRequest(t *testing.T) {
	valid := model.CheckoutRequest{
		Items: []model.CheckoutLine{{
			ItemID:   uuid.New(),
			Type:     model.ItemProduct,
			Name:     "Screen protector",
			Price:    150,
			Quantity: 2,
		}},
		Discount: 10,
	}
	assert.Empty(t, validator.ValidateStruct(&valid))

	t.Run("EmptyCart", func(t *testing.T) {
		req := valid
		req.Items = nil
		errs := validator.ValidateStruct(&req)
		require.NotEmpty(t, errs)
		assert.Equal(t, "required", errs[0].Tag)
	})

	t.Run("NilItemID", func(t *testing.T) {
		req := valid
		req.Items = []model.CheckoutLine{valid.Items[0]}
		req.Items[0].ItemID = uuid.Nil
		errs := validator.ValidateStruct(&req)
		require.NotEmpty(t, errs)
		assert.Equal(t, "uuid_required", errs[0].Tag)
	})

	t.Run("BadItemType", func(t *testing.T) {
		req := valid
		req.Items = []model.CheckoutLine{valid.Items[0]}
		req.Items[0].Type = "subscription"
		errs := validator.ValidateStruct(&req)
		require.NotEmpty(t, errs)
		assert.Equal(t, "oneof", errs[0].Tag)
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		req := valid
		req.Items = []model.CheckoutLine{valid.Items[0]}
		req.Items[0].Quantity = 0
		assert.NotEmpty(t, validator.ValidateStruct(&req))
	})

	t.Run("DiscountOverHundred", func(t *testing.T) {
		req := valid
		req.Discount = 101
		errs := validator.ValidateStruct(&req)
		require.NotEmpty(t, errs)
		assert.Equal(t, "lte", errs[0].Tag)
	})

	t.Run("NegativeDiscount", func(t *testing.T) {
		req := valid
		req.Discount = -5
		errs := validator.ValidateStruct(&req)
		require.NotEmpty(t, errs)
		assert.Equal(t, "gte", errs[0].Tag)
	})
}

func TestValidateStruct_Product(t *testing.T) {
	product := model.Product{
		Name:     "Battery",
		Category: "Parts",
		Price:    45,
		Stock:    10,
	}
	assert.Empty(t, validator.ValidateStruct(&product))

	product.Name = ""
	errs := validator.ValidateStruct(&product)
	require.NotEmpty(t, errs)
	assert.Equal(t, "required", errs[0].Tag)

	product.Name = "Battery"
	product.Stock = -1
	assert.NotEmpty(t, validator.ValidateStruct(&product))
}
