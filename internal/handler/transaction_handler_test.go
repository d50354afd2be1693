package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-repair-pos/internal/apperr"
	"go-repair-pos/internal/handler"
	"go-repair-pos/internal/model"
	"go-repair-pos/pkg/response"
)

type fakeCheckoutService struct {
	checkoutFn func(req *model.CheckoutRequest) (*model.Transaction, error)
	listFn     func(filter model.TransactionFilter) ([]model.Transaction, error)
	getFn      func(id uuid.UUID) (*model.Transaction, error)
	updateFn   func(id uuid.UUID, status model.TransactionStatus, notes string) (*model.Transaction, error)
}

func (f *fakeCheckoutService) Checkout(req *model.CheckoutRequest) (*model.Transaction, error) {
	return f.checkoutFn(req)
}

func (f *fakeCheckoutService) GetAllTransactions(filter model.TransactionFilter) ([]model.Transaction, error) {
	return f.listFn(filter)
}

func (f *fakeCheckoutService) GetTransactionByID(id uuid.UUID) (*model.Transaction, error) {
	return f.getFn(id)
}

func (f *fakeCheckoutService) UpdateTransaction(id uuid.UUID, status model.TransactionStatus, notes string) (*model.Transaction, error) {
	return f.updateFn(id, status, notes)
}

func newTransactionApp(svc *fakeCheckoutService) *fiber.App {
	app := fiber.New()
	h := handler.NewTransactionHandler(svc)
	app.Get("/api/transactions", h.GetTransactions)
	app.Post("/api/transactions", h.CreateTransaction)
	app.Get("/api/transactions/:id", h.GetTransaction)
	app.Put("/api/transactions/:id", h.UpdateTransaction)
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) response.Envelope {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env response.Envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateTransaction(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotReq *model.CheckoutRequest
		svc := &fakeCheckoutService{
			checkoutFn: func(req *model.CheckoutRequest) (*model.Transaction, error) {
				gotReq = req
				return &model.Transaction{
					Total:  1800,
					Type:   model.TxSale,
					Status: model.StatusCompleted,
				}, nil
			},
		}
		app := newTransactionApp(svc)

		payload := fiber.Map{
			"customer": fiber.Map{"name": "Dewi", "phone": "0812000111"},
			"items": []fiber.Map{
				{"id": uuid.New(), "type": "product", "name": "Charger", "price": 1000, "quantity": 2},
			},
			"discount": 10,
		}
		resp, err := app.Test(jsonRequest("POST", "/api/transactions", payload))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.True(t, env.Success)
		assert.Equal(t, "Transaction created successfully", env.Message)

		require.NotNil(t, gotReq)
		assert.Equal(t, "Dewi", gotReq.Customer.Name)
		assert.Equal(t, 10.0, gotReq.Discount)
		require.Len(t, gotReq.Items, 1)
		assert.Equal(t, 2, gotReq.Items[0].Quantity)
	})

	t.Run("InsufficientStock", func(t *testing.T) {
		svc := &fakeCheckoutService{
			checkoutFn: func(req *model.CheckoutRequest) (*model.Transaction, error) {
				return nil, apperr.InsufficientStock("Insufficient stock for product: Charger. Available: 1, Requested: 2")
			},
		}
		app := newTransactionApp(svc)

		resp, err := app.Test(jsonRequest("POST", "/api/transactions", fiber.Map{}))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.False(t, env.Success)
		assert.Contains(t, env.Error, "Insufficient stock")
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		app := newTransactionApp(&fakeCheckoutService{})
		req := httptest.NewRequest("POST", "/api/transactions", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestGetTransactions_FilterPlumbing(t *testing.T) {
	customerID := uuid.New()
	var gotFilter model.TransactionFilter
	svc := &fakeCheckoutService{
		listFn: func(filter model.TransactionFilter) ([]model.Transaction, error) {
			gotFilter = filter
			return []model.Transaction{}, nil
		},
	}
	app := newTransactionApp(svc)

	target := "/api/transactions?type=service&status=in-progress&customer_id=" + customerID.String()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.Equal(t, model.TxService, gotFilter.Type)
	assert.Equal(t, model.StatusInProgress, gotFilter.Status)
	require.NotNil(t, gotFilter.CustomerID)
	assert.Equal(t, customerID, *gotFilter.CustomerID)
}

func TestGetTransaction(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		svc := &fakeCheckoutService{
			getFn: func(id uuid.UUID) (*model.Transaction, error) {
				return nil, apperr.NotFound("Transaction not found")
			},
		}
		app := newTransactionApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/transactions/"+uuid.NewString(), nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.False(t, env.Success)
		assert.Equal(t, "Transaction not found", env.Error)
	})

	t.Run("InvalidID", func(t *testing.T) {
		app := newTransactionApp(&fakeCheckoutService{})
		resp, err := app.Test(httptest.NewRequest("GET", "/api/transactions/not-a-uuid", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("MissingStatus", func(t *testing.T) {
		svc := &fakeCheckoutService{
			updateFn: func(id uuid.UUID, status model.TransactionStatus, notes string) (*model.Transaction, error) {
				if status == "" {
					return nil, apperr.Validation("Status is required")
				}
				return &model.Transaction{Status: status, Notes: notes}, nil
			},
		}
		app := newTransactionApp(svc)

		resp, err := app.Test(jsonRequest("PUT", "/api/transactions/"+uuid.NewString(), fiber.Map{"notes": "waiting on part"}))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "Status is required", env.Error)
	})

	t.Run("Success", func(t *testing.T) {
		svc := &fakeCheckoutService{
			updateFn: func(id uuid.UUID, status model.TransactionStatus, notes string) (*model.Transaction, error) {
				return &model.Transaction{Status: status, Notes: notes}, nil
			},
		}
		app := newTransactionApp(svc)

		resp, err := app.Test(jsonRequest("PUT", "/api/transactions/"+uuid.NewString(),
			fiber.Map{"status": "completed", "notes": "picked up"}))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.True(t, env.Success)
	})
}
