package handler

import (
	"go-repair-pos/internal/model"
	"go-repair-pos/internal/service"
	"go-repair-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	checkout service.CheckoutService
}

func NewTransactionHandler(s service.CheckoutService) *TransactionHandler {
	return &TransactionHandler{checkout: s}
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	filter := model.TransactionFilter{
		Type:   model.TransactionType(c.Query("type")),
		Status: model.TransactionStatus(c.Query("status")),
	}
	if raw := c.Query("customer_id"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return response.Fail(c, 400, "Invalid customer ID")
		}
		filter.CustomerID = &id
	}

	transactions, err := h.checkout.GetAllTransactions(filter)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, transactions)
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 400, "Invalid transaction ID")
	}

	trx, err := h.checkout.GetTransactionByID(id)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, trx)
}

func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req model.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, 400, "Invalid JSON")
	}

	trx, err := h.checkout.Checkout(&req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, trx, "Transaction created successfully")
}

type updateTransactionRequest struct {
	Status model.TransactionStatus `json:"status"`
	Notes  string                  `json:"notes"`
}

func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 400, "Invalid transaction ID")
	}

	var req updateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, 400, "Invalid JSON")
	}

	trx, err := h.checkout.UpdateTransaction(id, req.Status, req.Notes)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, trx)
}
