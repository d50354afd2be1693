package handler

import (
	"go-repair-pos/internal/model"
	"go-repair-pos/internal/service"
	"go-repair-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers(c.Query("search"))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, customers)
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 400, "Invalid customer ID")
	}

	customer, err := h.service.GetCustomerByID(id)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, customer)
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return response.Fail(c, 400, "Invalid JSON")
	}

	if err := h.service.CreateCustomer(&customer); err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, customer, "Customer created successfully")
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 400, "Invalid customer ID")
	}

	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return response.Fail(c, 400, "Invalid JSON")
	}

	updated, err := h.service.UpdateCustomer(id, &customer)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, updated)
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 400, "Invalid customer ID")
	}

	if err := h.service.DeleteCustomer(id); err != nil {
		return response.FromError(c, err)
	}
	return response.Message(c, "Customer deleted successfully")
}
