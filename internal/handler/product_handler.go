package handler

import (
	"go-repair-pos/internal/model"
	"go-repair-pos/internal/service"
	"go-repair-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	catalog service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: s}
}

// Helper untuk parse UUID dari string
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.catalog.GetAllProducts(c.Query("category"), c.Query("search"))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 400, "Invalid product ID")
	}

	product, err := h.catalog.GetProductByID(id)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return response.Fail(c, 400, "Invalid JSON")
	}

	if err := h.catalog.CreateProduct(&product); err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, product, "Product created successfully")
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 400, "Invalid product ID")
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return response.Fail(c, 400, "Invalid JSON")
	}

	updated, err := h.catalog.UpdateProduct(id, &product)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, updated)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 400, "Invalid product ID")
	}

	if err := h.catalog.DeleteProduct(id); err != nil {
		return response.FromError(c, err)
	}
	return response.Message(c, "Product deleted successfully")
}
