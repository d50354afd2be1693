package handler

import (
	"go-repair-pos/internal/model"
	"go-repair-pos/internal/service"
	"go-repair-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ServiceHandler struct {
	catalog service.CatalogService
}

func NewServiceHandler(s service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: s}
}

func (h *ServiceHandler) GetServices(c *fiber.Ctx) error {
	services, err := h.catalog.GetAllServices(c.Query("category"), c.Query("search"))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, services)
}

func (h *ServiceHandler) GetService(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 400, "Invalid service ID")
	}

	svc, err := h.catalog.GetServiceByID(id)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, svc)
}

func (h *ServiceHandler) CreateService(c *fiber.Ctx) error {
	var svc model.Service
	if err := c.BodyParser(&svc); err != nil {
		return response.Fail(c, 400, "Invalid JSON")
	}

	if err := h.catalog.CreateService(&svc); err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, svc, "Service created successfully")
}

func (h *ServiceHandler) UpdateService(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 400, "Invalid service ID")
	}

	var svc model.Service
	if err := c.BodyParser(&svc); err != nil {
		return response.Fail(c, 400, "Invalid JSON")
	}

	updated, err := h.catalog.UpdateService(id, &svc)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.OK(c, updated)
}

func (h *ServiceHandler) DeleteService(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return response.Fail(c, 400, "Invalid service ID")
	}

	if err := h.catalog.DeleteService(id); err != nil {
		return response.FromError(c, err)
	}
	return response.Message(c, "Service deleted successfully")
}
