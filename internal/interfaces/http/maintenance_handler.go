package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inmuebles-api/internal/application/dto"
	"github.com/jhoicas/inmuebles-api/internal/application/usecase"
)

// MaintenanceHandler maneja las peticiones HTTP para MaintenanceRequest (protegido).
type MaintenanceHandler struct {
	uc *usecase.MaintenanceUseCase
}

// NewMaintenanceHandler construye el handler.
func NewMaintenanceHandler(uc *usecase.MaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(AccessFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *MaintenanceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(AccessFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(AccessFrom(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateMaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(AccessFrom(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(AccessFrom(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
