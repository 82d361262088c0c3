package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inmuebles-api/internal/application/dto"
	"github.com/jhoicas/inmuebles-api/internal/application/usecase"
)

// PropertyHandler maneja las peticiones HTTP para Property (protegido).
type PropertyHandler struct {
	uc *usecase.PropertyUseCase
}

// NewPropertyHandler construye el handler.
func NewPropertyHandler(uc *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{uc: uc}
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(AccessFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PropertyHandler) GetByID(c *fiber.Ctx) error {
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

// Detail devuelve la propiedad con inquilinos, pagos, mantenimiento y totales.
func (h *PropertyHandler) Detail(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Detail(c.Context(), AccessFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
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

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(AccessFrom(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(AccessFrom(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
