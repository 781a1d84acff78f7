package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nadirsultanli/order-management-system-sub011/internal/application/dto"
	"github.com/nadirsultanli/order-management-system-sub011/internal/application/usecase"
)

// LocationHandler handles the warehouse/truck directory (protected).
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler builds the handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Create registers a warehouse or truck.
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID returns one location.
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// List returns locations, optionally filtered by kind (?kind=truck).
func (h *LocationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()
	items, err := h.uc.List(c.Context(), c.Query("kind"), page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "locations": items})
}

// SetActive flips a truck's active flag.
func (h *LocationHandler) SetActive(c *fiber.Ctx) error {
	var in dto.SetActiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.uc.SetActive(c.Context(), c.Params("id"), in.Active); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "location updated"})
}
