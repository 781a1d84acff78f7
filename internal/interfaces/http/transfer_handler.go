package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/nadirsultanli/order-management-system-sub011/internal/application/dto"
	apptransfer "github.com/nadirsultanli/order-management-system-sub011/internal/application/transfer"
)

// TransferHandler handles the stock transfer endpoints (protected).
type TransferHandler struct {
	uc *apptransfer.TransferUseCase
}

// NewTransferHandler builds the handler.
func NewTransferHandler(uc *apptransfer.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// TransferBetweenWarehouses godoc
// @Summary      Transfer stock between two warehouses
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "from_location_id, to_location_id, product_id, qty_full, qty_empty"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers/warehouse [post]
func (h *TransferHandler) TransferBetweenWarehouses(c *fiber.Ctx) error {
	return h.transfer(c, h.uc.TransferBetweenWarehouses)
}

// TransferWarehouseToTruck godoc
// @Summary      Load stock from a warehouse onto an active truck
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "destination must be an active truck"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transfers/truck [post]
func (h *TransferHandler) TransferWarehouseToTruck(c *fiber.Ctx) error {
	return h.transfer(c, h.uc.TransferWarehouseToTruck)
}

func (h *TransferHandler) transfer(
	c *fiber.Ctx,
	run func(ctx context.Context, input apptransfer.TransferInput) (*apptransfer.TransferResult, error),
) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}

	res, err := run(c.Context(), apptransfer.TransferInput{
		ActorID:        actorID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		ProductID:      in.ProductID,
		QtyFull:        in.QtyFull,
		QtyEmpty:       in.QtyEmpty,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResponse{
		Success:             true,
		QtyFullTransferred:  res.QtyFullTransferred,
		QtyEmptyTransferred: res.QtyEmptyTransferred,
		ReferenceID:         res.ReferenceID,
	})
}

// ValidateTransfer godoc
// @Summary      Dry-run a transfer without mutating anything
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "same shape as a transfer"
// @Success      200   {object}  dto.ValidateTransferResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transfers/validate [post]
func (h *TransferHandler) ValidateTransfer(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}

	out, err := h.uc.Validate(c.Context(), apptransfer.TransferInput{
		ActorID:        actorID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		ProductID:      in.ProductID,
		QtyFull:        in.QtyFull,
		QtyEmpty:       in.QtyEmpty,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ValidateTransferResponse{
		IsValid:     out.IsValid,
		Errors:      out.Errors,
		Warnings:    out.Warnings,
		SourceStock: dto.BalanceFromEntity(out.SourceStock),
	})
}
