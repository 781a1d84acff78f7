package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nadirsultanli/order-management-system-sub011/internal/application/dto"
	appinventory "github.com/nadirsultanli/order-management-system-sub011/internal/application/inventory"
)

// InventoryHandler handles balance/ledger reads and stock receipts (protected).
type InventoryHandler struct {
	query   *appinventory.QueryUseCase
	receive *appinventory.ReceiveStockUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(query *appinventory.QueryUseCase, receive *appinventory.ReceiveStockUseCase) *InventoryHandler {
	return &InventoryHandler{query: query, receive: receive}
}

// ListBalances godoc
// @Summary      Current stock balances at a location
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  true  "Location (warehouse or truck) UUID"
// @Success      200  {array}   dto.BalanceDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/balances [get]
func (h *InventoryHandler) ListBalances(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	if locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id is required"})
	}
	list, err := h.query.ListBalances(c.Context(), locationID)
	if err != nil {
		return writeDomainError(c, err)
	}
	items := make([]dto.BalanceDTO, 0, len(list))
	for _, b := range list {
		items = append(items, dto.BalanceFromEntity(b))
	}
	return c.JSON(fiber.Map{"total": len(items), "balances": items})
}

// ListMovements godoc
// @Summary      Movement ledger for a location
// @Description  Append-only audit trail; transfers show up as debit/credit
//	pairs sharing a reference_id.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  true   "Location UUID"
// @Param        product_id   query  string  false  "Narrow to one product"
// @Param        limit        query  int     false  "Page size (default 20)"
// @Param        offset       query  int     false  "Page offset"
// @Success      200  {array}   dto.MovementDTO
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	if locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id is required"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()

	list, err := h.query.ListMovements(c.Context(), locationID, c.Query("product_id"), page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	items := make([]dto.MovementDTO, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementFromEntity(m))
	}
	return c.JSON(fiber.Map{"total": len(items), "movements": items})
}

// GetMovementsByReference godoc
// @Summary      Ledger rows sharing one reference id
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Reference UUID"
// @Success      200  {array}   dto.MovementDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/reference/{id} [get]
func (h *InventoryHandler) GetMovementsByReference(c *fiber.Ctx) error {
	rows, err := h.query.GetByReference(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	items := make([]dto.MovementDTO, 0, len(rows))
	for _, m := range rows {
		items = append(items, dto.MovementFromEntity(m))
	}
	return c.JSON(items)
}

// ReceiveStock godoc
// @Summary      Book a goods receipt into a warehouse
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiveStockRequest  true  "location_id, product_id, qty_full, qty_empty"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/receipts [post]
func (h *InventoryHandler) ReceiveStock(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.ReceiveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.receive.Receive(c.Context(), appinventory.ReceiveInput{
		ActorID:    actorID,
		LocationID: in.LocationID,
		ProductID:  in.ProductID,
		QtyFull:    in.QtyFull,
		QtyEmpty:   in.QtyEmpty,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"reference_id": res.ReferenceID})
}
