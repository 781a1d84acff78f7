package dto

import (
	"github.com/shopspring/decimal"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/transfer"
)

// TransferRequest body for POST /api/transfers/warehouse and /api/transfers/truck.
type TransferRequest struct {
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	ProductID      string          `json:"product_id"`
	QtyFull        decimal.Decimal `json:"qty_full"`
	QtyEmpty       decimal.Decimal `json:"qty_empty"`
}

// TransferResponse returned on a committed transfer.
type TransferResponse struct {
	Success             bool            `json:"success"`
	QtyFullTransferred  decimal.Decimal `json:"qty_full_transferred"`
	QtyEmptyTransferred decimal.Decimal `json:"qty_empty_transferred"`
	ReferenceID         string          `json:"reference_id"`
}

// ValidateTransferResponse returned by the read-only validation endpoint.
type ValidateTransferResponse struct {
	IsValid     bool               `json:"is_valid"`
	Errors      []transfer.Failure `json:"errors"`
	Warnings    []string           `json:"warnings"`
	SourceStock BalanceDTO         `json:"source_stock"`
}
