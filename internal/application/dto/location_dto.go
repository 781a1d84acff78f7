package dto

import (
	"time"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
)

// CreateLocationRequest body for POST /api/locations.
type CreateLocationRequest struct {
	Kind   string `json:"kind"` // warehouse, truck
	Name   string `json:"name"`
	Active *bool  `json:"active,omitempty"` // trucks only; defaults to true
}

// SetActiveRequest body for PATCH /api/locations/:id/active.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// LocationDTO transport shape of a location.
type LocationDTO struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationFromEntity maps the domain location.
func LocationFromEntity(l *entity.Location) LocationDTO {
	return LocationDTO{ID: l.ID, Kind: l.Kind, Name: l.Name, Active: l.Active, CreatedAt: l.CreatedAt}
}
