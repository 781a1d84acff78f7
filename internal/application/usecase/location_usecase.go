package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nadirsultanli/order-management-system-sub011/internal/application/dto"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/repository"
)

// LocationUseCase directory operations for warehouses and trucks.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase builds the use case.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create registers a warehouse or truck.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationDTO, error) {
	if in.Kind != entity.LocationKindWarehouse && in.Kind != entity.LocationKindTruck {
		return nil, fmt.Errorf("%w: kind must be warehouse or truck", domain.ErrInvalidInput)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	loc := &entity.Location{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		Name:      in.Name,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	out := dto.LocationFromEntity(loc)
	return &out, nil
}

// GetByID returns one location.
func (uc *LocationUseCase) GetByID(ctx context.Context, id string) (*dto.LocationDTO, error) {
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: location %s", domain.ErrNotFound, id)
	}
	out := dto.LocationFromEntity(loc)
	return &out, nil
}

// List returns locations, optionally filtered by kind.
func (uc *LocationUseCase) List(ctx context.Context, kind string, limit, offset int) ([]dto.LocationDTO, error) {
	list, err := uc.repo.List(ctx, kind, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationDTO, 0, len(list))
	for _, l := range list {
		items = append(items, dto.LocationFromEntity(l))
	}
	return items, nil
}

// SetActive flips a truck's active flag. Inactive trucks cannot receive
// transfers; warehouses are always usable and cannot be deactivated.
func (uc *LocationUseCase) SetActive(ctx context.Context, id string, active bool) error {
	loc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if loc == nil {
		return fmt.Errorf("%w: location %s", domain.ErrNotFound, id)
	}
	if !loc.IsTruck() {
		return fmt.Errorf("%w: only trucks have an active flag", domain.ErrInvalidInput)
	}
	return uc.repo.SetActive(ctx, id, active)
}
