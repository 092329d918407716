package services

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v4"

	"github.com/HIMK322/TENET/internal/dtos"
	"github.com/HIMK322/TENET/internal/models"
	"github.com/HIMK322/TENET/internal/repositories"
	"github.com/HIMK322/TENET/internal/utils"
)

type BuildingService struct {
	store *repositories.Store
}

func NewBuildingService(store *repositories.Store) *BuildingService {
	return &BuildingService{store: store}
}

func (s *BuildingService) Create(ctx context.Context, req dtos.CreateBuildingRequest) (*dtos.Building, error) {
	b := &models.Building{
		Name:        req.Name,
		Address:     req.Address,
		LayoutMap:   req.LayoutMap,
		Description: req.Description,
	}
	if err := s.store.Buildings.Create(ctx, b); err != nil {
		return nil, &utils.AppError{StatusCode: http.StatusInternalServerError, Code: utils.ErrCodeInternal, Message: "Failed to create building", Err: err}
	}
	dto := dtos.NewBuildingFromModel(b, nil)
	return &dto, nil
}

// List returns every building with its unit summaries, one explicit unit
// query per building.
func (s *BuildingService) List(ctx context.Context) ([]dtos.Building, error) {
	buildings, err := s.store.Buildings.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.Building, 0, len(buildings))
	for _, b := range buildings {
		units, err := s.store.Units.ListByBuildingID(ctx, b.ID)
		if err != nil {
			utils.Logger.WithError(err).Error("list units for building")
			return nil, err
		}
		out = append(out, dtos.NewBuildingFromModel(b, units))
	}
	return out, nil
}

func (s *BuildingService) GetByID(ctx context.Context, id int64) (*dtos.Building, error) {
	b, err := s.store.Buildings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Building not found"}
	}
	units, err := s.store.Units.ListByBuildingID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := dtos.NewBuildingFromModel(b, units)
	return &dto, nil
}

func (s *BuildingService) ListUnits(ctx context.Context, id int64) ([]dtos.UnitSummary, error) {
	b, err := s.store.Buildings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Building not found"}
	}
	units, err := s.store.Units.ListByBuildingID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dtos.UnitSummary, 0, len(units))
	for _, u := range units {
		out = append(out, dtos.NewUnitSummaryFromModel(u))
	}
	return out, nil
}

func (s *BuildingService) Update(ctx context.Context, id int64, req dtos.UpdateBuildingRequest) (*dtos.Building, error) {
	b, err := s.store.Buildings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Building not found"}
	}

	b.Name = req.Name
	b.Address = req.Address
	b.LayoutMap = req.LayoutMap
	b.Description = req.Description
	if err := s.store.Buildings.Update(ctx, b); err != nil {
		return nil, &utils.AppError{StatusCode: http.StatusInternalServerError, Code: utils.ErrCodeInternal, Message: "Failed to update building", Err: err}
	}
	dto := dtos.NewBuildingFromModel(b, nil)
	return &dto, nil
}

// Delete removes the building; its units go with it via the store's
// cascade rule.
func (s *BuildingService) Delete(ctx context.Context, id int64) error {
	err := s.store.Buildings.Delete(ctx, id)
	if err == pgx.ErrNoRows {
		return &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Building not found"}
	}
	return err
}
