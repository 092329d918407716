package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/HIMK322/TENET/internal/dtos"
	"github.com/HIMK322/TENET/internal/services"
	"github.com/HIMK322/TENET/internal/utils"
)

var unitValidate = validator.New()

type UnitController struct {
	unitService    *services.UnitService
	tenancyService *services.TenancyService
}

func NewUnitController(unitService *services.UnitService, tenancyService *services.TenancyService) *UnitController {
	return &UnitController{unitService: unitService, tenancyService: tenancyService}
}

// GET /api/v1/units
func (c *UnitController) ListUnitsHandler(w http.ResponseWriter, r *http.Request) {
	units, err := c.unitService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, units)
}

// GET /api/v1/units/vacant
func (c *UnitController) ListVacantUnitsHandler(w http.ResponseWriter, r *http.Request) {
	units, err := c.tenancyService.GetVacantUnits(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out := make([]dtos.UnitSummary, 0, len(units))
	for _, u := range units {
		out = append(out, dtos.NewUnitSummaryFromModel(u))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GET /api/v1/units/{id}
func (c *UnitController) GetUnitHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid unit id", nil, err)
		return
	}
	unit, err := c.unitService.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, unit)
}

// GET /api/v1/units/{id}/occupancy-history
func (c *UnitController) GetUnitOccupancyHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid unit id", nil, err)
		return
	}
	histories, err := c.tenancyService.GetUnitOccupancyHistory(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewTenantHistoryListFromModels(histories))
}

// POST /api/v1/units
func (c *UnitController) CreateUnitHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := unitValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Building id, unit number and a valid type are required", nil, err)
		return
	}
	unit, err := c.unitService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, unit)
}

// PUT /api/v1/units/{id}
func (c *UnitController) UpdateUnitHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid unit id", nil, err)
		return
	}
	var req dtos.UpdateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := unitValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Building id, unit number and a valid type are required", nil, err)
		return
	}
	unit, err := c.unitService.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, unit)
}

// DELETE /api/v1/units/{id}
func (c *UnitController) DeleteUnitHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid unit id", nil, err)
		return
	}
	if err := c.unitService.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
