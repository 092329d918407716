package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/HIMK322/TENET/internal/dtos"
	"github.com/HIMK322/TENET/internal/services"
	"github.com/HIMK322/TENET/internal/utils"
)

var buildingValidate = validator.New()

type BuildingController struct {
	buildingService *services.BuildingService
}

func NewBuildingController(buildingService *services.BuildingService) *BuildingController {
	return &BuildingController{buildingService: buildingService}
}

// GET /api/v1/buildings
func (c *BuildingController) ListBuildingsHandler(w http.ResponseWriter, r *http.Request) {
	buildings, err := c.buildingService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, buildings)
}

// GET /api/v1/buildings/{id}
func (c *BuildingController) GetBuildingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid building id", nil, err)
		return
	}
	building, err := c.buildingService.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, building)
}

// GET /api/v1/buildings/{id}/units
func (c *BuildingController) ListBuildingUnitsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid building id", nil, err)
		return
	}
	units, err := c.buildingService.ListUnits(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, units)
}

// POST /api/v1/buildings
func (c *BuildingController) CreateBuildingHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateBuildingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := buildingValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Name and address are required", nil, err)
		return
	}
	building, err := c.buildingService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, building)
}

// PUT /api/v1/buildings/{id}
func (c *BuildingController) UpdateBuildingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid building id", nil, err)
		return
	}
	var req dtos.UpdateBuildingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := buildingValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Name and address are required", nil, err)
		return
	}
	building, err := c.buildingService.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, building)
}

// DELETE /api/v1/buildings/{id}
func (c *BuildingController) DeleteBuildingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid building id", nil, err)
		return
	}
	if err := c.buildingService.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
