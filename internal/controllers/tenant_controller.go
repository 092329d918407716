package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/HIMK322/TENET/internal/dtos"
	"github.com/HIMK322/TENET/internal/services"
	"github.com/HIMK322/TENET/internal/utils"
)

var tenantValidate = validator.New()

type TenantController struct {
	tenantService  *services.TenantService
	tenancyService *services.TenancyService
}

func NewTenantController(tenantService *services.TenantService, tenancyService *services.TenancyService) *TenantController {
	return &TenantController{tenantService: tenantService, tenancyService: tenancyService}
}

/* ---------- CRUD ---------- */

// GET /api/v1/tenants
func (c *TenantController) ListTenantsHandler(w http.ResponseWriter, r *http.Request) {
	tenants, err := c.tenantService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenants)
}

// GET /api/v1/tenants/current
func (c *TenantController) ListCurrentTenantsHandler(w http.ResponseWriter, r *http.Request) {
	tenants, err := c.tenancyService.GetCurrentTenants(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out := make([]dtos.TenantSummary, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, dtos.NewTenantSummaryFromModel(t))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GET /api/v1/tenants/{id}
func (c *TenantController) GetTenantHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid tenant id", nil, err)
		return
	}
	tenant, err := c.tenantService.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

// GET /api/v1/tenants/{id}/rent-history
func (c *TenantController) GetTenantRentHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid tenant id", nil, err)
		return
	}
	receipts, err := c.tenancyService.GetTenantRentHistory(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewRentReceiptListFromModels(receipts))
}

// POST /api/v1/tenants
func (c *TenantController) CreateTenantHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := tenantValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Name and phone number are required", nil, err)
		return
	}
	tenant, err := c.tenantService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, tenant)
}

// PUT /api/v1/tenants/{id}
func (c *TenantController) UpdateTenantHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid tenant id", nil, err)
		return
	}
	var req dtos.UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := tenantValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Name and phone number are required", nil, err)
		return
	}
	tenant, err := c.tenantService.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

// DELETE /api/v1/tenants/{id}
func (c *TenantController) DeleteTenantHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid tenant id", nil, err)
		return
	}
	if err := c.tenantService.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* ---------- workflow ---------- */

// POST /api/v1/tenants/move-in
func (c *TenantController) MoveInHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.MoveInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := tenantValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Unit id and tenant details are required", nil, err)
		return
	}
	if req.RentAmount.IsNegative() {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Rent amount must not be negative", nil, nil)
		return
	}

	in := services.MoveInInput{
		Name:        req.Tenant.Name,
		PhoneNumber: req.Tenant.PhoneNumber,
		Email:       req.Tenant.Email,
		Address:     req.Tenant.Address,
		MoveInDate:  req.Tenant.MoveInDate,
	}
	tenant, err := c.tenancyService.MoveIn(r.Context(), req.UnitID, in, req.RentAmount)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewTenantFromModel(tenant, nil))
}

// POST /api/v1/tenants/move-out/{unitId}
func (c *TenantController) MoveOutHandler(w http.ResponseWriter, r *http.Request) {
	unitID, err := pathID(r, "unitId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid unit id", nil, err)
		return
	}
	if err := c.tenancyService.MoveOut(r.Context(), unitID); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
