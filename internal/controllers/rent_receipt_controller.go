package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/HIMK322/TENET/internal/dtos"
	"github.com/HIMK322/TENET/internal/services"
	"github.com/HIMK322/TENET/internal/utils"
)

var receiptValidate = validator.New()

type RentReceiptController struct {
	receiptService *services.RentReceiptService
	tenancyService *services.TenancyService
}

func NewRentReceiptController(receiptService *services.RentReceiptService, tenancyService *services.TenancyService) *RentReceiptController {
	return &RentReceiptController{receiptService: receiptService, tenancyService: tenancyService}
}

/* ---------- CRUD ---------- */

// GET /api/v1/rentreceipts
func (c *RentReceiptController) ListRentReceiptsHandler(w http.ResponseWriter, r *http.Request) {
	receipts, err := c.receiptService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, receipts)
}

// GET /api/v1/rentreceipts/{id}
func (c *RentReceiptController) GetRentReceiptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid receipt id", nil, err)
		return
	}
	receipt, err := c.receiptService.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, receipt)
}

// GET /api/v1/rentreceipts/unit/{unitId}
func (c *RentReceiptController) ListRentReceiptsByUnitHandler(w http.ResponseWriter, r *http.Request) {
	unitID, err := pathID(r, "unitId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid unit id", nil, err)
		return
	}
	receipts, err := c.tenancyService.GetUnitRentHistory(r.Context(), unitID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewRentReceiptListFromModels(receipts))
}

// POST /api/v1/rentreceipts
func (c *RentReceiptController) CreateRentReceiptHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateRentReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := receiptValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Tenant id, unit id and rent month are required", nil, err)
		return
	}
	receipt, err := c.receiptService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, receipt)
}

// PUT /api/v1/rentreceipts/{id}
func (c *RentReceiptController) UpdateRentReceiptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid receipt id", nil, err)
		return
	}
	var req dtos.UpdateRentReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := receiptValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Tenant id, unit id and rent month are required", nil, err)
		return
	}
	receipt, err := c.receiptService.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, receipt)
}

// DELETE /api/v1/rentreceipts/{id}
func (c *RentReceiptController) DeleteRentReceiptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid receipt id", nil, err)
		return
	}
	if err := c.receiptService.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* ---------- workflow ---------- */

// POST /api/v1/rentreceipts/record
func (c *RentReceiptController) RecordPaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request body", nil, err)
		return
	}
	if err := receiptValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Tenant id, unit id and rent month are required", nil, err)
		return
	}
	if req.Amount.IsNegative() {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Amount must not be negative", nil, nil)
		return
	}

	receipt, err := c.tenancyService.RecordRentPayment(r.Context(), services.RecordPaymentInput{
		TenantID:      req.TenantID,
		UnitID:        req.UnitID,
		Amount:        req.Amount,
		RentMonth:     req.RentMonth,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewRentReceiptFromModel(receipt))
}
