package services

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/HIMK322/TENET/internal/dtos"
	"github.com/HIMK322/TENET/internal/models"
	"github.com/HIMK322/TENET/internal/repositories"
	"github.com/HIMK322/TENET/internal/utils"
)

type RentReceiptService struct {
	store *repositories.Store
}

func NewRentReceiptService(store *repositories.Store) *RentReceiptService {
	return &RentReceiptService{store: store}
}

// Create back-fills a receipt without touching the unit's last rent amount.
// The rent month is still normalized so every stored row starts on the first
// of its month.
func (s *RentReceiptService) Create(ctx context.Context, req dtos.CreateRentReceiptRequest) (*dtos.RentReceipt, error) {
	if req.AmountPaid.IsNegative() {
		return nil, &utils.AppError{StatusCode: http.StatusBadRequest, Code: utils.ErrCodeValidation, Message: "Amount paid must not be negative"}
	}
	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}
	rr := &models.RentReceipt{
		TenantID:      req.TenantID,
		UnitID:        req.UnitID,
		PaymentDate:   paymentDate,
		RentMonth:     NormalizeRentMonth(req.RentMonth),
		AmountPaid:    req.AmountPaid,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if err := s.store.Receipts.Create(ctx, rr); err != nil {
		return nil, utils.WrapPgError(err, "Tenant or unit does not exist")
	}
	dto := dtos.NewRentReceiptFromModel(rr)
	return &dto, nil
}

func (s *RentReceiptService) List(ctx context.Context) ([]dtos.RentReceipt, error) {
	receipts, err := s.store.Receipts.List(ctx)
	if err != nil {
		return nil, err
	}
	return dtos.NewRentReceiptListFromModels(receipts), nil
}

func (s *RentReceiptService) GetByID(ctx context.Context, id int64) (*dtos.RentReceipt, error) {
	rr, err := s.store.Receipts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rr == nil {
		return nil, &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Rent receipt not found"}
	}
	dto := dtos.NewRentReceiptFromModel(rr)
	return &dto, nil
}

func (s *RentReceiptService) Update(ctx context.Context, id int64, req dtos.UpdateRentReceiptRequest) (*dtos.RentReceipt, error) {
	if req.AmountPaid.IsNegative() {
		return nil, &utils.AppError{StatusCode: http.StatusBadRequest, Code: utils.ErrCodeValidation, Message: "Amount paid must not be negative"}
	}
	rr, err := s.store.Receipts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rr == nil {
		return nil, &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Rent receipt not found"}
	}

	rr.TenantID = req.TenantID
	rr.UnitID = req.UnitID
	if !req.PaymentDate.IsZero() {
		rr.PaymentDate = req.PaymentDate
	}
	rr.RentMonth = NormalizeRentMonth(req.RentMonth)
	rr.AmountPaid = req.AmountPaid
	rr.PaymentMethod = req.PaymentMethod
	rr.Notes = req.Notes

	if err := s.store.Receipts.Update(ctx, rr); err != nil {
		return nil, utils.WrapPgError(err, "Tenant or unit does not exist")
	}
	dto := dtos.NewRentReceiptFromModel(rr)
	return &dto, nil
}

func (s *RentReceiptService) Delete(ctx context.Context, id int64) error {
	err := s.store.Receipts.Delete(ctx, id)
	if err == pgx.ErrNoRows {
		return &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Rent receipt not found"}
	}
	return err
}
