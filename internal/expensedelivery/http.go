// Package expensedelivery manages delivery layer of expenses.
package expensedelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gastos-dev/gastos/internal/domain"
	"github.com/gastos-dev/gastos/internal/middleware"
	"github.com/gastos-dev/gastos/pkg/errorspkg"
	"github.com/gastos-dev/gastos/pkg/tokenpkg"
	"github.com/gastos-dev/gastos/pkg/web"
)

// Service provides service layer interface needed by expense delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package expensedelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateExpenseParams) (domain.Expense, error)
	List(ctx context.Context, owner string) ([]domain.Expense, error)
	Update(ctx context.Context, arg domain.UpdateExpenseParams) (domain.Expense, error)
	Delete(ctx context.Context, id int32, owner string) error
}

// Handler facilitates expense delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns expense handler.
func NewHandler(es Service) Handler {
	return Handler{service: es}
}

func owner(gctx *gin.Context) string {
	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	return authPayload.Owner
}

// List handles http request to list the caller's expenses.
//
// The response body is the bare expense array the ledger view consumes.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	expenses, err := h.service.List(ctx, owner(gctx))
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, expenses)
}

type createRequest struct {
	Name   string           `json:"name" binding:"required"`
	Amount *decimal.Decimal `json:"amount" binding:"required"`
	Date   string           `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// Create handles http request to create an expense.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	arg := domain.CreateExpenseParams{
		Name:   req.Name,
		Amount: req.Amount.String(),
		Date:   req.Date,
		Owner:  owner(gctx),
	}

	if _, err := h.service.Create(ctx, arg); err != nil {
		switch err {
		case domain.ErrInvalidAmount, domain.ErrNegativeAmount, domain.ErrInvalidDate:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Confirm("expense added"))
}

type updateRequest struct {
	ID     int32            `json:"id" binding:"required,min=1"`
	Name   string           `json:"name" binding:"required"`
	Amount *decimal.Decimal `json:"amount" binding:"required"`
	Date   string           `json:"date" binding:"required,datetime=2006-01-02"`
}

// Update handles http request to fully replace an expense.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	arg := domain.UpdateExpenseParams{
		ID:     req.ID,
		Name:   req.Name,
		Amount: req.Amount.String(),
		Date:   req.Date,
		Owner:  owner(gctx),
	}

	if _, err := h.service.Update(ctx, arg); err != nil {
		switch err {
		case domain.ErrInvalidAmount, domain.ErrNegativeAmount, domain.ErrInvalidDate:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrExpenseNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Confirm("expense updated"))
}

type deleteRequest struct {
	ID int32 `json:"id" binding:"required,min=1"`
}

// Delete handles http request to delete an expense.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req deleteRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	if err := h.service.Delete(ctx, req.ID, owner(gctx)); err != nil {
		if err == domain.ErrExpenseNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Confirm("expense removed"))
}
