// Package balancedelivery manages delivery layer of the account balance.
package balancedelivery

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

// Service provides service layer interface needed by balance delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package balancedelivery
type Service interface {
	Get(ctx context.Context, owner string) (domain.Balance, error)
	Set(ctx context.Context, owner, amount string) (domain.Balance, error)
	Delete(ctx context.Context, owner string) error
}

// Handler facilitates balance delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns balance handler.
func NewHandler(bs Service) Handler {
	return Handler{service: bs}
}

func owner(gctx *gin.Context) string {
	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	return authPayload.Owner
}

// Get handles http request to read the caller's balance. An owner with
// no balance row gets a zero amount, not an error.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	balance, err := h.service.Get(ctx, owner(gctx))
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, balance)
}

type setRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// Set handles http request to upsert the caller's balance.
func (h *Handler) Set(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req setRequest
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

	if _, err := h.service.Set(ctx, owner(gctx), req.Amount.String()); err != nil {
		if err == domain.ErrInvalidAmount {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Confirm("balance updated"))
}

// Delete handles http request to remove the caller's balance row.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	if err := h.service.Delete(ctx, owner(gctx)); err != nil {
		if err == domain.ErrBalanceNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Confirm("balance removed"))
}
