// Package messagedelivery manages delivery layer of user messages.
package messagedelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gastos-dev/gastos/internal/domain"
	"github.com/gastos-dev/gastos/internal/middleware"
	"github.com/gastos-dev/gastos/pkg/errorspkg"
	"github.com/gastos-dev/gastos/pkg/tokenpkg"
	"github.com/gastos-dev/gastos/pkg/web"
)

// Service provides service layer interface needed by message delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package messagedelivery
type Service interface {
	Create(ctx context.Context, owner, message string) (domain.UserMessage, error)
	Delete(ctx context.Context, owner string) error
}

// Handler facilitates user message delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns user message handler.
func NewHandler(ms Service) Handler {
	return Handler{service: ms}
}

func owner(gctx *gin.Context) string {
	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	return authPayload.Owner
}

type createRequest struct {
	Message string `json:"message" binding:"required"`
}

// Create handles http request to store a user message.
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

	if _, err := h.service.Create(ctx, owner(gctx), req.Message); err != nil {
		if err == domain.ErrEmptyMessage {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Confirm("message created"))
}

// Delete handles http request to remove the caller's messages.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	if err := h.service.Delete(ctx, owner(gctx)); err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Confirm("message deleted"))
}
