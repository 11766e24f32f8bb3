package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopkart/fulfillment/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,
	domain.ErrBadRequest:      http.StatusBadRequest,

	domain.ErrConfiguration:     http.StatusInternalServerError,
	domain.ErrRemoteUnavailable: http.StatusBadGateway,

	domain.ErrOrderNotFound:        http.StatusNotFound,
	domain.ErrPaymentNotFound:      http.StatusNotFound,
	domain.ErrSignatureMismatch:    http.StatusPaymentRequired,
	domain.ErrPaymentNotPending:    http.StatusConflict,
	domain.ErrPaymentNotCompleted:  http.StatusConflict,
	domain.ErrInsufficientStock:    http.StatusConflict,
	domain.ErrEmptyOrder:           http.StatusBadRequest,
	domain.ErrOrderNotShipped:      http.StatusNotFound,
	domain.ErrShipmentNotFound:     http.StatusNotFound,
	domain.ErrUnsupportedPayMethod: http.StatusUnprocessableEntity,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrBadRequest.Error()})
}

// handleError maps a domain error onto an HTTP status. Clients only ever see
// the sentinel message, never a raw gateway payload.
func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := domain.ErrInternal.Error()
	for domainErr, code := range errorStatusMap {
		if errors.Is(err, domainErr) {
			statusCode = code
			message = domainErr.Error()
			break
		}
	}
	if statusCode == http.StatusInternalServerError {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, gin.H{"error": message})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
