package http

import (
	"errors"
	"net/http"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,
	domain.ErrTokenCreation:              http.StatusInternalServerError,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,

	domain.ErrPastDate:         http.StatusBadRequest,
	domain.ErrSundayNotAllowed: http.StatusBadRequest,
	domain.ErrProductNotFound:  http.StatusNotFound,
	domain.ErrOrderNotFound:    http.StatusNotFound,
	domain.ErrOrderNotPending:  http.StatusBadRequest,
	domain.ErrSlotFull:         http.StatusConflict,
}

// jsonDecimal renders money as a bare JSON number.
type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(j).String()), nil
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func errorBody(message string) gin.H {
	return gin.H{"success": false, "message": message}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorBody(err.Error()))
}

// handleError translates domain errors to the response taxonomy. Unknown
// errors become a generic 500 so internals never leak.
func (h *Handler) handleError(ctx *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, errorBody(validationErr.Error()))
		return
	}

	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
		err = domain.ErrInternal
	}
	ctx.JSON(statusCode, errorBody(err.Error()))
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("aborting request", zap.Error(err))
		err = domain.ErrInternal
	}
	ctx.AbortWithStatusJSON(statusCode, errorBody(err.Error()))
}

// handleSuccess sends a success envelope with the specified status and payload fields
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data gin.H, status int) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	ctx.JSON(status, body)
}

func (h *Handler) handleSuccess(ctx *gin.Context, data gin.H) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
