package handler

import (
	"errors"
	"net/http"

	apperrors "flight-fare-ledger/pkg/app_errors"
	"flight-fare-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusOf 錯誤種類對應的 HTTP 狀態碼
func statusOf(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrQuoteExpired):
		return http.StatusGone
	case errors.Is(err, apperrors.ErrInsufficientSeats),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrConcurrencyConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	status := statusOf(err)
	code := apperrors.KindOf(err)

	if status == http.StatusInternalServerError {
		log.Error("Unexpected error")
		c.JSON(status, gin.H{
			"error": "Internal server error",
			"code":  code,
		})
		return
	}

	log.Warn("Request rejected", zap.String("code", code))
	body := gin.H{
		"error": err.Error(),
		"code":  code,
	}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		body["error"] = appErr.Message
	}
	if fields := apperrors.FieldsOf(err); len(fields) > 0 {
		body["fields"] = fields
	}
	if errors.Is(err, apperrors.ErrConcurrencyConflict) {
		body["retryable"] = true
	}
	c.JSON(status, body)
}

func handleSuccess(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}
