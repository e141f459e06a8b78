package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/villa_booking/internal/adapter/handler/middleware"
	"github.com/srgjo27/villa_booking/internal/core/domain"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Code      string            `json:"code"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, fields map[string]string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Fields:    fields,
		RequestID: middleware.GetRequestID(c),
	})
}

// respondDomainError maps service errors to HTTP responses.
func respondDomainError(c *gin.Context, err error) {
	var (
		verrs domain.ValidationErrors
		perr  *domain.PersistenceError
	)
	switch {
	case errors.As(err, &verrs):
		respondError(c, http.StatusUnprocessableEntity, "validation_error", "validation failed", verrs)
	case errors.Is(err, domain.ErrBookingNotFound), errors.Is(err, domain.ErrVersionNotFound):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidBookingID),
		errors.Is(err, domain.ErrInvalidMonth),
		errors.Is(err, domain.ErrInvalidYear),
		errors.Is(err, domain.ErrEmptyNote),
		errors.Is(err, domain.ErrMissingEmail):
		respondError(c, http.StatusBadRequest, "bad_request", err.Error(), nil)
	case errors.As(err, &perr):
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "persistence_error", perr.UserMessage(), nil)
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}

func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "bad_request", message, nil)
}
