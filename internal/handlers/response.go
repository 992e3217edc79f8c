package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mkassaw/invoicing_backend/internal/apperrors"
	"github.com/mkassaw/invoicing_backend/internal/middleware"
)

// Response is the envelope wrapping every API reply.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: true, Message: message})
}

func respondMessageData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{Success: false, Message: message})
}

func respondValidation(c *gin.Context, message string, fieldErrors any) {
	c.JSON(http.StatusUnprocessableEntity, Response{Success: false, Message: message, Errors: fieldErrors})
}

func respondInternal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{Success: false, Message: "something went wrong"})
}

// bindingFieldErrors flattens validator errors into a field -> messages map
// for the envelope's errors member.
func bindingFieldErrors(err error) map[string][]string {
	fieldErrors := map[string][]string{}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			field := strings.ToLower(fe.Field())
			fieldErrors[field] = append(fieldErrors[field], "failed on the "+fe.Tag()+" rule")
		}
		return fieldErrors
	}
	fieldErrors["body"] = []string{err.Error()}
	return fieldErrors
}

// respondBindingError maps a gin binding failure to a 422 envelope.
func respondBindingError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Request binding failed", slog.String("error", err.Error()))
	respondValidation(c, "the given data was invalid", bindingFieldErrors(err))
}

// respondServiceError maps service and repository errors to the envelope:
// validation to 422, not found to 404, anything else to a generic 500.
func respondServiceError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	message := ""
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		if message == "" {
			message = "resource not found"
		}
		respondNotFound(c, message)
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		if message == "" {
			message = "the given data was invalid"
		}
		respondValidation(c, message, nil)
	default:
		if appErr != nil && appErr.Code == 422 {
			respondValidation(c, message, nil)
			return
		}
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		respondInternal(c)
	}
}
