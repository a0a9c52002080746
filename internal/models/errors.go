package models

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error codes used across services and handlers.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeSelfRating         = "SELF_RATING"
	CodeDuplicateRating    = "DUPLICATE_RATING"
	CodeInsufficientPoints = "INSUFFICIENT_POINTS"
	CodeInternal           = "INTERNAL_ERROR"
)

// Predefined error constructors

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

// NewSelfRatingError is returned when a user attempts to rate their own photo.
func NewSelfRatingError() *AppError {
	return &AppError{
		Code:    CodeSelfRating,
		Message: "Cannot rate your own photo",
	}
}

// NewDuplicateRatingError is returned when a user attempts to rate the same photo twice.
func NewDuplicateRatingError() *AppError {
	return &AppError{
		Code:    CodeDuplicateRating,
		Message: "Photo already rated by this user",
	}
}

// NewInsufficientPointsError is returned when a points-gated action cannot be afforded.
func NewInsufficientPointsError() *AppError {
	return &AppError{
		Code:    CodeInsufficientPoints,
		Message: "Insufficient points to toggle photo status",
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// StatusFor maps an error to the HTTP status code its taxonomy prescribes.
// Unclassified errors fall through to 500.
func StatusFor(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation, CodeSelfRating, CodeDuplicateRating, CodeInsufficientPoints:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError writes a standardized error response. Internal errors are
// logged with their wrapped cause but the body stays generic so server
// details never reach clients.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Code == CodeInternal && appErr.Err != nil {
			slog.Error("internal error",
				slog.String("path", c.Path()),
				slog.String("error", appErr.Err.Error()),
			)
		}
	} else if status >= fiber.StatusInternalServerError {
		slog.Error("unclassified error",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
		response = ErrorResponse{
			Error: "Internal server error",
			Code:  CodeInternal,
		}
	} else {
		response = ErrorResponse{Error: err.Error()}
	}

	return c.Status(status).JSON(response)
}
