package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes form a closed set; every service operation fails with exactly
// one of these and the server boundary translates the code to an HTTP status.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeForbidden        = "FORBIDDEN"
	CodeCreationFailed   = "CREATION_FAILED"
	CodeNotAuthenticated = "NOT_AUTHENTICATED"
	CodeSessionNotFound  = "SESSION_NOT_FOUND"
	CodeValidation       = "VALIDATION_ERROR"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
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

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewCreationFailedError(resource string, err error) *AppError {
	return &AppError{
		Code:    CodeCreationFailed,
		Message: fmt.Sprintf("Failed to create %s", resource),
		Err:     err,
	}
}

func NewNotAuthenticatedError(message string) *AppError {
	return &AppError{
		Code:    CodeNotAuthenticated,
		Message: message,
	}
}

func NewSessionNotFoundError(userID string) *AppError {
	return &AppError{
		Code:    CodeSessionNotFound,
		Message: fmt.Sprintf("No active session for user %s", userID),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// HTTPStatus maps an error code to its fixed HTTP status. There is exactly one
// status per code; CREATION_FAILED surfaces as 500 rather than 4xx to match
// the observed API contract.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeNotFound, CodeSessionNotFound:
		return fiber.StatusNotFound
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotAuthenticated:
		return fiber.StatusUnauthorized
	case CodeValidation:
		return fiber.StatusUnprocessableEntity
	case CodeCreationFailed, CodeInternal:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
