package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is the application error type carried from the repository and
// service layers up to the HTTP boundary.
//
// Errors with a Field render on the wire as {"<field>": "<message>"} — the
// response shape this API has always used for domain failures (for example
// {"noprofile": "There is no profile for this user"}). Errors without a
// Field render as {"error": ..., "code": ...}.
type AppError struct {
	Code    string
	Field   string
	Message string
	Status  int
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

// NewValidationError reports a malformed or unprocessable request body.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Status:  fiber.StatusBadRequest,
	}
}

// NewNotFoundError reports a missing resource under the given response field.
func NewNotFoundError(field, message string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Field:   field,
		Message: message,
		Status:  fiber.StatusNotFound,
	}
}

// NewConflictError reports a uniqueness conflict (duplicate email, taken
// handle, repeated like) under the given response field.
func NewConflictError(field, message string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Field:   field,
		Message: message,
		Status:  fiber.StatusBadRequest,
	}
}

// NewFieldError reports a domain failure under an explicit response field
// with the given status and code.
func NewFieldError(status int, code, field, message string) *AppError {
	return &AppError{
		Code:    code,
		Field:   field,
		Message: message,
		Status:  status,
	}
}

// NewUnauthorizedError reports a missing or rejected identity.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  fiber.StatusUnauthorized,
	}
}

// NewOwnershipError reports an operation attempted by a non-owner.
func NewOwnershipError() *AppError {
	return &AppError{
		Code:    "NOT_AUTHORIZED",
		Field:   "notauthorized",
		Message: "User not authorized",
		Status:  fiber.StatusUnauthorized,
	}
}

// NewInternalError wraps an unexpected store or infrastructure failure.
// These surface as 500s with a distinct code rather than being folded into
// not-found responses.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Status:  fiber.StatusInternalServerError,
		Err:     err,
	}
}

// RespondWithError writes the standardized JSON error response for err,
// deriving the status from the AppError (500 for anything else).
func RespondWithError(c *fiber.Ctx, err error) error {
	appErr, ok := err.(*AppError)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	status := appErr.Status
	if status == 0 {
		status = fiber.StatusInternalServerError
	}

	if appErr.Field != "" {
		return c.Status(status).JSON(fiber.Map{appErr.Field: appErr.Message})
	}

	resp := fiber.Map{
		"error": appErr.Message,
		"code":  appErr.Code,
	}
	if appErr.Err != nil {
		resp["details"] = appErr.Err.Error()
	}
	return c.Status(status).JSON(resp)
}
