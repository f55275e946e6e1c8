package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"farmacia/internal/http/middleware"
	"farmacia/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []fieldError `json:"details,omitempty"`
}

// fieldError is one failed validation rule on a request body field.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorDetails(c, status, code, message, nil)
}

func writeErrorDetails(c *fiber.Ctx, status int, code, message string, details []fieldError) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps a service error onto the HTTP error contract.
// Unclassified errors are logged with the request logger and reported as 500.
func writeServiceError(c *fiber.Ctx, entity string, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", entity+" not found")
	case errors.Is(err, service.ErrInvalidReference):
		return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_REFERENCE", "referenced record does not exist")
	case errors.Is(err, service.ErrInUse):
		return writeError(c, fiber.StatusConflict, "IN_USE", entity+" is still referenced by other records")
	case errors.Is(err, service.ErrStorageNil):
		return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "object storage is not configured")
	}

	zerolog.Ctx(c.UserContext()).Error().Err(err).
		Str("entity", entity).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request_failed")
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusConflict:
			return writeError(c, status, "CONFLICT", "conflict")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		case fiber.StatusUnprocessableEntity:
			return writeError(c, status, "UNPROCESSABLE_ENTITY", "unprocessable entity")
		default:
			if status < fiber.StatusInternalServerError {
				return writeError(c, status, "REQUEST_ERROR", fe.Message)
			}
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("unhandled_error")
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
