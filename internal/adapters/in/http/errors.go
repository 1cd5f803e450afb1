package http

import (
	"errors"
	"net/http"

	"repuestos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body returned by all endpoints.
// Violations is populated only for validation failures.
type ErrorResponse struct {
	Code       int              `json:"code"`
	Message    string           `json:"message"`
	Violations []errs.Violation `json:"violations,omitempty"`
}

// respondError maps a domain error to its HTTP representation:
//
//	ValidationError     -> 422 with the full violation list
//	LifecycleConflict   -> 409
//	ObjectNotFound      -> 404
//	bad value errors    -> 400
//	anything else       -> 500
func respondError(ctx echo.Context, err error) error {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:       http.StatusUnprocessableEntity,
			Message:    "order data is invalid",
			Violations: validationErr.Violations,
		})
	}

	if errors.Is(err, errs.ErrLifecycleConflict) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
	})
}
