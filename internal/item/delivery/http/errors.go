package http

import (
	"errors"

	"item-api/internal/item"
	pkgErrors "item-api/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unmapped is returned as is and rendered as a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrInvalidPrice):
		return pkgErrors.NewValidationError(pkgErrors.FieldError{
			Location: []string{pkgErrors.LocationBody, "price"},
			Message:  err.Error(),
			Type:     "finite_number",
		})
	default:
		return err
	}
}
