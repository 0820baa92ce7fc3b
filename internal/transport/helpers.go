package transport

import (
	"errors"

	"inpaintapi/internal/model"
)

// errorCodeDefiner maps the closed error-kind set to statuses; anything
// unrecognized stays a 500.
func errorCodeDefiner(err error) int {
	var (
		vErr *model.ValidationError
		gErr *model.GatewayError
		sErr *model.StorageError
	)

	switch {
	case errors.Is(err, model.ErrImageNotFound):
		return 404
	case errors.As(err, &vErr),
		errors.As(err, &gErr),
		errors.As(err, &sErr):
		return 500
	default:
		return 500
	}
}
