package httpapi

import (
	"errors"
	"net/http"

	"github.com/dwikikusuma/storefront/internal/shop/app"
)

// statusFromErr translates service errors into HTTP status codes. Anything
// unrecognized is a storage-level failure: 500 with a generic message so no
// internal detail leaks.
func statusFromErr(err error) (int, string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput), errors.Is(err, app.ErrEmptyCart):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, app.ErrNotFound):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
