package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dwikikusuma/storefront/internal/shop/app"
)

func TestStatusFromErr(t *testing.T) {
	t.Run("invalid input -> 400", func(t *testing.T) {
		status, _ := statusFromErr(app.ErrInvalidInput)
		if status != http.StatusBadRequest {
			t.Fatalf("got %d", status)
		}
	})

	t.Run("empty cart -> 400", func(t *testing.T) {
		status, _ := statusFromErr(app.ErrEmptyCart)
		if status != http.StatusBadRequest {
			t.Fatalf("got %d", status)
		}
	})

	t.Run("not found -> 404", func(t *testing.T) {
		status, _ := statusFromErr(app.ErrNotFound)
		if status != http.StatusNotFound {
			t.Fatalf("got %d", status)
		}
	})

	t.Run("wrapped sentinel still maps", func(t *testing.T) {
		status, _ := statusFromErr(fmt.Errorf("add item: %w", app.ErrNotFound))
		if status != http.StatusNotFound {
			t.Fatalf("got %d", status)
		}
	})

	t.Run("unknown error -> 500 with generic message", func(t *testing.T) {
		status, msg := statusFromErr(errors.New("disk on fire"))
		if status != http.StatusInternalServerError {
			t.Fatalf("got %d", status)
		}
		if msg != "internal error" {
			t.Fatalf("leaked detail: %q", msg)
		}
	})
}
