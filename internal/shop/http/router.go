package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(CORS(corsOrigins))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/cart", h.GetCart)
		r.Post("/cart", h.AddItem)
		r.Post("/cart/{id}", h.UpdateItem)
		r.Delete("/cart/{id}", h.RemoveItem)
		r.Post("/checkout", h.Checkout)
		r.Post("/_reset", h.Reset)
	})

	return r
}
