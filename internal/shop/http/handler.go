package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikikusuma/storefront/internal/shop/app"
)

type Handler struct {
	svc *app.Service
	log *slog.Logger
}

func NewHandler(svc *app.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "storefront"})
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetCart(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	total, err := h.svc.AddItem(r.Context(), body.ProductID, body.Qty)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{Success: true, Total: total})
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var body updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Qty == nil {
		writeError(w, http.StatusBadRequest, "missing qty")
		return
	}

	total, err := h.svc.SetItemQuantity(r.Context(), chi.URLParam(r, "id"), *body.Qty)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{Success: true, Total: total})
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.RemoveItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{Success: true, Total: total})
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var body checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	receipt, err := h.svc.Checkout(r.Context(), body.Name, body.Email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse{Success: true, Receipt: receipt})
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resetResponse{Success: true})
}

// fail maps a service error onto the wire and logs server-side failures.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFromErr(err)
	if status == http.StatusInternalServerError {
		h.log.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("err", err),
		)
	}
	writeError(w, status, msg)
}
