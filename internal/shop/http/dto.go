package httpapi

import (
	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/internal/shop/domain"
)

type addItemRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Qty is a pointer so a body without the field is distinguishable from an
// explicit zero (which deletes the line).
type updateItemRequest struct {
	Qty *int `json:"qty"`
}

type checkoutRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type mutationResponse struct {
	Success bool            `json:"success"`
	Total   decimal.Decimal `json:"total"`
}

type checkoutResponse struct {
	Success bool           `json:"success"`
	Receipt domain.Receipt `json:"receipt"`
}

type resetResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}
