package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is built at checkout and returned to the caller. It is never
// persisted.
type Receipt struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Items     []CartLine      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Timestamp time.Time       `json:"timestamp"`
}
