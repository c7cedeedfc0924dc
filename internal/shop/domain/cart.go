package domain

import "github.com/shopspring/decimal"

type CartLine struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Document is the persisted aggregate: the whole catalog and cart are read
// and written together as one unit.
type Document struct {
	Products []Product  `json:"products"`
	Cart     []CartLine `json:"cart"`
}

// Normalize replaces nil collections with empty ones so callers can range
// and marshal without nil checks.
func (d *Document) Normalize() {
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Cart == nil {
		d.Cart = []CartLine{}
	}
}

// Total sums price*qty across cart lines, rounded to 2 decimal places.
// Lines referencing a product missing from the catalog contribute zero.
func Total(cart []CartLine, products []Product) decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	total := decimal.Zero
	for _, line := range cart {
		price, ok := prices[line.ProductID]
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Qty))))
	}

	return total.Round(2)
}

type ProductSummary struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Desc  string          `json:"desc"`
}

type CartLineView struct {
	ID        string         `json:"id"`
	ProductID string         `json:"productId"`
	Qty       int            `json:"qty"`
	Product   ProductSummary `json:"product"`
}

// CartView is the joined read model returned by the cart endpoint.
type CartView struct {
	Cart  []CartLineView  `json:"cart"`
	Total decimal.Decimal `json:"total"`
}
