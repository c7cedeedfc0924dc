package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices and totals go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Desc  string          `json:"desc"`
}

// SeedCatalog returns the fixed demo catalog installed on first boot.
func SeedCatalog() []Product {
	return []Product{
		{ID: "p1", Name: "Aurora Wireless Headphones", Price: decimal.RequireFromString("79.99"), Desc: "Crisp sound, 30h battery"},
		{ID: "p2", Name: "Nimbus Smartwatch", Price: decimal.RequireFromString("129.95"), Desc: "Heart-rate, sleep tracking"},
		{ID: "p3", Name: "Lumen Desk Lamp", Price: decimal.RequireFromString("39.50"), Desc: "Warm/cool dimmable light"},
		{ID: "p4", Name: "Vega Thermal Mug", Price: decimal.RequireFromString("19.99"), Desc: "Keeps drinks hot for 6h"},
		{ID: "p5", Name: "Atlas Backpack", Price: decimal.RequireFromString("59.00"), Desc: "Laptop friendly, water-resistant"},
	}
}
