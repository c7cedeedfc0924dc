package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTotal(t *testing.T) {
	products := []Product{
		{ID: "p1", Name: "Headphones", Price: decimal.RequireFromString("79.99")},
		{ID: "p3", Name: "Lamp", Price: decimal.RequireFromString("39.50")},
	}

	t.Run("sums price times qty", func(t *testing.T) {
		cart := []CartLine{
			{ID: "l1", ProductID: "p1", Qty: 2},
			{ID: "l2", ProductID: "p3", Qty: 1},
		}
		got := Total(cart, products)
		if want := decimal.RequireFromString("199.48"); !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("empty cart totals zero", func(t *testing.T) {
		if got := Total(nil, products); !got.IsZero() {
			t.Fatalf("expected zero, got %s", got)
		}
	})

	t.Run("stale product reference contributes nothing", func(t *testing.T) {
		cart := []CartLine{
			{ID: "l1", ProductID: "p1", Qty: 1},
			{ID: "l2", ProductID: "gone", Qty: 99},
		}
		got := Total(cart, products)
		if want := decimal.RequireFromString("79.99"); !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("rounds to two decimal places", func(t *testing.T) {
		odd := []Product{{ID: "x", Price: decimal.RequireFromString("0.333")}}
		cart := []CartLine{{ID: "l1", ProductID: "x", Qty: 3}}
		got := Total(cart, odd)
		if want := decimal.RequireFromString("1.00"); !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})
}

func TestDocumentNormalize(t *testing.T) {
	var doc Document
	doc.Normalize()

	if doc.Products == nil || doc.Cart == nil {
		t.Fatalf("expected empty slices, got %+v", doc)
	}
	if len(doc.Products) != 0 || len(doc.Cart) != 0 {
		t.Fatalf("expected no entries, got %+v", doc)
	}
}

func TestSeedCatalog(t *testing.T) {
	products := SeedCatalog()
	if len(products) != 5 {
		t.Fatalf("expected 5 seed products, got %d", len(products))
	}
	seen := map[string]bool{}
	for _, p := range products {
		if p.ID == "" || p.Name == "" {
			t.Fatalf("incomplete seed product %+v", p)
		}
		if p.Price.IsNegative() {
			t.Fatalf("negative price on %s", p.ID)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate seed id %s", p.ID)
		}
		seen[p.ID] = true
	}
}
