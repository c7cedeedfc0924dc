package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/internal/shop/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrEmptyCart    = errors.New("cart is empty")
)

// Service runs every operation as load -> validate -> mutate -> save against
// the persisted document. Mutations are serialized behind mu so two
// concurrent writers cannot race on the read-modify-write cycle.
type Service struct {
	store DocumentStore
	mu    sync.Mutex
}

func NewService(store DocumentStore) *Service {
	return &Service{store: store}
}

// Seed installs the demo catalog on first run. Safe to call repeatedly: once
// products exist it is a no-op.
func (s *Service) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if len(doc.Products) > 0 {
		return nil
	}

	doc.Products = domain.SeedCatalog()
	doc.Cart = []domain.CartLine{}
	return s.store.Save(ctx, doc)
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Products, nil
}

// GetCart joins cart lines with their product details and computes the total.
// Lines whose product no longer exists keep an empty summary, matching the
// tolerant total computation.
func (s *Service) GetCart(ctx context.Context) (domain.CartView, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return domain.CartView{}, err
	}

	byID := make(map[string]domain.Product, len(doc.Products))
	for _, p := range doc.Products {
		byID[p.ID] = p
	}

	lines := make([]domain.CartLineView, 0, len(doc.Cart))
	for _, l := range doc.Cart {
		p := byID[l.ProductID]
		lines = append(lines, domain.CartLineView{
			ID:        l.ID,
			ProductID: l.ProductID,
			Qty:       l.Qty,
			Product: domain.ProductSummary{
				Name:  p.Name,
				Price: p.Price,
				Desc:  p.Desc,
			},
		})
	}

	return domain.CartView{
		Cart:  lines,
		Total: domain.Total(doc.Cart, doc.Products),
	}, nil
}

// AddItem puts qty units of a product into the cart. Adding a product that
// is already in the cart increments its line instead of creating a second
// one. Returns the new cart total.
func (s *Service) AddItem(ctx context.Context, productID string, qty int) (decimal.Decimal, error) {
	if strings.TrimSpace(productID) == "" || qty <= 0 {
		return decimal.Zero, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	known := false
	for _, p := range doc.Products {
		if p.ID == productID {
			known = true
			break
		}
	}
	if !known {
		return decimal.Zero, ErrNotFound
	}

	found := false
	for i := range doc.Cart {
		if doc.Cart[i].ProductID == productID {
			doc.Cart[i].Qty += qty
			found = true
			break
		}
	}
	if !found {
		doc.Cart = append(doc.Cart, domain.CartLine{
			ID:        uuid.NewString(),
			ProductID: productID,
			Qty:       qty,
		})
	}

	if err := s.store.Save(ctx, doc); err != nil {
		return decimal.Zero, err
	}
	return domain.Total(doc.Cart, doc.Products), nil
}

// SetItemQuantity sets a cart line's quantity. Zero deletes the line; an
// unknown line id is an error, not a no-op.
func (s *Service) SetItemQuantity(ctx context.Context, lineID string, qty int) (decimal.Decimal, error) {
	if qty < 0 {
		return decimal.Zero, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	idx := -1
	for i := range doc.Cart {
		if doc.Cart[i].ID == lineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return decimal.Zero, ErrNotFound
	}

	if qty == 0 {
		doc.Cart = append(doc.Cart[:idx], doc.Cart[idx+1:]...)
	} else {
		doc.Cart[idx].Qty = qty
	}

	if err := s.store.Save(ctx, doc); err != nil {
		return decimal.Zero, err
	}
	return domain.Total(doc.Cart, doc.Products), nil
}

func (s *Service) RemoveItem(ctx context.Context, lineID string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	kept := doc.Cart[:0]
	for _, l := range doc.Cart {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(doc.Cart) {
		return decimal.Zero, ErrNotFound
	}
	doc.Cart = kept

	if err := s.store.Save(ctx, doc); err != nil {
		return decimal.Zero, err
	}
	return domain.Total(doc.Cart, doc.Products), nil
}

// Checkout snapshots the cart into a receipt, clears the cart and persists.
// The receipt is returned to the caller only; nothing about it is stored.
func (s *Service) Checkout(ctx context.Context, name, email string) (domain.Receipt, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return domain.Receipt{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return domain.Receipt{}, err
	}
	if len(doc.Cart) == 0 {
		return domain.Receipt{}, ErrEmptyCart
	}

	receipt := domain.Receipt{
		ID:        "r_" + uuid.NewString(),
		Name:      name,
		Email:     email,
		Items:     doc.Cart,
		Total:     domain.Total(doc.Cart, doc.Products),
		Timestamp: time.Now().UTC(),
	}

	doc.Cart = []domain.CartLine{}
	if err := s.store.Save(ctx, doc); err != nil {
		return domain.Receipt{}, err
	}
	return receipt, nil
}

// Reset clears the cart. Dev affordance, kept idempotent.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	doc.Cart = []domain.CartLine{}
	return s.store.Save(ctx, doc)
}
