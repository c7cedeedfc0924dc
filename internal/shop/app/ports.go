package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/shop/domain"
)

type DocumentStore interface {
	Load(ctx context.Context) (domain.Document, error)
	Save(ctx context.Context, doc domain.Document) error
}
