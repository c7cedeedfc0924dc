// Package jsonfile persists the shop document as a single JSON file on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dwikikusuma/storefront/internal/shop/domain"
)

type Store struct {
	path string
	log  *slog.Logger
}

func NewStore(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{path: path, log: log}
}

// Load reads the whole document. A missing or unparsable file is not an
// error: the store reinitializes itself with an empty document, persists it,
// and returns that. Only the healing write can fail.
func (s *Store) Load(ctx context.Context) (domain.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s.heal(ctx, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return s.heal(ctx, err)
	}

	doc.Normalize()
	return doc, nil
}

func (s *Store) heal(ctx context.Context, cause error) (domain.Document, error) {
	s.log.Warn("document unreadable, reinitializing",
		slog.String("path", s.path),
		slog.Any("err", cause),
	)

	doc := domain.Document{}
	doc.Normalize()
	if err := s.Save(ctx, doc); err != nil {
		return domain.Document{}, fmt.Errorf("reinitialize document: %w", err)
	}
	return doc, nil
}

// Save writes the full document to a staging file and renames it into place,
// so a concurrent reader never sees a half-written document.
func (s *Store) Save(_ context.Context, doc domain.Document) error {
	doc.Normalize()

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write staging file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
