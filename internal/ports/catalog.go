package ports

import (
	"context"

	"github.com/Gwang-eon/soulcard-app-sub001/internal/domain"
)

// CatalogStore provides the immutable 78-card catalog.
type CatalogStore interface {
	Catalog(ctx context.Context) ([]domain.Card, error)
}
