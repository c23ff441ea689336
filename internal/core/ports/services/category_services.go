package services

import (
	"context"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
)

// CategorySvcFacade exposes the live category index derived from
// transaction history.
type CategorySvcFacade interface {
	// GetCategories returns the distinct tier-2 and tier-3 values, unscoped.
	GetCategories(ctx context.Context) (*domain.CategoryTree, error)

	// GetCategoriesByType returns tier-2 and tier-3 values scoped to a tier-1
	// value, or the unscoped tree when category1 is empty.
	GetCategoriesByType(ctx context.Context, category1 string) (*domain.CategoryTree, error)

	// GetCategoriesByParent returns tier-2 values scoped to category1 and
	// tier-3 values scoped to category1 and (when given) category2. Falls
	// back to the full tree when category1 is empty.
	GetCategoriesByParent(ctx context.Context, category1, category2 string) (*domain.CategoryTree, error)

	// GetAllCategories returns the distinct values of all three tiers.
	GetAllCategories(ctx context.Context) (*domain.CategoryTree, error)
}
