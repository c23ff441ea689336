package services

import (
	"context"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/domain"
	portsrepo "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/repositories"
	portssvc "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/services"
)

// categoryService exposes the live category index derived from transactions.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

// Ensure categoryService implements the portssvc.CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) GetCategories(ctx context.Context) (*domain.CategoryTree, error) {
	category2, err := s.categoryRepo.DistinctCategory2(ctx, "")
	if err != nil {
		return nil, err
	}
	category3, err := s.categoryRepo.DistinctCategory3(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return &domain.CategoryTree{Category2: category2, Category3: category3}, nil
}

func (s *categoryService) GetCategoriesByType(ctx context.Context, category1 string) (*domain.CategoryTree, error) {
	if category1 == "" {
		return s.GetCategories(ctx)
	}

	category2, err := s.categoryRepo.DistinctCategory2(ctx, category1)
	if err != nil {
		return nil, err
	}
	category3, err := s.categoryRepo.DistinctCategory3(ctx, category1, "")
	if err != nil {
		return nil, err
	}
	return &domain.CategoryTree{Category2: category2, Category3: category3}, nil
}

func (s *categoryService) GetCategoriesByParent(ctx context.Context, category1, category2 string) (*domain.CategoryTree, error) {
	if category1 == "" {
		return s.GetAllCategories(ctx)
	}

	category2Values, err := s.categoryRepo.DistinctCategory2(ctx, category1)
	if err != nil {
		return nil, err
	}
	category3Values, err := s.categoryRepo.DistinctCategory3(ctx, category1, category2)
	if err != nil {
		return nil, err
	}
	return &domain.CategoryTree{Category2: category2Values, Category3: category3Values}, nil
}

func (s *categoryService) GetAllCategories(ctx context.Context) (*domain.CategoryTree, error) {
	category1, err := s.categoryRepo.DistinctCategory1(ctx)
	if err != nil {
		return nil, err
	}
	category2, err := s.categoryRepo.DistinctCategory2(ctx, "")
	if err != nil {
		return nil, err
	}
	category3, err := s.categoryRepo.DistinctCategory3(ctx, "", "")
	if err != nil {
		return nil, err
	}
	return &domain.CategoryTree{Category1: category1, Category2: category2, Category3: category3}, nil
}
