package usecases

//go:generate mockgen -source=./category_service.go -destination=../../../test/unit/doubles/ledger/usecases/category_service_mock.go -package=usecases -mock_names=CategoryService=MockCategoryService

import (
	"context"
	"errors"
	"finance-tracker/internal/ledger/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"log/slog"
)

type CategoryService interface {
	ListCategories(ctx context.Context, owner shareddomain.OwnerID) ([]domain.Category, error)
	CreateCategory(ctx context.Context, owner shareddomain.OwnerID, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error
}

func NewCategoryService(repository CategoryRepository) *SimpleCategoryService {
	return &SimpleCategoryService{
		repository: repository,
	}
}

var _ CategoryService = (*SimpleCategoryService)(nil)

type SimpleCategoryService struct {
	repository CategoryRepository
}

// ListCategories never returns an empty list: an owner without categories
// gets the implicit fallback.
func (s *SimpleCategoryService) ListCategories(ctx context.Context, owner shareddomain.OwnerID) ([]domain.Category, error) {
	categories, err := s.repository.FindByOwner(ctx, owner)
	if err != nil {
		slog.Error("listing categories", slog.String("error", err.Error()))
		return nil, shareddomain.NewStorageError("listing categories", err)
	}

	if len(categories) == 0 {
		return []domain.Category{domain.FallbackCategory(owner)}, nil
	}
	return categories, nil
}

func (s *SimpleCategoryService) CreateCategory(ctx context.Context, owner shareddomain.OwnerID, name string) (domain.Category, error) {
	category, err := domain.NewCategory(owner, name)
	if err != nil {
		return domain.Category{}, err
	}

	err = s.repository.Create(ctx, category)
	if errors.Is(err, ErrCategoryDuplicated) {
		return domain.Category{}, shareddomain.NewValidationError("name", "a category with the same name already exists")
	}
	if err != nil {
		slog.Error("creating category", slog.String("error", err.Error()))
		return domain.Category{}, shareddomain.NewStorageError("creating category", err)
	}

	slog.Info("category created", slog.String("id", category.ID.String()), slog.String("owner", owner.String()))
	return category, nil
}

func (s *SimpleCategoryService) DeleteCategory(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, owner, id)
	if errors.Is(err, ErrCategoryNotFound) {
		return ErrCategoryNotFound
	}
	if err != nil {
		slog.Error("deleting category", slog.String("error", err.Error()))
		return shareddomain.NewStorageError("deleting category", err)
	}
	return nil
}
