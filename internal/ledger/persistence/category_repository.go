package persistence

import (
	"context"
	"errors"
	"finance-tracker/internal/infra/sql"
	"finance-tracker/internal/ledger/domain"
	"finance-tracker/internal/ledger/persistence/internal"
	"finance-tracker/internal/ledger/usecases"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"fmt"
)

func NewCategoryRepository(orm sql.ORM) (*SimpleCategoryRepository, error) {
	err := orm.AutoMigrate(&internal.Category{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleCategoryRepository{
		orm: orm,
	}, nil
}

var _ usecases.CategoryRepository = (*SimpleCategoryRepository)(nil)

type SimpleCategoryRepository struct {
	orm sql.ORM
}

func (r *SimpleCategoryRepository) Create(ctx context.Context, category domain.Category) error {
	entity := internal.FromCategory(category)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrCategoryDuplicated
	}
	if err != nil {
		return fmt.Errorf("creating category in database: %w", err)
	}
	return nil
}

func (r *SimpleCategoryRepository) FindByOwner(ctx context.Context, owner shareddomain.OwnerID) ([]domain.Category, error) {
	var entities []internal.Category
	err := r.orm.
		WithContext(ctx).
		Where("owner_id = ?", owner.String()).
		Order("name ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Category, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result, nil
}

func (r *SimpleCategoryRepository) Delete(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error {
	result := r.orm.
		WithContext(ctx).
		Delete(&internal.Category{}, "id = ? AND owner_id = ?", id.String(), owner.String())
	if err := result.Error(); err != nil {
		return fmt.Errorf("deleting category in database: %w", err)
	}
	if result.RowsAffected() == 0 {
		return usecases.ErrCategoryNotFound
	}
	return nil
}
