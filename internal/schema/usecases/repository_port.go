package usecases

//go:generate mockgen -source=./repository_port.go -destination=../../../test/unit/doubles/schema/usecases/repository_port_mock.go -package=usecases -mock_names=FieldDefinitionRepository=MockFieldDefinitionRepository,FieldListCache=MockFieldListCache

import (
	"context"
	"finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"fmt"
)

var (
	ErrFieldNotFound   = fmt.Errorf("field definition %w", shareddomain.ErrNotFound)
	ErrFieldDuplicated = fmt.Errorf("field definition %w", shareddomain.ErrConflict)
)

type FieldDefinitionRepository interface {
	CountByContext(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context) (int, error)
	// CreateAll inserts every field in one transaction. A uniqueness conflict
	// rolls back the whole set and returns ErrFieldDuplicated.
	CreateAll(ctx context.Context, fields []domain.FieldDefinition) error
	Create(ctx context.Context, field domain.FieldDefinition) error
	GetByID(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) (domain.FieldDefinition, error)
	FindByContext(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context, includeDisabled bool) ([]domain.FieldDefinition, error)
	// MaxOrder returns 0 when (owner, context) has no fields.
	MaxOrder(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context) (int, error)
	// UpdateOrder sets order = index for every id owned by owner within
	// fieldContext, in one transaction. Other ids are skipped.
	UpdateOrder(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context, orderedIDs []shareddomain.ID) error
	Update(ctx context.Context, field domain.FieldDefinition) error
	Delete(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error
}

// FieldListCache holds the enabled field list of an (owner, context) within a
// single request.
type FieldListCache interface {
	// Load returns the cached list or calls load, once for concurrent misses.
	Load(
		ctx context.Context,
		owner shareddomain.OwnerID,
		fieldContext domain.Context,
		load func(context.Context) ([]domain.FieldDefinition, error),
	) ([]domain.FieldDefinition, error)
	Invalidate(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context)
}
