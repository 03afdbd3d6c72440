package usecases

//go:generate mockgen -source=./repository_port.go -destination=../../../test/unit/doubles/ledger/usecases/repository_port_mock.go -package=usecases -mock_names=RecordRepository=MockRecordRepository,CategoryRepository=MockCategoryRepository,FieldCatalog=MockFieldCatalog,ActivePeriodResolver=MockActivePeriodResolver

import (
	"context"
	"finance-tracker/internal/ledger/domain"
	schemadomain "finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"fmt"
)

var (
	ErrRecordNotFound     = fmt.Errorf("record %w", shareddomain.ErrNotFound)
	ErrCategoryNotFound   = fmt.Errorf("category %w", shareddomain.ErrNotFound)
	ErrCategoryDuplicated = fmt.Errorf("category %w", shareddomain.ErrConflict)
)

// RecordQuery narrows a record listing. A zero Limit returns every match.
// ActivePeriod replaces Range with the owner's active budget period.
type RecordQuery struct {
	Range        *domain.DateRange
	ActivePeriod bool
	Limit        int
	Offset       int
}

type RecordRepository interface {
	Create(ctx context.Context, record domain.Record) error
	// Update replaces the composed values of the record matching id, owner and
	// context.
	Update(ctx context.Context, record domain.Record) error
	GetByID(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, id shareddomain.ID) (domain.Record, error)
	// FindByContext orders by occurredOn then creation, newest first.
	FindByContext(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, query RecordQuery) ([]domain.Record, int, error)
	Delete(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, id shareddomain.ID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) error
	FindByOwner(ctx context.Context, owner shareddomain.OwnerID) ([]domain.Category, error)
	Delete(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error
}

// FieldCatalog is the part of the field catalog that forms render from.
type FieldCatalog interface {
	ListFields(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context) ([]schemadomain.FieldDefinition, error)
}

// ActivePeriodResolver resolves the date range of the owner's active budget
// period.
type ActivePeriodResolver interface {
	ActiveRange(ctx context.Context, owner shareddomain.OwnerID) (start string, end string, err error)
}
