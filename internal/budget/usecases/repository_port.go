package usecases

//go:generate mockgen -source=./repository_port.go -destination=../../../test/unit/doubles/budget/usecases/repository_port_mock.go -package=usecases -mock_names=BudgetPeriodRepository=MockBudgetPeriodRepository

import (
	"context"
	"finance-tracker/internal/budget/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"fmt"
)

var (
	ErrPeriodNotFound   = fmt.Errorf("budget period %w", shareddomain.ErrNotFound)
	ErrPeriodDuplicated = fmt.Errorf("budget period %w", shareddomain.ErrConflict)
	ErrNoActivePeriod   = fmt.Errorf("active budget period %w", shareddomain.ErrNotFound)
)

type BudgetPeriodRepository interface {
	CountByOwner(ctx context.Context, owner shareddomain.OwnerID) (int, error)
	// CreateAll inserts every period in one transaction. A name conflict rolls
	// back the whole set and returns ErrPeriodDuplicated.
	CreateAll(ctx context.Context, periods []domain.BudgetPeriod) error
	Create(ctx context.Context, period domain.BudgetPeriod) error
	GetByID(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) (domain.BudgetPeriod, error)
	FindByOwner(ctx context.Context, owner shareddomain.OwnerID) ([]domain.BudgetPeriod, error)
	GetActive(ctx context.Context, owner shareddomain.OwnerID) (domain.BudgetPeriod, error)
	// Switch makes id the only active period of owner in one transaction.
	Switch(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error
	// Delete removes a custom period. When it was active the monthly period
	// is activated in the same transaction.
	Delete(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error
}
