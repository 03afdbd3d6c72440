package persistence

import (
	"context"
	"errors"
	"finance-tracker/internal/budget/domain"
	"finance-tracker/internal/budget/persistence/internal"
	"finance-tracker/internal/budget/usecases"
	"finance-tracker/internal/infra/pubsub"
	"finance-tracker/internal/infra/sql"
	"finance-tracker/internal/shared_kernel/avro"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"fmt"
	"log/slog"
	"time"
)

const _budgetPeriodsTopic = "budget_periods"

// SwitchHook runs inside the switch transaction after every period of the
// owner was deactivated and before the target is activated. An error rolls
// the switch back.
type SwitchHook func(tx sql.ORM) error

func NewBudgetPeriodRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleBudgetPeriodRepository, error) {
	publisher, err := publisherFactory.New(_budgetPeriodsTopic, &avro.AvroBudgetPeriod{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.BudgetPeriod{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleBudgetPeriodRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.BudgetPeriodRepository = (*SimpleBudgetPeriodRepository)(nil)

type SimpleBudgetPeriodRepository struct {
	publisher  pubsub.Publisher
	orm        sql.ORM
	switchHook SwitchHook
}

func (r *SimpleBudgetPeriodRepository) WithSwitchHook(hook SwitchHook) *SimpleBudgetPeriodRepository {
	r.switchHook = hook
	return r
}

func (r *SimpleBudgetPeriodRepository) CountByOwner(ctx context.Context, owner shareddomain.OwnerID) (int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.BudgetPeriod{}).
		Where("owner_id = ?", owner.String()).
		Count(&total).
		Error()
	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return int(total), nil
}

func (r *SimpleBudgetPeriodRepository) CreateAll(ctx context.Context, periods []domain.BudgetPeriod) error {
	entities := make([]internal.BudgetPeriod, len(periods))
	for i, period := range periods {
		entities[i] = internal.FromBudgetPeriod(period)
	}

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for i := range entities {
			if err := tx.Create(&entities[i]).Error(); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrPeriodDuplicated
	}
	if err != nil {
		return fmt.Errorf("creating budget periods in database: %w", err)
	}

	for _, period := range periods {
		r.publish(ctx, period, avro.OperationUpsert)
	}
	return nil
}

func (r *SimpleBudgetPeriodRepository) Create(ctx context.Context, period domain.BudgetPeriod) error {
	entity := internal.FromBudgetPeriod(period)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrPeriodDuplicated
	}
	if err != nil {
		return fmt.Errorf("creating budget period in database: %w", err)
	}

	r.publish(ctx, period, avro.OperationUpsert)
	return nil
}

func (r *SimpleBudgetPeriodRepository) GetByID(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) (domain.BudgetPeriod, error) {
	var entity internal.BudgetPeriod
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ? AND owner_id = ?", id.String(), owner.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.BudgetPeriod{}, usecases.ErrPeriodNotFound
	}

	if err != nil {
		return domain.BudgetPeriod{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleBudgetPeriodRepository) FindByOwner(ctx context.Context, owner shareddomain.OwnerID) ([]domain.BudgetPeriod, error) {
	var entities []internal.BudgetPeriod
	err := r.orm.
		WithContext(ctx).
		Where("owner_id = ?", owner.String()).
		Order("created_at ASC, name ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.BudgetPeriod, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result, nil
}

func (r *SimpleBudgetPeriodRepository) GetActive(ctx context.Context, owner shareddomain.OwnerID) (domain.BudgetPeriod, error) {
	var entity internal.BudgetPeriod
	err := r.orm.
		WithContext(ctx).
		First(&entity, "owner_id = ? AND is_active = ?", owner.String(), true).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.BudgetPeriod{}, usecases.ErrNoActivePeriod
	}

	if err != nil {
		return domain.BudgetPeriod{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleBudgetPeriodRepository) Switch(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error {
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var target internal.BudgetPeriod
		if err := tx.First(&target, "id = ? AND owner_id = ?", id.String(), owner.String()).Error(); err != nil {
			return err
		}

		return r.activateWith(tx, owner, id)
	})
	if errors.Is(err, sql.ErrRecordNotFound) {
		return usecases.ErrPeriodNotFound
	}
	if err != nil {
		return fmt.Errorf("switching active budget period: %w", err)
	}

	r.publishOwner(ctx, owner)
	return nil
}

func (r *SimpleBudgetPeriodRepository) Delete(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error {
	var deleted internal.BudgetPeriod
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.First(&deleted, "id = ? AND owner_id = ?", id.String(), owner.String()).Error(); err != nil {
			return err
		}
		if domain.PeriodType(deleted.PeriodType).IsBuiltIn() {
			return domain.ErrBuiltInPeriod
		}

		result := tx.Delete(&internal.BudgetPeriod{}, "id = ? AND owner_id = ?", id.String(), owner.String())
		if err := result.Error(); err != nil {
			return err
		}
		if !deleted.IsActive {
			return nil
		}

		var monthly internal.BudgetPeriod
		err := tx.
			Where("owner_id = ? AND period_type = ?", owner.String(), domain.PeriodMonthly.String()).
			Order("created_at ASC").
			First(&monthly).
			Error()
		if err != nil {
			return fmt.Errorf("finding monthly fallback: %w", err)
		}
		return r.activateWith(tx, owner, shareddomain.ID(monthly.ID))
	})
	if errors.Is(err, sql.ErrRecordNotFound) {
		return usecases.ErrPeriodNotFound
	}
	if errors.Is(err, domain.ErrBuiltInPeriod) {
		return err
	}
	if err != nil {
		return fmt.Errorf("deleting budget period in database: %w", err)
	}

	period := deleted.ToDomain()
	period.UpdatedAt.Time = time.Now()
	r.publish(ctx, period, avro.OperationDelete)
	if deleted.IsActive {
		r.publishOwner(ctx, owner)
	}
	return nil
}

// activateWith deactivates every period of owner and then activates id. It
// must run inside a transaction.
func (r *SimpleBudgetPeriodRepository) activateWith(tx sql.ORM, owner shareddomain.OwnerID, id shareddomain.ID) error {
	now := time.Now()

	err := tx.
		Model(&internal.BudgetPeriod{}).
		Where("owner_id = ? AND is_active = ?", owner.String(), true).
		Updates(map[string]any{"is_active": false, "updated_at": now}).
		Error()
	if err != nil {
		return fmt.Errorf("deactivating budget periods: %w", err)
	}

	if r.switchHook != nil {
		if err := r.switchHook(tx); err != nil {
			return err
		}
	}

	result := tx.
		Model(&internal.BudgetPeriod{}).
		Where("id = ? AND owner_id = ?", id.String(), owner.String()).
		Updates(map[string]any{"is_active": true, "updated_at": now})
	if err := result.Error(); err != nil {
		return fmt.Errorf("activating budget period: %w", err)
	}
	if result.RowsAffected() == 0 {
		return sql.ErrRecordNotFound
	}
	return nil
}

func (r *SimpleBudgetPeriodRepository) publishOwner(ctx context.Context, owner shareddomain.OwnerID) {
	periods, err := r.FindByOwner(ctx, owner)
	if err != nil {
		slog.Warn("reading budget periods for publishing", slog.String("error", err.Error()))
		return
	}
	for _, period := range periods {
		r.publish(ctx, period, avro.OperationUpsert)
	}
}

func (r *SimpleBudgetPeriodRepository) publish(ctx context.Context, period domain.BudgetPeriod, operation string) {
	message := convertToAvroBudgetPeriod(period, operation)

	err := r.publisher.Publish(ctx, pubsub.Key(period.ID), message)
	if err != nil {
		slog.Error("publishing budget period",
			slog.String("period_id", period.ID.String()),
			slog.String("error", err.Error()))
		return
	}
	slog.Debug("published budget period", slog.String("period_id", period.ID.String()))
}

func convertToAvroBudgetPeriod(period domain.BudgetPeriod, operation string) *avro.AvroBudgetPeriod {
	return &avro.AvroBudgetPeriod{
		ID:         period.ID.String(),
		OwnerID:    period.Owner.String(),
		Name:       string(period.Name),
		PeriodType: period.Type.String(),
		StartDate:  period.StartDate,
		EndDate:    period.EndDate,
		IsActive:   period.IsActive,
		Operation:  operation,
		UpdatedAt:  period.UpdatedAt.Time,
	}
}
