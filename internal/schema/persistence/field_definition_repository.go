package persistence

import (
	"context"
	"errors"
	"finance-tracker/internal/infra/pubsub"
	"finance-tracker/internal/infra/sql"
	"finance-tracker/internal/schema/domain"
	"finance-tracker/internal/schema/persistence/internal"
	"finance-tracker/internal/schema/usecases"
	"finance-tracker/internal/shared_kernel/avro"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"fmt"
	"log/slog"
	"time"
)

const _fieldDefinitionsTopic = "field_definitions"

func NewFieldDefinitionRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleFieldDefinitionRepository, error) {
	publisher, err := publisherFactory.New(_fieldDefinitionsTopic, &avro.AvroFieldDefinition{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.FieldDefinition{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFieldDefinitionRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.FieldDefinitionRepository = (*SimpleFieldDefinitionRepository)(nil)

type SimpleFieldDefinitionRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleFieldDefinitionRepository) CountByContext(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context) (int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.FieldDefinition{}).
		Where("owner_id = ? AND context = ?", owner.String(), fieldContext.String()).
		Count(&total).
		Error()
	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return int(total), nil
}

func (r *SimpleFieldDefinitionRepository) CreateAll(ctx context.Context, fields []domain.FieldDefinition) error {
	entities := make([]internal.FieldDefinition, len(fields))
	for i, field := range fields {
		entities[i] = internal.FromFieldDefinition(field)
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
		return usecases.ErrFieldDuplicated
	}
	if err != nil {
		return fmt.Errorf("creating field definitions in database: %w", err)
	}

	for _, field := range fields {
		r.publish(ctx, field, avro.OperationUpsert)
	}
	return nil
}

func (r *SimpleFieldDefinitionRepository) Create(ctx context.Context, field domain.FieldDefinition) error {
	entity := internal.FromFieldDefinition(field)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrFieldDuplicated
	}
	if err != nil {
		return fmt.Errorf("creating field definition in database: %w", err)
	}

	r.publish(ctx, field, avro.OperationUpsert)
	return nil
}

func (r *SimpleFieldDefinitionRepository) GetByID(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) (domain.FieldDefinition, error) {
	var entity internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ? AND owner_id = ?", id.String(), owner.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldDefinition{}, usecases.ErrFieldNotFound
	}

	if err != nil {
		return domain.FieldDefinition{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFieldDefinitionRepository) FindByContext(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext domain.Context,
	includeDisabled bool,
) ([]domain.FieldDefinition, error) {
	query := r.orm.
		WithContext(ctx).
		Where("owner_id = ? AND context = ?", owner.String(), fieldContext.String())
	if !includeDisabled {
		query = query.Where("is_enabled = ?", true)
	}

	var entities []internal.FieldDefinition
	err := query.Order("ordering ASC, id ASC").Find(&entities).Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldDefinition, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result, nil
}

func (r *SimpleFieldDefinitionRepository) MaxOrder(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context) (int, error) {
	var entities []internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		Where("owner_id = ? AND context = ?", owner.String(), fieldContext.String()).
		Order("ordering DESC").
		Limit(1).
		Find(&entities).
		Error()
	if err != nil {
		return 0, fmt.Errorf("database query: %w", err)
	}

	if len(entities) == 0 {
		return 0, nil
	}
	return entities[0].Ordering, nil
}

func (r *SimpleFieldDefinitionRepository) UpdateOrder(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext domain.Context,
	orderedIDs []shareddomain.ID,
) error {
	now := time.Now()
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for index, id := range orderedIDs {
			err := tx.
				Model(&internal.FieldDefinition{}).
				Where("id = ? AND owner_id = ? AND context = ?", id.String(), owner.String(), fieldContext.String()).
				Updates(map[string]any{"ordering": index, "updated_at": now}).
				Error()
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reordering field definitions in database: %w", err)
	}

	fields, err := r.FindByContext(ctx, owner, fieldContext, true)
	if err != nil {
		slog.Warn("reading reordered fields for publishing", slog.String("error", err.Error()))
		return nil
	}
	for _, field := range fields {
		r.publish(ctx, field, avro.OperationUpsert)
	}
	return nil
}

func (r *SimpleFieldDefinitionRepository) Update(ctx context.Context, field domain.FieldDefinition) error {
	result := r.orm.
		WithContext(ctx).
		Model(&internal.FieldDefinition{}).
		Where("id = ? AND owner_id = ?", field.ID.String(), field.Owner.String()).
		Updates(map[string]any{
			"label":      string(field.Label),
			"is_enabled": field.IsEnabled,
			"updated_at": field.UpdatedAt.Time,
		})
	if err := result.Error(); err != nil {
		return fmt.Errorf("updating field definition in database: %w", err)
	}
	if result.RowsAffected() == 0 {
		return usecases.ErrFieldNotFound
	}

	r.publish(ctx, field, avro.OperationUpsert)
	return nil
}

func (r *SimpleFieldDefinitionRepository) Delete(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error {
	field, err := r.GetByID(ctx, owner, id)
	if err != nil {
		return err
	}

	result := r.orm.
		WithContext(ctx).
		Delete(&internal.FieldDefinition{}, "id = ? AND owner_id = ?", id.String(), owner.String())
	if err := result.Error(); err != nil {
		return fmt.Errorf("deleting field definition in database: %w", err)
	}
	if result.RowsAffected() == 0 {
		return usecases.ErrFieldNotFound
	}

	r.publish(ctx, field, avro.OperationDelete)
	return nil
}

// publish emits the change event after a committed write. The row is already
// stored, so a failure is only logged.
func (r *SimpleFieldDefinitionRepository) publish(ctx context.Context, field domain.FieldDefinition, operation string) {
	message := convertToAvroFieldDefinition(field, operation)

	err := r.publisher.Publish(ctx, pubsub.Key(field.ID), message)
	if err != nil {
		slog.Error("publishing field definition",
			slog.String("field_id", field.ID.String()),
			slog.String("error", err.Error()))
		return
	}
	slog.Debug("published field definition", slog.String("field_id", field.ID.String()))
}

func convertToAvroFieldDefinition(field domain.FieldDefinition, operation string) *avro.AvroFieldDefinition {
	return &avro.AvroFieldDefinition{
		ID:        field.ID.String(),
		OwnerID:   field.Owner.String(),
		Context:   field.Context.String(),
		Key:       field.Key.String(),
		Label:     string(field.Label),
		Kind:      string(field.Kind),
		IsCore:    field.IsCore,
		IsEnabled: field.IsEnabled,
		Order:     field.Order,
		Operation: operation,
		UpdatedAt: field.UpdatedAt.Time,
	}
}
