package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"finance-tracker/internal/infra/pubsub"
	"finance-tracker/internal/infra/sql"
	"finance-tracker/internal/ledger/domain"
	"finance-tracker/internal/ledger/persistence/internal"
	"finance-tracker/internal/ledger/usecases"
	schemadomain "finance-tracker/internal/schema/domain"
	"finance-tracker/internal/shared_kernel/avro"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"fmt"
	"log/slog"
	"time"
)

const _ledgerRecordsTopic = "ledger_records"

func NewRecordRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleRecordRepository, error) {
	publisher, err := publisherFactory.New(_ledgerRecordsTopic, &avro.AvroLedgerRecord{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Record{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleRecordRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.RecordRepository = (*SimpleRecordRepository)(nil)

type SimpleRecordRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleRecordRepository) Create(ctx context.Context, record domain.Record) error {
	entity := internal.FromRecord(record)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating record in database: %w", err)
	}

	r.publish(ctx, record, avro.OperationUpsert)
	return nil
}

func (r *SimpleRecordRepository) Update(ctx context.Context, record domain.Record) error {
	entity := internal.FromRecord(record)

	result := r.orm.
		WithContext(ctx).
		Model(&internal.Record{}).
		Where("id = ? AND owner_id = ? AND context = ?", entity.ID, entity.OwnerID, entity.Context).
		Updates(map[string]any{
			"amount":      entity.Amount,
			"description": entity.Description,
			"category":    entity.Category,
			"occurred_on": entity.OccurredOn,
			"attributes":  entity.Attributes,
			"updated_at":  entity.UpdatedAt.Time,
		})
	if err := result.Error(); err != nil {
		return fmt.Errorf("updating record in database: %w", err)
	}
	if result.RowsAffected() == 0 {
		return usecases.ErrRecordNotFound
	}

	r.publish(ctx, record, avro.OperationUpsert)
	return nil
}

func (r *SimpleRecordRepository) GetByID(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext schemadomain.Context,
	id shareddomain.ID,
) (domain.Record, error) {
	var entity internal.Record
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ? AND owner_id = ? AND context = ?", id.String(), owner.String(), fieldContext.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Record{}, usecases.ErrRecordNotFound
	}

	if err != nil {
		return domain.Record{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleRecordRepository) FindByContext(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext schemadomain.Context,
	query usecases.RecordQuery,
) ([]domain.Record, int, error) {
	scope := r.orm.
		WithContext(ctx).
		Model(&internal.Record{}).
		Where("owner_id = ? AND context = ?", owner.String(), fieldContext.String())
	if query.Range != nil {
		scope = scope.Where("occurred_on BETWEEN ? AND ?", query.Range.Start, query.Range.End)
	}

	var total int64
	err := scope.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	listing := scope.Order("occurred_on DESC, created_at DESC")
	if query.Limit > 0 {
		listing = listing.Limit(query.Limit).Offset(query.Offset)
	}

	var entities []internal.Record
	err = listing.Find(&entities).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Record, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result, int(total), nil
}

func (r *SimpleRecordRepository) Delete(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext schemadomain.Context,
	id shareddomain.ID,
) error {
	record, err := r.GetByID(ctx, owner, fieldContext, id)
	if err != nil {
		return err
	}

	result := r.orm.
		WithContext(ctx).
		Delete(&internal.Record{}, "id = ? AND owner_id = ? AND context = ?", id.String(), owner.String(), fieldContext.String())
	if err := result.Error(); err != nil {
		return fmt.Errorf("deleting record in database: %w", err)
	}
	if result.RowsAffected() == 0 {
		return usecases.ErrRecordNotFound
	}

	record.UpdatedAt.Time = time.Now()
	r.publish(ctx, record, avro.OperationDelete)
	return nil
}

func (r *SimpleRecordRepository) publish(ctx context.Context, record domain.Record, operation string) {
	message, err := convertToAvroLedgerRecord(record, operation)
	if err != nil {
		slog.Error("converting record for publishing",
			slog.String("record_id", record.ID.String()),
			slog.String("error", err.Error()))
		return
	}

	err = r.publisher.Publish(ctx, pubsub.Key(record.ID), message)
	if err != nil {
		slog.Error("publishing record",
			slog.String("record_id", record.ID.String()),
			slog.String("error", err.Error()))
		return
	}
	slog.Debug("published record", slog.String("record_id", record.ID.String()))
}

func convertToAvroLedgerRecord(record domain.Record, operation string) (*avro.AvroLedgerRecord, error) {
	attributes := record.Attributes
	if attributes == nil {
		attributes = domain.Attributes{}
	}
	encoded, err := json.Marshal(attributes)
	if err != nil {
		return nil, fmt.Errorf("encoding attributes: %w", err)
	}

	return &avro.AvroLedgerRecord{
		ID:          record.ID.String(),
		OwnerID:     record.Owner.String(),
		Context:     record.Context.String(),
		Amount:      record.Amount.String(),
		Description: record.Description,
		Category:    record.Category,
		OccurredOn:  record.OccurredOn,
		Attributes:  string(encoded),
		Operation:   operation,
		UpdatedAt:   record.UpdatedAt.Time,
	}, nil
}
