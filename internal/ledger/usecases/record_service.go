package usecases

//go:generate mockgen -source=./record_service.go -destination=../../../test/unit/doubles/ledger/usecases/record_service_mock.go -package=usecases -mock_names=RecordService=MockRecordService

import (
	"context"
	"errors"
	"finance-tracker/internal/infra/async"
	"finance-tracker/internal/infra/utils"
	"finance-tracker/internal/ledger/domain"
	schemadomain "finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"log/slog"
	"time"
)

const (
	LedgerTopic async.BrokerTopicName = "ledger_records"

	EventRecordCreated = "record_created"
	EventRecordUpdated = "record_updated"
	EventRecordDeleted = "record_deleted"
)

// RecordChange is the in-process notification of a record write.
type RecordChange struct {
	Owner   shareddomain.OwnerID
	Context schemadomain.Context
	ID      shareddomain.ID
	Record  *domain.Record
}

type RecordService interface {
	CreateRecord(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, submission map[string]any) (domain.Record, error)
	UpdateRecord(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, id shareddomain.ID, submission map[string]any) (domain.Record, error)
	GetRecord(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, id shareddomain.ID) (domain.Record, error)
	ListRecords(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, query RecordQuery) ([]domain.Record, int, error)
	ListRecordsInActivePeriod(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context) ([]domain.Record, int, error)
	DeleteRecord(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, id shareddomain.ID) error
}

func NewRecordService(
	repository RecordRepository,
	periods ActivePeriodResolver,
	broker async.InternalBroker,
	location *time.Location,
) *SimpleRecordService {
	if location == nil {
		location = time.Local
	}
	return &SimpleRecordService{
		repository: repository,
		periods:    periods,
		broker:     broker,
		location:   location,
	}
}

var _ RecordService = (*SimpleRecordService)(nil)

type SimpleRecordService struct {
	repository RecordRepository
	periods    ActivePeriodResolver
	broker     async.InternalBroker
	location   *time.Location
}

func (s *SimpleRecordService) CreateRecord(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext schemadomain.Context,
	submission map[string]any,
) (domain.Record, error) {
	composition, err := domain.Encode(fieldContext, submission, utils.Today(s.location))
	if err != nil {
		return domain.Record{}, err
	}

	record, err := domain.NewRecordBuilder().
		WithOwner(owner).
		WithContext(fieldContext).
		WithComposition(composition).
		Build()
	if err != nil {
		return domain.Record{}, err
	}

	if err := s.repository.Create(ctx, record); err != nil {
		slog.Error("creating record", slog.String("error", err.Error()))
		return domain.Record{}, shareddomain.NewStorageError("creating record", err)
	}

	slog.Info("record created",
		slog.String("id", record.ID.String()),
		slog.String("owner", owner.String()),
		slog.String("context", fieldContext.String()))
	s.notify(ctx, EventRecordCreated, record)

	return record, nil
}

func (s *SimpleRecordService) UpdateRecord(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext schemadomain.Context,
	id shareddomain.ID,
	submission map[string]any,
) (domain.Record, error) {
	composition, err := domain.Encode(fieldContext, submission, utils.Today(s.location))
	if err != nil {
		return domain.Record{}, err
	}

	record, err := s.GetRecord(ctx, owner, fieldContext, id)
	if err != nil {
		return domain.Record{}, err
	}

	record.Replace(composition)

	err = s.repository.Update(ctx, record)
	if errors.Is(err, ErrRecordNotFound) {
		return domain.Record{}, ErrRecordNotFound
	}
	if err != nil {
		slog.Error("updating record", slog.String("error", err.Error()))
		return domain.Record{}, shareddomain.NewStorageError("updating record", err)
	}

	s.notify(ctx, EventRecordUpdated, record)
	return record, nil
}

func (s *SimpleRecordService) GetRecord(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext schemadomain.Context,
	id shareddomain.ID,
) (domain.Record, error) {
	if !fieldContext.IsValid() {
		return domain.Record{}, shareddomain.NewValidationError("context", "must be expense or income")
	}

	record, err := s.repository.GetByID(ctx, owner, fieldContext, id)
	if errors.Is(err, ErrRecordNotFound) {
		return domain.Record{}, ErrRecordNotFound
	}
	if err != nil {
		slog.Error("getting record", slog.String("error", err.Error()))
		return domain.Record{}, shareddomain.NewStorageError("getting record", err)
	}
	return record, nil
}

func (s *SimpleRecordService) ListRecords(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext schemadomain.Context,
	query RecordQuery,
) ([]domain.Record, int, error) {
	if !fieldContext.IsValid() {
		return nil, 0, shareddomain.NewValidationError("context", "must be expense or income")
	}

	if query.ActivePeriod {
		dateRange, err := s.activeRange(ctx, owner)
		if err != nil {
			return nil, 0, err
		}
		query.Range = &dateRange
		query.ActivePeriod = false
	}

	records, total, err := s.repository.FindByContext(ctx, owner, fieldContext, query)
	if err != nil {
		slog.Error("listing records", slog.String("error", err.Error()))
		return nil, 0, shareddomain.NewStorageError("listing records", err)
	}
	return records, total, nil
}

func (s *SimpleRecordService) ListRecordsInActivePeriod(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext schemadomain.Context,
) ([]domain.Record, int, error) {
	return s.ListRecords(ctx, owner, fieldContext, RecordQuery{ActivePeriod: true})
}

func (s *SimpleRecordService) activeRange(ctx context.Context, owner shareddomain.OwnerID) (domain.DateRange, error) {
	start, end, err := s.periods.ActiveRange(ctx, owner)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.NewDateRange(start, end)
}

func (s *SimpleRecordService) DeleteRecord(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext schemadomain.Context,
	id shareddomain.ID,
) error {
	if !fieldContext.IsValid() {
		return shareddomain.NewValidationError("context", "must be expense or income")
	}

	err := s.repository.Delete(ctx, owner, fieldContext, id)
	if errors.Is(err, ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	if err != nil {
		slog.Error("deleting record", slog.String("error", err.Error()))
		return shareddomain.NewStorageError("deleting record", err)
	}

	slog.Info("record deleted", slog.String("id", id.String()), slog.String("owner", owner.String()))
	s.notify(ctx, EventRecordDeleted, domain.Record{ID: id, Owner: owner, Context: fieldContext})
	return nil
}

// notify tells in-process listeners about a committed write. Nobody listening
// is not an error.
func (s *SimpleRecordService) notify(ctx context.Context, event string, record domain.Record) {
	change := RecordChange{
		Owner:   record.Owner,
		Context: record.Context,
		ID:      record.ID,
	}
	if event != EventRecordDeleted {
		change.Record = &record
	}

	err := s.broker.Publish(ctx, LedgerTopic, async.BrokerMessage{Event: event, Value: change})
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Warn("notifying record change", slog.String("error", err.Error()))
	}
}
