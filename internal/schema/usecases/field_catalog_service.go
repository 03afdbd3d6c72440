package usecases

//go:generate mockgen -source=./field_catalog_service.go -destination=../../../test/unit/doubles/schema/usecases/field_catalog_service_mock.go -package=usecases -mock_names=FieldCatalogService=MockFieldCatalogService

import (
	"context"
	"errors"
	"finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"log/slog"
)

type FieldCatalogService interface {
	EnsureDefaults(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context) error
	ListFields(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context) ([]domain.FieldDefinition, error)
	ListAllFields(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context) ([]domain.FieldDefinition, error)
	CreateField(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context, label string, kind domain.Kind) (domain.FieldDefinition, error)
	ReorderFields(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context, orderedIDs []shareddomain.ID) error
	RelabelField(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID, label string) (domain.FieldDefinition, error)
	RetireField(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error
}

func NewFieldCatalogService(repository FieldDefinitionRepository, cache FieldListCache) *SimpleFieldCatalogService {
	return &SimpleFieldCatalogService{
		repository: repository,
		cache:      cache,
	}
}

var _ FieldCatalogService = (*SimpleFieldCatalogService)(nil)

type SimpleFieldCatalogService struct {
	repository FieldDefinitionRepository
	cache      FieldListCache
}

func (s *SimpleFieldCatalogService) EnsureDefaults(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context) error {
	if !fieldContext.IsValid() {
		return shareddomain.NewValidationError("context", "must be expense or income")
	}

	count, err := s.repository.CountByContext(ctx, owner, fieldContext)
	if err != nil {
		slog.Error("counting field definitions", slog.String("error", err.Error()))
		return shareddomain.NewStorageError("counting field definitions", err)
	}
	if count > 0 {
		return nil
	}

	defaults, err := domain.DefaultFields(owner, fieldContext)
	if err != nil {
		return err
	}

	err = s.repository.CreateAll(ctx, defaults)
	if errors.Is(err, ErrFieldDuplicated) {
		slog.Debug("default fields already seeded",
			slog.String("owner", owner.String()),
			slog.String("context", fieldContext.String()))
		return nil
	}
	if err != nil {
		slog.Error("seeding default fields", slog.String("error", err.Error()))
		return shareddomain.NewStorageError("seeding default fields", err)
	}

	s.cache.Invalidate(ctx, owner, fieldContext)
	slog.Info("default fields seeded",
		slog.String("owner", owner.String()),
		slog.String("context", fieldContext.String()),
		slog.Int("count", len(defaults)))

	return nil
}

func (s *SimpleFieldCatalogService) ListFields(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context) ([]domain.FieldDefinition, error) {
	return s.cache.Load(ctx, owner, fieldContext, func(ctx context.Context) ([]domain.FieldDefinition, error) {
		return s.list(ctx, owner, fieldContext, false)
	})
}

func (s *SimpleFieldCatalogService) ListAllFields(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context) ([]domain.FieldDefinition, error) {
	return s.list(ctx, owner, fieldContext, true)
}

func (s *SimpleFieldCatalogService) list(ctx context.Context, owner shareddomain.OwnerID, fieldContext domain.Context, includeDisabled bool) ([]domain.FieldDefinition, error) {
	if err := s.EnsureDefaults(ctx, owner, fieldContext); err != nil {
		return nil, err
	}

	fields, err := s.repository.FindByContext(ctx, owner, fieldContext, includeDisabled)
	if err != nil {
		slog.Error("listing field definitions", slog.String("error", err.Error()))
		return nil, shareddomain.NewStorageError("listing field definitions", err)
	}

	return fields, nil
}

func (s *SimpleFieldCatalogService) CreateField(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext domain.Context,
	label string,
	kind domain.Kind,
) (domain.FieldDefinition, error) {
	field, err := domain.NewFieldDefinitionBuilder().
		WithOwner(owner).
		WithContext(fieldContext).
		WithLabel(label).
		WithKind(kind).
		Build()
	if err != nil {
		return domain.FieldDefinition{}, err
	}

	// a custom field must not stand in for the defaults of an unseeded catalog
	if err := s.EnsureDefaults(ctx, owner, fieldContext); err != nil {
		return domain.FieldDefinition{}, err
	}

	maxOrder, err := s.repository.MaxOrder(ctx, owner, fieldContext)
	if err != nil {
		slog.Error("reading max field order", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, shareddomain.NewStorageError("reading max field order", err)
	}
	field.Order = maxOrder + 1

	err = s.repository.Create(ctx, field)
	if errors.Is(err, ErrFieldDuplicated) {
		return domain.FieldDefinition{}, shareddomain.NewValidationError("label", "a field with the same key already exists")
	}
	if err != nil {
		slog.Error("creating field definition", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, shareddomain.NewStorageError("creating field definition", err)
	}

	s.cache.Invalidate(ctx, owner, fieldContext)
	slog.Info("field definition created",
		slog.String("id", field.ID.String()),
		slog.String("owner", owner.String()),
		slog.String("key", field.Key.String()))

	return field, nil
}

func (s *SimpleFieldCatalogService) ReorderFields(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext domain.Context,
	orderedIDs []shareddomain.ID,
) error {
	if !fieldContext.IsValid() {
		return shareddomain.NewValidationError("context", "must be expense or income")
	}

	err := s.repository.UpdateOrder(ctx, owner, fieldContext, orderedIDs)
	if err != nil {
		slog.Error("reordering field definitions", slog.String("error", err.Error()))
		return shareddomain.NewStorageError("reordering field definitions", err)
	}

	s.cache.Invalidate(ctx, owner, fieldContext)
	return nil
}

func (s *SimpleFieldCatalogService) RelabelField(
	ctx context.Context,
	owner shareddomain.OwnerID,
	id shareddomain.ID,
	label string,
) (domain.FieldDefinition, error) {
	field, err := s.get(ctx, owner, id)
	if err != nil {
		return domain.FieldDefinition{}, err
	}

	if err := field.Relabel(label); err != nil {
		return domain.FieldDefinition{}, err
	}

	if err := s.repository.Update(ctx, field); err != nil {
		if errors.Is(err, ErrFieldNotFound) {
			return domain.FieldDefinition{}, ErrFieldNotFound
		}
		slog.Error("relabeling field definition", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, shareddomain.NewStorageError("relabeling field definition", err)
	}

	s.cache.Invalidate(ctx, owner, field.Context)
	return field, nil
}

func (s *SimpleFieldCatalogService) RetireField(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error {
	field, err := s.get(ctx, owner, id)
	if err != nil {
		return err
	}

	switch field.Retirement() {
	case domain.RetirementForbidden:
		return domain.ErrAmountFieldProtected
	case domain.RetirementDisable:
		field.Disable()
		err = s.repository.Update(ctx, field)
	default:
		err = s.repository.Delete(ctx, owner, id)
	}

	if errors.Is(err, ErrFieldNotFound) {
		return ErrFieldNotFound
	}
	if err != nil {
		slog.Error("retiring field definition", slog.String("error", err.Error()))
		return shareddomain.NewStorageError("retiring field definition", err)
	}

	s.cache.Invalidate(ctx, owner, field.Context)
	slog.Info("field definition retired",
		slog.String("id", id.String()),
		slog.String("owner", owner.String()),
		slog.Bool("deleted", !field.IsCore))

	return nil
}

func (s *SimpleFieldCatalogService) get(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) (domain.FieldDefinition, error) {
	field, err := s.repository.GetByID(ctx, owner, id)
	if errors.Is(err, ErrFieldNotFound) {
		return domain.FieldDefinition{}, ErrFieldNotFound
	}
	if err != nil {
		slog.Error("getting field definition", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, shareddomain.NewStorageError("getting field definition", err)
	}
	return field, nil
}
