package usecases

//go:generate mockgen -source=./form_service.go -destination=../../../test/unit/doubles/ledger/usecases/form_service_mock.go -package=usecases -mock_names=FormService=MockFormService

import (
	"context"
	"finance-tracker/internal/ledger/domain"
	schemadomain "finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
)

type FormInput struct {
	Key      schemadomain.Key
	Label    string
	Kind     schemadomain.Kind
	Required bool
	Choices  []string
}

type FormView struct {
	Context schemadomain.Context
	Inputs  []FormInput
}

// RenderedRow is a stored record shown through the current catalog. Legacy
// holds attributes no active field shows.
type RenderedRow struct {
	ID         shareddomain.ID
	OccurredOn string
	Cells      []domain.Entry
	Legacy     map[string]any
}

type FormService interface {
	BuildForm(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context) (FormView, error)
	RenderRecords(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, query RecordQuery) ([]RenderedRow, error)
	DecodeRecord(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, id shareddomain.ID) (domain.Decoded, error)
}

func NewFormService(catalog FieldCatalog, categories CategoryService, records RecordService) *SimpleFormService {
	return &SimpleFormService{
		catalog:    catalog,
		categories: categories,
		records:    records,
	}
}

var _ FormService = (*SimpleFormService)(nil)

type SimpleFormService struct {
	catalog    FieldCatalog
	categories CategoryService
	records    RecordService
}

func (s *SimpleFormService) BuildForm(ctx context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context) (FormView, error) {
	fields, err := s.catalog.ListFields(ctx, owner, fieldContext)
	if err != nil {
		return FormView{}, err
	}

	var choices []string
	for _, field := range fields {
		if field.Kind != schemadomain.KindSelect {
			continue
		}
		choices, err = s.categoryChoices(ctx, owner)
		if err != nil {
			return FormView{}, err
		}
		break
	}

	inputs := make([]FormInput, len(fields))
	for i, field := range fields {
		inputs[i] = FormInput{
			Key:      field.Key,
			Label:    string(field.Label),
			Kind:     field.Kind,
			Required: field.Key == schemadomain.KeyAmount,
		}
		if field.Kind == schemadomain.KindSelect {
			inputs[i].Choices = choices
		}
	}

	return FormView{Context: fieldContext, Inputs: inputs}, nil
}

func (s *SimpleFormService) RenderRecords(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext schemadomain.Context,
	query RecordQuery,
) ([]RenderedRow, error) {
	fields, err := s.catalog.ListFields(ctx, owner, fieldContext)
	if err != nil {
		return nil, err
	}

	records, _, err := s.records.ListRecords(ctx, owner, fieldContext, query)
	if err != nil {
		return nil, err
	}

	rows := make([]RenderedRow, len(records))
	for i, record := range records {
		rows[i] = RenderedRow{
			ID:         record.ID,
			OccurredOn: record.OccurredOn,
			Cells:      domain.Decode(record, fields).Entries,
			Legacy:     domain.Legacy(record, fields),
		}
	}
	return rows, nil
}

// DecodeRecord flattens a stored record into the values of an edit form.
func (s *SimpleFormService) DecodeRecord(
	ctx context.Context,
	owner shareddomain.OwnerID,
	fieldContext schemadomain.Context,
	id shareddomain.ID,
) (domain.Decoded, error) {
	record, err := s.records.GetRecord(ctx, owner, fieldContext, id)
	if err != nil {
		return domain.Decoded{}, err
	}

	fields, err := s.catalog.ListFields(ctx, owner, fieldContext)
	if err != nil {
		return domain.Decoded{}, err
	}

	decoded := domain.Decode(record, fields)
	for key, value := range domain.Legacy(record, fields) {
		decoded.Values[key] = value
	}
	return decoded, nil
}

func (s *SimpleFormService) categoryChoices(ctx context.Context, owner shareddomain.OwnerID) ([]string, error) {
	categories, err := s.categories.ListCategories(ctx, owner)
	if err != nil {
		return nil, err
	}

	choices := make([]string, len(categories))
	for i, category := range categories {
		choices[i] = string(category.Name)
	}
	return choices, nil
}
