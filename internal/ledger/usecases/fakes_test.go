package usecases_test

import (
	"cmp"
	"context"
	"finance-tracker/internal/ledger/domain"
	"finance-tracker/internal/ledger/usecases"
	schemadomain "finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"maps"
	"slices"
	"sync"
)

type mockRecordRepository struct {
	mu      sync.Mutex
	records map[shareddomain.ID]domain.Record

	createError error
	findError   error
	lastQuery   usecases.RecordQuery
}

func newMockRecordRepository() *mockRecordRepository {
	return &mockRecordRepository{records: make(map[shareddomain.ID]domain.Record)}
}

func (m *mockRecordRepository) Create(_ context.Context, record domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createError != nil {
		return m.createError
	}
	record.Attributes = maps.Clone(record.Attributes)
	m.records[record.ID] = record
	return nil
}

func (m *mockRecordRepository) Update(_ context.Context, record domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.records[record.ID]
	if !ok || stored.Owner != record.Owner || stored.Context != record.Context {
		return usecases.ErrRecordNotFound
	}
	record.Attributes = maps.Clone(record.Attributes)
	m.records[record.ID] = record
	return nil
}

func (m *mockRecordRepository) GetByID(_ context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, id shareddomain.ID) (domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	if !ok || record.Owner != owner || record.Context != fieldContext {
		return domain.Record{}, usecases.ErrRecordNotFound
	}
	return record, nil
}

func (m *mockRecordRepository) FindByContext(_ context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, query usecases.RecordQuery) ([]domain.Record, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastQuery = query
	if m.findError != nil {
		return nil, 0, m.findError
	}
	result := []domain.Record{}
	for _, record := range m.records {
		if record.Owner != owner || record.Context != fieldContext {
			continue
		}
		if query.Range != nil && !query.Range.Contains(record.OccurredOn) {
			continue
		}
		result = append(result, record)
	}
	slices.SortFunc(result, func(a, b domain.Record) int {
		return cmp.Or(cmp.Compare(b.OccurredOn, a.OccurredOn), b.CreatedAt.Compare(a.CreatedAt.Time))
	})
	return result, len(result), nil
}

func (m *mockRecordRepository) Delete(_ context.Context, owner shareddomain.OwnerID, fieldContext schemadomain.Context, id shareddomain.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	if !ok || record.Owner != owner || record.Context != fieldContext {
		return usecases.ErrRecordNotFound
	}
	delete(m.records, id)
	return nil
}

type mockCategoryRepository struct {
	mu         sync.Mutex
	categories []domain.Category
	findError  error
}

func (m *mockCategoryRepository) Create(_ context.Context, category domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.Owner == category.Owner && c.Name == category.Name {
			return usecases.ErrCategoryDuplicated
		}
	}
	m.categories = append(m.categories, category)
	return nil
}

func (m *mockCategoryRepository) FindByOwner(_ context.Context, owner shareddomain.OwnerID) ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findError != nil {
		return nil, m.findError
	}
	result := []domain.Category{}
	for _, c := range m.categories {
		if c.Owner == owner {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockCategoryRepository) Delete(_ context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.categories {
		if c.ID == id && c.Owner == owner {
			m.categories = slices.Delete(m.categories, i, i+1)
			return nil
		}
	}
	return usecases.ErrCategoryNotFound
}

type mockFieldCatalog struct {
	fields map[schemadomain.Context][]schemadomain.FieldDefinition
	err    error
}

func (m *mockFieldCatalog) ListFields(_ context.Context, _ shareddomain.OwnerID, fieldContext schemadomain.Context) ([]schemadomain.FieldDefinition, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.fields[fieldContext], nil
}

type mockActivePeriodResolver struct {
	start, end string
	err        error
}

func (m *mockActivePeriodResolver) ActiveRange(context.Context, shareddomain.OwnerID) (string, string, error) {
	return m.start, m.end, m.err
}
