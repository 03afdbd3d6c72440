package usecases_test

import (
	"context"
	"finance-tracker/internal/budget/domain"
	"finance-tracker/internal/budget/usecases"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"slices"
	"sync"
)

type mockBudgetPeriodRepository struct {
	mu      sync.Mutex
	periods []domain.BudgetPeriod

	countError  error
	switchError error
}

func (m *mockBudgetPeriodRepository) CountByOwner(_ context.Context, owner shareddomain.OwnerID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countError != nil {
		return 0, m.countError
	}
	count := 0
	for _, p := range m.periods {
		if p.Owner == owner {
			count++
		}
	}
	return count, nil
}

func (m *mockBudgetPeriodRepository) CreateAll(_ context.Context, periods []domain.BudgetPeriod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, period := range periods {
		if m.exists(period) {
			return usecases.ErrPeriodDuplicated
		}
	}
	m.periods = append(m.periods, periods...)
	return nil
}

func (m *mockBudgetPeriodRepository) Create(_ context.Context, period domain.BudgetPeriod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.exists(period) {
		return usecases.ErrPeriodDuplicated
	}
	m.periods = append(m.periods, period)
	return nil
}

func (m *mockBudgetPeriodRepository) exists(period domain.BudgetPeriod) bool {
	return slices.ContainsFunc(m.periods, func(p domain.BudgetPeriod) bool {
		return p.Owner == period.Owner && p.Name == period.Name
	})
}

func (m *mockBudgetPeriodRepository) GetByID(_ context.Context, owner shareddomain.OwnerID, id shareddomain.ID) (domain.BudgetPeriod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.periods {
		if p.ID == id && p.Owner == owner {
			return p, nil
		}
	}
	return domain.BudgetPeriod{}, usecases.ErrPeriodNotFound
}

func (m *mockBudgetPeriodRepository) FindByOwner(_ context.Context, owner shareddomain.OwnerID) ([]domain.BudgetPeriod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []domain.BudgetPeriod{}
	for _, p := range m.periods {
		if p.Owner == owner {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockBudgetPeriodRepository) GetActive(_ context.Context, owner shareddomain.OwnerID) (domain.BudgetPeriod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.periods {
		if p.Owner == owner && p.IsActive {
			return p, nil
		}
	}
	return domain.BudgetPeriod{}, usecases.ErrNoActivePeriod
}

func (m *mockBudgetPeriodRepository) Switch(_ context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.switchError != nil {
		return m.switchError
	}
	if !slices.ContainsFunc(m.periods, func(p domain.BudgetPeriod) bool { return p.ID == id && p.Owner == owner }) {
		return usecases.ErrPeriodNotFound
	}
	for i := range m.periods {
		if m.periods[i].Owner == owner {
			m.periods[i].IsActive = m.periods[i].ID == id
		}
	}
	return nil
}

func (m *mockBudgetPeriodRepository) Delete(_ context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	index := slices.IndexFunc(m.periods, func(p domain.BudgetPeriod) bool { return p.ID == id && p.Owner == owner })
	if index < 0 {
		return usecases.ErrPeriodNotFound
	}
	wasActive := m.periods[index].IsActive
	m.periods = slices.Delete(m.periods, index, index+1)
	if wasActive {
		for i := range m.periods {
			if m.periods[i].Owner == owner && m.periods[i].Type == domain.PeriodMonthly {
				m.periods[i].IsActive = true
			}
		}
	}
	return nil
}
