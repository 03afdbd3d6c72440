package domain

import (
	shareddomain "finance-tracker/internal/shared_kernel/domain"
)

type defaultPeriod struct {
	name       string
	periodType PeriodType
	active     bool
}

var defaultPeriods = []defaultPeriod{
	{name: "Diario", periodType: PeriodDaily},
	{name: "Semanal", periodType: PeriodWeekly},
	{name: "Mensual", periodType: PeriodMonthly, active: true},
	{name: "Anual", periodType: PeriodYearly},
}

// DefaultPeriods builds the built-in periods seeded for a new owner, with the
// monthly one active.
func DefaultPeriods(owner shareddomain.OwnerID) ([]BudgetPeriod, error) {
	result := make([]BudgetPeriod, len(defaultPeriods))
	for i, d := range defaultPeriods {
		period, err := NewBudgetPeriodBuilder().
			WithOwner(owner).
			WithName(d.name).
			WithType(d.periodType).
			WithActive(d.active).
			Build()
		if err != nil {
			return nil, err
		}
		result[i] = period
	}
	return result, nil
}
