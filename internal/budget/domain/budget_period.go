package domain

import (
	"finance-tracker/internal/infra/utils"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"strings"
	"time"
)

// BudgetPeriod is a named date-range selector. Only custom periods store their
// dates; the others derive them from the current date.
type BudgetPeriod struct {
	ID        shareddomain.ID
	Owner     shareddomain.OwnerID
	Name      shareddomain.Name
	Type      PeriodType
	StartDate *string
	EndDate   *string
	IsActive  bool
	CreatedAt utils.Time
	UpdatedAt utils.Time
}

// Range returns the inclusive YYYY-MM-DD bounds of the period on the day of
// now. now's location decides what "today" is.
func (p BudgetPeriod) Range(now time.Time) (string, string, error) {
	if p.Type == PeriodCustom {
		if p.StartDate == nil || p.EndDate == nil {
			return "", "", shareddomain.NewValidationError("start_date", "custom period without dates")
		}
		return *p.StartDate, *p.EndDate, nil
	}
	return derivedRange(p.Type, now)
}

func NewBudgetPeriodBuilder() *budgetPeriodBuilder {
	return &budgetPeriodBuilder{}
}

type budgetPeriodBuilder struct {
	actions []budgetPeriodHandler
}

type budgetPeriodHandler func(v *BudgetPeriod) error

func (b *budgetPeriodBuilder) WithOwner(value shareddomain.OwnerID) *budgetPeriodBuilder {
	b.actions = append(b.actions, func(d *BudgetPeriod) error {
		d.Owner = value
		return nil
	})
	return b
}

func (b *budgetPeriodBuilder) WithName(value string) *budgetPeriodBuilder {
	b.actions = append(b.actions, func(d *BudgetPeriod) error {
		value = strings.TrimSpace(value)
		if value == "" {
			return shareddomain.NewValidationError("name", "is required")
		}
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *budgetPeriodBuilder) WithType(value PeriodType) *budgetPeriodBuilder {
	b.actions = append(b.actions, func(d *BudgetPeriod) error {
		if !value.IsValid() {
			return shareddomain.NewValidationError("period_type", "must be daily, weekly, monthly, yearly or custom")
		}
		d.Type = value
		return nil
	})
	return b
}

func (b *budgetPeriodBuilder) WithDates(start, end string) *budgetPeriodBuilder {
	b.actions = append(b.actions, func(d *BudgetPeriod) error {
		if !utils.IsCanonicalDate(start) {
			return shareddomain.NewValidationError("start_date", "must be a YYYY-MM-DD date")
		}
		if !utils.IsCanonicalDate(end) {
			return shareddomain.NewValidationError("end_date", "must be a YYYY-MM-DD date")
		}
		if start > end {
			return shareddomain.NewValidationError("end_date", "must not be before start_date")
		}
		d.StartDate = &start
		d.EndDate = &end
		return nil
	})
	return b
}

func (b *budgetPeriodBuilder) WithActive(value bool) *budgetPeriodBuilder {
	b.actions = append(b.actions, func(d *BudgetPeriod) error {
		d.IsActive = value
		return nil
	})
	return b
}

func (b *budgetPeriodBuilder) Build() (BudgetPeriod, error) {
	now := utils.Time{Time: time.Now()}
	result := BudgetPeriod{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return BudgetPeriod{}, err
		}
	}

	if result.Owner == "" {
		return BudgetPeriod{}, ErrOwnerRequired
	}
	if result.Name == "" {
		return BudgetPeriod{}, shareddomain.NewValidationError("name", "is required")
	}
	if !result.Type.IsValid() {
		return BudgetPeriod{}, shareddomain.NewValidationError("period_type", "is required")
	}

	hasDates := result.StartDate != nil
	if result.Type == PeriodCustom && !hasDates {
		return BudgetPeriod{}, shareddomain.NewValidationError("start_date", "is required for a custom period")
	}
	if result.Type != PeriodCustom && hasDates {
		return BudgetPeriod{}, shareddomain.NewValidationError("start_date", "only custom periods store dates")
	}

	return result, nil
}
