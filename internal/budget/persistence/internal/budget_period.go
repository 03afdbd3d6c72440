package internal

import (
	"finance-tracker/internal/budget/domain"
	"finance-tracker/internal/infra/utils"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
)

type BudgetPeriod struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	OwnerID    string     `json:"owner_id" gorm:"uniqueIndex:idx_budget_owner_name;not null"`
	Name       string     `json:"name" gorm:"uniqueIndex:idx_budget_owner_name;not null"`
	PeriodType string     `json:"period_type" gorm:"not null"`
	StartDate  *string    `json:"start_date" gorm:"type:char(10)"`
	EndDate    *string    `json:"end_date" gorm:"type:char(10)"`
	IsActive   bool       `json:"is_active" gorm:"index;not null"`
	CreatedAt  utils.Time `json:"created_at"`
	UpdatedAt  utils.Time `json:"updated_at"`
}

func (BudgetPeriod) TableName() string {
	return "budget_periods"
}

func FromBudgetPeriod(period domain.BudgetPeriod) BudgetPeriod {
	return BudgetPeriod{
		ID:         period.ID.String(),
		OwnerID:    period.Owner.String(),
		Name:       string(period.Name),
		PeriodType: period.Type.String(),
		StartDate:  period.StartDate,
		EndDate:    period.EndDate,
		IsActive:   period.IsActive,
		CreatedAt:  period.CreatedAt,
		UpdatedAt:  period.UpdatedAt,
	}
}

func (m BudgetPeriod) ToDomain() domain.BudgetPeriod {
	return domain.BudgetPeriod{
		ID:        shareddomain.ID(m.ID),
		Owner:     shareddomain.OwnerID(m.OwnerID),
		Name:      shareddomain.Name(m.Name),
		Type:      domain.PeriodType(m.PeriodType),
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
