package domain

import (
	shareddomain "finance-tracker/internal/shared_kernel/domain"
)

type PeriodType string

const (
	PeriodDaily   PeriodType = "daily"
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
	PeriodYearly  PeriodType = "yearly"
	PeriodCustom  PeriodType = "custom"
)

func (t PeriodType) String() string {
	return string(t)
}

func (t PeriodType) IsValid() bool {
	switch t {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodCustom:
		return true
	}
	return false
}

// IsBuiltIn reports whether the range follows from the current date alone.
func (t PeriodType) IsBuiltIn() bool {
	return t.IsValid() && t != PeriodCustom
}

func ParsePeriodType(value string) (PeriodType, error) {
	t := PeriodType(value)
	if !t.IsValid() {
		return "", shareddomain.NewValidationError("period_type", "must be daily, weekly, monthly, yearly or custom")
	}
	return t, nil
}
