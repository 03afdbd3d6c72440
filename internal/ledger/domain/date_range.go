package domain

import (
	"finance-tracker/internal/infra/utils"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
)

// DateRange is an inclusive range of canonical YYYY-MM-DD dates. Canonical
// dates compare lexically in calendar order.
type DateRange struct {
	Start string
	End   string
}

func NewDateRange(start, end string) (DateRange, error) {
	if !utils.IsCanonicalDate(start) {
		return DateRange{}, shareddomain.NewValidationError("start", "must be a YYYY-MM-DD date")
	}
	if !utils.IsCanonicalDate(end) {
		return DateRange{}, shareddomain.NewValidationError("end", "must be a YYYY-MM-DD date")
	}
	if start > end {
		return DateRange{}, shareddomain.NewValidationError("end", "must not be before start")
	}
	return DateRange{Start: start, End: end}, nil
}

func (r DateRange) Contains(date string) bool {
	return r.Start <= date && date <= r.End
}
