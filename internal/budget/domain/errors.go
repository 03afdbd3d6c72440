package domain

import (
	"errors"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"fmt"
)

var (
	ErrOwnerRequired = errors.New("owner is required")
	ErrBuiltInPeriod = fmt.Errorf("built-in budget period is %w", shareddomain.ErrProtected)
)
