package domain

import (
	"errors"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"fmt"
)

var (
	ErrOwnerRequired        = errors.New("owner is required")
	ErrAmountFieldProtected = fmt.Errorf("amount field is %w", shareddomain.ErrProtected)
)
