package domain

import (
	"errors"
)

var ErrOwnerRequired = errors.New("owner is required")
