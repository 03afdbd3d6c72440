package domain

import (
	"finance-tracker/internal/infra/utils"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"strings"
	"time"
)

// FallbackCategoryName stands in for a missing category and is the only
// choice of an owner without categories.
const FallbackCategoryName = "Varios"

type Category struct {
	ID        shareddomain.ID
	Owner     shareddomain.OwnerID
	Name      shareddomain.Name
	CreatedAt utils.Time
}

// IsFallback reports whether the category is the implicit one, which is never
// stored.
func (c Category) IsFallback() bool {
	return c.ID == ""
}

func FallbackCategory(owner shareddomain.OwnerID) Category {
	return Category{Owner: owner, Name: FallbackCategoryName}
}

func NewCategory(owner shareddomain.OwnerID, name string) (Category, error) {
	if owner == "" {
		return Category{}, ErrOwnerRequired
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, shareddomain.NewValidationError("name", "is required")
	}

	return Category{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Owner:     owner,
		Name:      shareddomain.Name(name),
		CreatedAt: utils.Time{Time: time.Now()},
	}, nil
}
