package internal

import (
	"finance-tracker/internal/infra/utils"
	"finance-tracker/internal/ledger/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
)

type Category struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	OwnerID   string     `json:"owner_id" gorm:"uniqueIndex:idx_category_owner_name;not null"`
	Name      string     `json:"name" gorm:"uniqueIndex:idx_category_owner_name;not null"`
	CreatedAt utils.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

func FromCategory(category domain.Category) Category {
	return Category{
		ID:        category.ID.String(),
		OwnerID:   category.Owner.String(),
		Name:      string(category.Name),
		CreatedAt: category.CreatedAt,
	}
}

func (m Category) ToDomain() domain.Category {
	return domain.Category{
		ID:        shareddomain.ID(m.ID),
		Owner:     shareddomain.OwnerID(m.OwnerID),
		Name:      shareddomain.Name(m.Name),
		CreatedAt: m.CreatedAt,
	}
}
