package internal

import (
	"finance-tracker/internal/ledger/domain"
)

type CategoryListResponse struct {
	Data []CategoryResponse `json:"data"`
}

type CategoryResponse struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type CategoryCreateRequest struct {
	Name string `json:"name"`
}

func ToCategoryResponse(category domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID.String(),
		Name: string(category.Name),
	}
}

func ToCategoryListResponse(categories []domain.Category) CategoryListResponse {
	data := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		data[i] = ToCategoryResponse(category)
	}
	return CategoryListResponse{Data: data}
}
