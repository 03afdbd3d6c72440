package internal

import (
	"finance-tracker/internal/budget/usecases"
	"time"
)

type BudgetPeriodListResponse struct {
	Data []BudgetPeriodResponse `json:"data"`
}

type BudgetPeriodResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PeriodType string    `json:"period_type"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type BudgetPeriodCreateRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func ToBudgetPeriodResponse(view usecases.PeriodView) BudgetPeriodResponse {
	return BudgetPeriodResponse{
		ID:         view.Period.ID.String(),
		Name:       string(view.Period.Name),
		PeriodType: view.Period.Type.String(),
		StartDate:  view.Start,
		EndDate:    view.End,
		IsActive:   view.Period.IsActive,
		CreatedAt:  view.Period.CreatedAt.Time,
	}
}

func ToBudgetPeriodListResponse(views []usecases.PeriodView) BudgetPeriodListResponse {
	data := make([]BudgetPeriodResponse, len(views))
	for i, view := range views {
		data[i] = ToBudgetPeriodResponse(view)
	}
	return BudgetPeriodListResponse{Data: data}
}
