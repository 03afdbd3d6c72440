package httpapi

import (
	"finance-tracker/internal/budget/httpapi/internal"
	"finance-tracker/internal/budget/usecases"
	"finance-tracker/internal/infra/httpserver"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	sharedhttpapi "finance-tracker/internal/shared_kernel/httpapi"
	"net/http"
)

const (
	invalidBodyErrMessage    = "invalid request body"
	listPeriodsErrMessage    = "failed to list budget periods"
	activePeriodErrMessage   = "failed to get active budget period"
	createPeriodErrMessage   = "failed to create budget period"
	activatePeriodErrMessage = "failed to activate budget period"
	deletePeriodErrMessage   = "failed to delete budget period"
)

func NewBudgetPeriodController(service usecases.BudgetPeriodService) *BudgetPeriodController {
	return &BudgetPeriodController{
		service: service,
	}
}

var _ httpserver.Controller = &BudgetPeriodController{}

type BudgetPeriodController struct {
	service usecases.BudgetPeriodService
}

func (c *BudgetPeriodController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/budgets", c.listPeriods())
	router.Handle("GET /v1/budgets/active", c.activePeriod())
	router.Handle("POST /v1/budgets", c.createPeriod())
	router.Handle("PUT /v1/budgets/{id}/activate", c.activatePeriod())
	router.Handle("DELETE /v1/budgets/{id}", c.deletePeriod())
}

func (c *BudgetPeriodController) listPeriods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := c.service.ListPeriods(r.Context(), sharedhttpapi.RequestOwner(r))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listPeriodsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToBudgetPeriodListResponse(views))
	}
}

func (c *BudgetPeriodController) activePeriod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := c.service.GetActivePeriod(r.Context(), sharedhttpapi.RequestOwner(r))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, activePeriodErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToBudgetPeriodResponse(view))
	}
}

func (c *BudgetPeriodController) createPeriod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.BudgetPeriodCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		view, err := c.service.CreateCustomPeriod(r.Context(), sharedhttpapi.RequestOwner(r), body.Name, body.StartDate, body.EndDate)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, createPeriodErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToBudgetPeriodResponse(view))
	}
}

func (c *BudgetPeriodController) activatePeriod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := sharedhttpapi.RequestOwner(r)
		err := c.service.ActivatePeriod(r.Context(), owner, shareddomain.ID(r.PathValue("id")))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, activatePeriodErrMessage)
			return
		}

		view, err := c.service.GetActivePeriod(r.Context(), owner)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, activePeriodErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToBudgetPeriodResponse(view))
	}
}

func (c *BudgetPeriodController) deletePeriod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := c.service.DeletePeriod(r.Context(), sharedhttpapi.RequestOwner(r), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, deletePeriodErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
