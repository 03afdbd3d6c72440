package httpapi

import (
	"finance-tracker/internal/infra/httpserver"
	"finance-tracker/internal/ledger/httpapi/internal"
	"finance-tracker/internal/ledger/usecases"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	sharedhttpapi "finance-tracker/internal/shared_kernel/httpapi"
	"net/http"
)

const (
	listCategoriesErrMessage = "failed to list categories"
	createCategoryErrMessage = "failed to create category"
	deleteCategoryErrMessage = "failed to delete category"
)

func NewCategoryController(service usecases.CategoryService) *CategoryController {
	return &CategoryController{
		service: service,
	}
}

var _ httpserver.Controller = &CategoryController{}

type CategoryController struct {
	service usecases.CategoryService
}

func (c *CategoryController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/categories", c.listCategories())
	router.Handle("POST /v1/categories", c.createCategory())
	router.Handle("DELETE /v1/categories/{id}", c.deleteCategory())
}

func (c *CategoryController) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := c.service.ListCategories(r.Context(), sharedhttpapi.RequestOwner(r))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listCategoriesErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCategoryListResponse(categories))
	}
}

func (c *CategoryController) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CategoryCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		category, err := c.service.CreateCategory(r.Context(), sharedhttpapi.RequestOwner(r), body.Name)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, createCategoryErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToCategoryResponse(category))
	}
}

func (c *CategoryController) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := c.service.DeleteCategory(r.Context(), sharedhttpapi.RequestOwner(r), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, deleteCategoryErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
