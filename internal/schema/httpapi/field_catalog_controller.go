package httpapi

import (
	"finance-tracker/internal/infra/httpserver"
	"finance-tracker/internal/schema/domain"
	"finance-tracker/internal/schema/httpapi/internal"
	"finance-tracker/internal/schema/usecases"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	sharedhttpapi "finance-tracker/internal/shared_kernel/httpapi"
	"net/http"
)

const (
	listFieldsErrMessage    = "failed to list fields"
	createFieldErrMessage   = "failed to create field"
	reorderFieldsErrMessage = "failed to reorder fields"
	relabelFieldErrMessage  = "failed to relabel field"
	retireFieldErrMessage   = "failed to retire field"
	invalidBodyErrMessage   = "invalid request body"
)

func NewFieldCatalogController(service usecases.FieldCatalogService) *FieldCatalogController {
	return &FieldCatalogController{
		service: service,
	}
}

var _ httpserver.Controller = &FieldCatalogController{}

type FieldCatalogController struct {
	service usecases.FieldCatalogService
}

func (c *FieldCatalogController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/fields/{context}", c.listFields(false))
	router.Handle("GET /v1/fields/{context}/all", c.listFields(true))
	router.Handle("POST /v1/fields/{context}", c.createField())
	router.Handle("PUT /v1/fields/{context}/order", c.reorderFields())
	router.Handle("PUT /v1/fields/{context}/{id}/label", c.relabelField())
	router.Handle("DELETE /v1/fields/{context}/{id}", c.retireField())
}

func (c *FieldCatalogController) listFields(includeDisabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldContext, err := domain.ParseContext(r.PathValue("context"))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listFieldsErrMessage)
			return
		}

		owner := sharedhttpapi.RequestOwner(r)
		var fields []domain.FieldDefinition
		if includeDisabled {
			fields, err = c.service.ListAllFields(r.Context(), owner, fieldContext)
		} else {
			fields, err = c.service.ListFields(r.Context(), owner, fieldContext)
		}
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listFieldsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldListResponse(fields))
	}
}

func (c *FieldCatalogController) createField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldContext, err := domain.ParseContext(r.PathValue("context"))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, createFieldErrMessage)
			return
		}

		var body internal.FieldCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		field, err := c.service.CreateField(r.Context(), sharedhttpapi.RequestOwner(r), fieldContext, body.Label, domain.Kind(body.Kind))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, createFieldErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToFieldResponse(field))
	}
}

func (c *FieldCatalogController) reorderFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldContext, err := domain.ParseContext(r.PathValue("context"))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, reorderFieldsErrMessage)
			return
		}

		var body internal.FieldReorderRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		ids := make([]shareddomain.ID, len(body.OrderedIDs))
		for i, id := range body.OrderedIDs {
			ids[i] = shareddomain.ID(id)
		}

		err = c.service.ReorderFields(r.Context(), sharedhttpapi.RequestOwner(r), fieldContext, ids)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, reorderFieldsErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *FieldCatalogController) relabelField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := domain.ParseContext(r.PathValue("context")); err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, relabelFieldErrMessage)
			return
		}

		var body internal.FieldRelabelRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		field, err := c.service.RelabelField(r.Context(), sharedhttpapi.RequestOwner(r), shareddomain.ID(r.PathValue("id")), body.Label)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, relabelFieldErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldResponse(field))
	}
}

func (c *FieldCatalogController) retireField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := domain.ParseContext(r.PathValue("context")); err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, retireFieldErrMessage)
			return
		}

		err := c.service.RetireField(r.Context(), sharedhttpapi.RequestOwner(r), shareddomain.ID(r.PathValue("id")))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, retireFieldErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
