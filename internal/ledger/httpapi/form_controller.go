package httpapi

import (
	"finance-tracker/internal/infra/httpserver"
	"finance-tracker/internal/ledger/httpapi/internal"
	"finance-tracker/internal/ledger/usecases"
	schemadomain "finance-tracker/internal/schema/domain"
	sharedhttpapi "finance-tracker/internal/shared_kernel/httpapi"
	"net/http"
)

const buildFormErrMessage = "failed to build form"

func NewFormController(service usecases.FormService) *FormController {
	return &FormController{
		service: service,
	}
}

var _ httpserver.Controller = &FormController{}

type FormController struct {
	service usecases.FormService
}

func (c *FormController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/forms/{context}", c.buildForm())
}

func (c *FormController) buildForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldContext, err := schemadomain.ParseContext(r.PathValue("context"))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, buildFormErrMessage)
			return
		}

		form, err := c.service.BuildForm(r.Context(), sharedhttpapi.RequestOwner(r), fieldContext)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, buildFormErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormResponse(form))
	}
}
