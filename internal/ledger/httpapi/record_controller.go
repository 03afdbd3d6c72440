package httpapi

import (
	"finance-tracker/internal/infra/httpserver"
	"finance-tracker/internal/ledger/domain"
	"finance-tracker/internal/ledger/httpapi/internal"
	"finance-tracker/internal/ledger/usecases"
	schemadomain "finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	sharedhttpapi "finance-tracker/internal/shared_kernel/httpapi"
	"net/http"
)

const (
	listRecordsErrMessage  = "failed to list records"
	getRecordErrMessage    = "failed to get record"
	createRecordErrMessage = "failed to create record"
	updateRecordErrMessage = "failed to update record"
	deleteRecordErrMessage = "failed to delete record"
	invalidBodyErrMessage  = "invalid request body"

	activePeriodQueryValue = "active"
)

func NewRecordController(records usecases.RecordService, forms usecases.FormService) *RecordController {
	return &RecordController{
		records: records,
		forms:   forms,
	}
}

var _ httpserver.Controller = &RecordController{}

type RecordController struct {
	records usecases.RecordService
	forms   usecases.FormService
}

func (c *RecordController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/records/{context}", c.listRecords())
	router.Handle("GET /v1/records/{context}/rendered", c.renderRecords())
	router.Handle("GET /v1/records/{context}/{id}", c.getRecord())
	router.Handle("POST /v1/records/{context}", c.createRecord())
	router.Handle("PUT /v1/records/{context}/{id}", c.updateRecord())
	router.Handle("DELETE /v1/records/{context}/{id}", c.deleteRecord())
}

func (c *RecordController) listRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldContext, err := schemadomain.ParseContext(r.PathValue("context"))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listRecordsErrMessage)
			return
		}

		query, err := recordQueryFromRequest(r)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listRecordsErrMessage)
			return
		}

		paged := httpserver.HasPaginationParams(r)
		params := httpserver.ExtractPaginationParams(r)
		if paged {
			query.Limit = params.Limit
			query.Offset = params.Offset()
		}

		records, total, err := c.records.ListRecords(r.Context(), sharedhttpapi.RequestOwner(r), fieldContext, query)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listRecordsErrMessage)
			return
		}

		if paged {
			httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToRecordResponses(records), total, params)
			return
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.RecordListResponse{Data: internal.ToRecordResponses(records)})
	}
}

func (c *RecordController) renderRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldContext, err := schemadomain.ParseContext(r.PathValue("context"))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listRecordsErrMessage)
			return
		}

		query, err := recordQueryFromRequest(r)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listRecordsErrMessage)
			return
		}

		rows, err := c.forms.RenderRecords(r.Context(), sharedhttpapi.RequestOwner(r), fieldContext, query)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listRecordsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRenderedListResponse(rows))
	}
}

func (c *RecordController) getRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldContext, err := schemadomain.ParseContext(r.PathValue("context"))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, getRecordErrMessage)
			return
		}

		id := r.PathValue("id")
		decoded, err := c.forms.DecodeRecord(r.Context(), sharedhttpapi.RequestOwner(r), fieldContext, shareddomain.ID(id))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, getRecordErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRecordEditResponse(id, decoded))
	}
}

func (c *RecordController) createRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldContext, err := schemadomain.ParseContext(r.PathValue("context"))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, createRecordErrMessage)
			return
		}

		var submission map[string]any
		if err := httpserver.DecodeJSONBody(r, &submission); err != nil || submission == nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		record, err := c.records.CreateRecord(r.Context(), sharedhttpapi.RequestOwner(r), fieldContext, submission)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, createRecordErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToRecordResponse(record))
	}
}

func (c *RecordController) updateRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldContext, err := schemadomain.ParseContext(r.PathValue("context"))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, updateRecordErrMessage)
			return
		}

		var submission map[string]any
		if err := httpserver.DecodeJSONBody(r, &submission); err != nil || submission == nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		record, err := c.records.UpdateRecord(
			r.Context(),
			sharedhttpapi.RequestOwner(r),
			fieldContext,
			shareddomain.ID(r.PathValue("id")),
			submission,
		)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, updateRecordErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRecordResponse(record))
	}
}

func (c *RecordController) deleteRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldContext, err := schemadomain.ParseContext(r.PathValue("context"))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, deleteRecordErrMessage)
			return
		}

		err = c.records.DeleteRecord(r.Context(), sharedhttpapi.RequestOwner(r), fieldContext, shareddomain.ID(r.PathValue("id")))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, deleteRecordErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// recordQueryFromRequest reads either period=active or a start/end pair.
func recordQueryFromRequest(r *http.Request) (usecases.RecordQuery, error) {
	if httpserver.GetQueryParam(r, "period") == activePeriodQueryValue {
		return usecases.RecordQuery{ActivePeriod: true}, nil
	}

	start := httpserver.GetQueryParam(r, "start")
	end := httpserver.GetQueryParam(r, "end")
	if start == "" && end == "" {
		return usecases.RecordQuery{}, nil
	}

	dateRange, err := domain.NewDateRange(start, end)
	if err != nil {
		return usecases.RecordQuery{}, err
	}
	return usecases.RecordQuery{Range: &dateRange}, nil
}
