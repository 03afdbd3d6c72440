package httpapi

import (
	"errors"
	"finance-tracker/internal/infra/httpserver"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"log/slog"
	"net/http"
)

// ReplyWithDomainError maps the domain error taxonomy to a status code.
// Storage and unknown failures answer with fallbackMessage so driver details
// never reach the client.
func ReplyWithDomainError(w http.ResponseWriter, err error, fallbackMessage string) {
	if validationErr, ok := shareddomain.IsValidationError(err); ok {
		httpserver.ReplyJSONResponse(w, http.StatusBadRequest, &httpserver.ErrorResponse{
			Message: validationErr.Error(),
			Field:   validationErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, shareddomain.ErrProtected):
		httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shareddomain.ErrNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shareddomain.ErrConflict):
		httpserver.ReplyWithError(w, http.StatusConflict, err.Error())
	default:
		slog.Error(fallbackMessage, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, fallbackMessage)
	}
}
